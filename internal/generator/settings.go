// Package generator builds random passwords under composition constraints:
// character categories, first-character restrictions, and duplicate, sequential,
// similar-glyph and symbol-quota exclusions.
package generator

// Settings is the immutable input of one generation call.
type Settings struct {
	Length int
	Amount int

	Numbers   bool
	Lowercase bool
	Uppercase bool
	Symbols   bool

	// CustomSymbols replaces DefaultSymbols when non-empty.
	CustomSymbols string

	NoStartNumber bool
	NoStartSymbol bool
	NoSimilar     bool
	NoDuplicate   bool
	NoSequential  bool
}

// DefaultSettings returns one 16 character password drawn from every category.
func DefaultSettings() Settings {
	return Settings{
		Length:    16,
		Amount:    1,
		Numbers:   true,
		Lowercase: true,
		Uppercase: true,
		Symbols:   true,
	}
}

// Constraints are the positional rules applied while sampling.
type Constraints struct {
	NoSimilar    bool
	NoDuplicate  bool
	NoSequential bool
}

// Constraints extracts the positional rules from s.
func (s Settings) Constraints() Constraints {
	return Constraints{
		NoSimilar:    s.NoSimilar,
		NoDuplicate:  s.NoDuplicate,
		NoSequential: s.NoSequential,
	}
}

// Flags lists the enabled options by their wire names, in a fixed order.
func (s Settings) Flags() []string {
	opts := []struct {
		name string
		on   bool
	}{
		{"numbers", s.Numbers},
		{"lowercase", s.Lowercase},
		{"uppercase", s.Uppercase},
		{"symbols", s.Symbols},
		{"custom_symbols", s.Symbols && s.CustomSymbols != ""},
		{"no_start_number", s.NoStartNumber},
		{"no_start_symbol", s.NoStartSymbol},
		{"no_similar", s.NoSimilar},
		{"no_duplicate", s.NoDuplicate},
		{"no_sequential", s.NoSequential},
	}

	var flags []string
	for _, o := range opts {
		if o.on {
			flags = append(flags, o.name)
		}
	}
	return flags
}

// symbolQuota is ceil(length / 10), the most symbols one password may hold.
func symbolQuota(length int) int {
	q := length / 10
	if length%10 != 0 {
		q++
	}
	return q
}

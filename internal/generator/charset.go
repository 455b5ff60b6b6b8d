package generator

import "strings"

const (
	NumberChars    = "0123456789"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultSymbols = "!#%*+-=?@^_~"

	// SimilarChars are glyphs that are easy to misread, removed by NoSimilar.
	SimilarChars = "iIl1oO0"
)

// Charset holds the alphabets one generation call samples from.
type Charset struct {
	// All is every enabled category concatenated: numbers, lowercase,
	// uppercase, symbols.
	All []rune
	// First is the pool for position 0 only.
	First []rune
	// Symbols is the active symbol set. It is empty when symbols are disabled.
	Symbols []rune
}

// BuildCharset derives the sampling alphabets from s. Similar characters are
// not removed here; see WithoutSimilar.
func BuildCharset(s Settings) Charset {
	var b strings.Builder
	if s.Numbers {
		b.WriteString(NumberChars)
	}
	if s.Lowercase {
		b.WriteString(LowercaseChars)
	}
	if s.Uppercase {
		b.WriteString(UppercaseChars)
	}

	var symbols []rune
	if s.Symbols {
		set := DefaultSymbols
		if s.CustomSymbols != "" {
			set = s.CustomSymbols
		}
		b.WriteString(set)
		symbols = []rune(set)
	}

	all := []rune(b.String())
	first := all
	if s.NoStartNumber {
		first = without(first, []rune(NumberChars))
	}
	if s.NoStartSymbol {
		first = without(first, symbols)
	}

	return Charset{
		All:     all,
		First:   clone(first),
		Symbols: symbols,
	}
}

// WithoutSimilar returns a copy of c with SimilarChars removed from All and First.
func (c Charset) WithoutSimilar() Charset {
	similar := []rune(SimilarChars)
	return Charset{
		All:     without(c.All, similar),
		First:   without(c.First, similar),
		Symbols: clone(c.Symbols),
	}
}

// without returns the runes of src that do not occur in drop, keeping order.
func without(src, drop []rune) []rune {
	out := make([]rune, 0, len(src))
	for _, r := range src {
		if !containsRune(drop, r) {
			out = append(out, r)
		}
	}
	return out
}

func containsRune(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

func clone(src []rune) []rune {
	return append([]rune(nil), src...)
}

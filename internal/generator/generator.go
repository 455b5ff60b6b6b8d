package generator

import "github.com/vaultpass/pwgen-go/internal/crypto"

// maxPrealloc caps capacity hints taken from caller-supplied counts.
const maxPrealloc = 256

// Generator produces passwords from Settings. It keeps no state between calls
// besides its random source, so one Generator may serve concurrent callers.
type Generator struct {
	rnd crypto.RandomSource
}

// New creates a Generator drawing from rnd. A nil rnd selects crypto/rand.
func New(rnd crypto.RandomSource) *Generator {
	if rnd == nil {
		rnd = crypto.NewSecureSource()
	}
	return &Generator{rnd: rnd}
}

// GenerateBatch produces s.Amount passwords, one after another. The first
// failure aborts the batch and no passwords are returned.
func (g *Generator) GenerateBatch(s Settings) ([]string, error) {
	if s.Amount < 1 {
		return nil, ErrInvalidAmount
	}

	c := s.Constraints()
	cs := BuildCharset(s)
	if c.NoSimilar {
		cs = cs.WithoutSimilar()
	}
	if err := Validate(s.Length, cs, c.NoDuplicate); err != nil {
		return nil, err
	}

	passwords := make([]string, 0, min(s.Amount, maxPrealloc))
	for range s.Amount {
		p, err := g.generate(s.Length, cs, c)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

// GenerateOne produces a single password of the given length from cs. When
// c.NoSimilar is set, similar characters are removed from cs first.
func (g *Generator) GenerateOne(length int, cs Charset, c Constraints) (string, error) {
	if c.NoSimilar {
		cs = cs.WithoutSimilar()
	}
	if err := Validate(length, cs, c.NoDuplicate); err != nil {
		return "", err
	}
	return g.generate(length, cs, c)
}

// generate assumes cs is already filtered and validated.
func (g *Generator) generate(length int, cs Charset, c Constraints) (string, error) {
	if distinctEligible(cs, c) {
		return g.generateDistinct(length, cs)
	}

	sel := newSelector(g.rnd, cs, length, c)
	st := newState(length)
	out := make([]rune, 0, min(length, maxPrealloc))

	for pos := range length {
		alphabet := cs.All
		if pos == 0 {
			alphabet = cs.First
		}
		r, err := sel.pick(pos, alphabet, st)
		if err != nil {
			return "", err
		}
		st.record(r, sel.isSymbol(r))
		out = append(out, r)
	}
	return string(out), nil
}

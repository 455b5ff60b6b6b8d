package generator

import (
	"fmt"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

// distinctEligible reports whether "no repeats" is the only positional rule,
// in which case a shuffle produces the password without retries.
func distinctEligible(cs Charset, c Constraints) bool {
	return c.NoDuplicate && !c.NoSequential && len(cs.Symbols) == 0
}

// generateDistinct draws the first character from cs.First, then takes the
// first length-1 characters of a shuffled copy of the remaining charset.
// Validate must have passed, so the remainder is always long enough.
func (g *Generator) generateDistinct(length int, cs Charset) (string, error) {
	i, err := g.rnd.Intn(len(cs.First))
	if err != nil {
		return "", fmt.Errorf("drawing random index: %w", err)
	}
	first := cs.First[i]

	rest := removeFirst(cs.All, first)
	if err := shuffle(g.rnd, rest); err != nil {
		return "", err
	}

	out := make([]rune, 0, length)
	out = append(out, first)
	out = append(out, rest[:length-1]...)
	return string(out), nil
}

// removeFirst returns a copy of src without the first occurrence of r.
func removeFirst(src []rune, r rune) []rune {
	out := make([]rune, 0, len(src))
	removed := false
	for _, c := range src {
		if !removed && c == r {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(rnd crypto.RandomSource, data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rnd.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("drawing random index: %w", err)
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

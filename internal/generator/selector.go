package generator

import (
	"fmt"

	"github.com/vaultpass/pwgen-go/internal/crypto"
)

// fastPathAttempts bounds the blind draws made before falling back to the
// exhaustive filter.
const fastPathAttempts = 5

// state is what a selector needs to know about the characters chosen so far.
type state struct {
	prev    rune
	hasPrev bool
	used    map[rune]struct{}
	symbols int
}

func newState(length int) *state {
	return &state{used: make(map[rune]struct{}, min(length, maxPrealloc))}
}

func (st *state) record(r rune, symbol bool) {
	st.prev = r
	st.hasPrev = true
	st.used[r] = struct{}{}
	if symbol {
		st.symbols++
	}
}

// selector picks one character per position, left to right, without
// backtracking.
type selector struct {
	rnd          crypto.RandomSource
	symbols      map[rune]struct{}
	quota        int
	charsetSize  int
	noDuplicate  bool
	noSequential bool
}

func newSelector(rnd crypto.RandomSource, cs Charset, length int, c Constraints) *selector {
	symbols := make(map[rune]struct{}, len(cs.Symbols))
	for _, r := range cs.Symbols {
		symbols[r] = struct{}{}
	}
	return &selector{
		rnd:          rnd,
		symbols:      symbols,
		quota:        symbolQuota(length),
		charsetSize:  len(cs.All),
		noDuplicate:  c.NoDuplicate,
		noSequential: c.NoSequential,
	}
}

func (s *selector) isSymbol(r rune) bool {
	_, ok := s.symbols[r]
	return ok
}

// accepts reports whether r may follow the characters recorded in st.
func (s *selector) accepts(r rune, st *state) bool {
	if s.noDuplicate {
		if _, seen := st.used[r]; seen {
			return false
		}
	}
	if s.noSequential && st.hasPrev {
		if d := r - st.prev; d == 1 || d == -1 {
			return false
		}
	}
	if s.isSymbol(r) && st.symbols >= s.quota {
		return false
	}
	return true
}

// tight reports whether blind draws are likely to miss: sequential checks are
// on, more than half the charset is used, or symbols are within 10% of quota.
func (s *selector) tight(st *state) bool {
	if s.noSequential {
		return true
	}
	if 2*len(st.used) > s.charsetSize {
		return true
	}
	return len(s.symbols) > 0 && st.symbols >= s.quota-s.quota/10
}

// pick chooses the character for position pos from alphabet.
func (s *selector) pick(pos int, alphabet []rune, st *state) (rune, error) {
	if !s.tight(st) {
		r, ok, err := s.fastPick(alphabet, st)
		if err != nil {
			return 0, err
		}
		if ok {
			return r, nil
		}
	}
	return s.slowPick(pos, alphabet, st)
}

// fastPick draws up to fastPathAttempts characters and returns the first
// acceptable one.
func (s *selector) fastPick(alphabet []rune, st *state) (rune, bool, error) {
	for range fastPathAttempts {
		i, err := s.rnd.Intn(len(alphabet))
		if err != nil {
			return 0, false, fmt.Errorf("drawing random index: %w", err)
		}
		if r := alphabet[i]; s.accepts(r, st) {
			return r, true, nil
		}
	}
	return 0, false, nil
}

// slowPick filters alphabet down to the acceptable characters and draws one
// uniformly from them.
func (s *selector) slowPick(pos int, alphabet []rune, st *state) (rune, error) {
	valid := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if s.accepts(r, st) {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return 0, &CharacterExhaustionError{Position: pos}
	}

	i, err := s.rnd.Intn(len(valid))
	if err != nil {
		return 0, fmt.Errorf("drawing random index: %w", err)
	}
	return valid[i], nil
}

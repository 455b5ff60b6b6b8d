package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	mrand "math/rand/v2"
	"sync"
	"time"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// RandomSource draws uniformly distributed indexes.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// SecureSource reads from a cryptographically strong reader and uses rejection
// sampling, so every index in [0, n) is exactly equally likely.
type SecureSource struct {
	reader io.Reader
}

// NewSecureSource returns a RandomSource backed by crypto/rand.
func NewSecureSource() *SecureSource {
	return &SecureSource{reader: rand.Reader}
}

// Intn returns a uniform random value in [0, n).
func (s *SecureSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	bound := uint64(n)
	// [0, limit) holds a whole number of copies of [0, bound).
	limit := math.MaxUint64 - math.MaxUint64%bound

	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.reader, buf[:]); err != nil {
			return 0, fmt.Errorf("reading random bytes: %w", err)
		}
		if v := binary.BigEndian.Uint64(buf[:]); v < limit {
			return int(v % bound), nil
		}
	}
}

// PseudoSource is a seeded PCG generator. It is NOT suitable for secrets: its
// output is predictable from the seed. It exists as a fallback when the system
// CSPRNG is unreadable and for reproducible runs.
type PseudoSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewPseudoSource returns a deterministic RandomSource for the given seed.
func NewPseudoSource(seed uint64) *PseudoSource {
	return &PseudoSource{
		rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Intn returns a pseudo-random value in [0, n).
func (p *PseudoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n), nil
}

// DefaultSource prefers crypto/rand and falls back to a time-seeded PseudoSource
// when the system random reader cannot be read.
func DefaultSource() RandomSource {
	return defaultSource(rand.Reader)
}

func defaultSource(r io.Reader) RandomSource {
	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		slog.Warn("system random source unavailable, using pseudo-random fallback", "error", err)
		return NewPseudoSource(uint64(time.Now().UnixNano()))
	}
	return &SecureSource{reader: r}
}

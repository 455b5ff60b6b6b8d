package crypto

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy pool closed") }

func TestSecureSourceIntn_Range(t *testing.T) {
	src := NewSecureSource()
	for _, n := range []int{1, 2, 7, 10, 62, 1000} {
		for i := 0; i < 200; i++ {
			v, err := src.Intn(n)
			if err != nil {
				t.Fatalf("Intn(%d) unexpected error: %v", n, err)
			}
			if v < 0 || v >= n {
				t.Fatalf("Intn(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestSecureSourceIntn_CoversAllValues(t *testing.T) {
	src := NewSecureSource()
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v, err := src.Intn(10)
		if err != nil {
			t.Fatalf("Intn() unexpected error: %v", err)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("expected all 10 values to appear, saw %d", len(seen))
	}
}

func TestSecureSourceIntn_InvalidBound(t *testing.T) {
	src := NewSecureSource()
	for _, n := range []int{0, -1} {
		if _, err := src.Intn(n); !errors.Is(err, ErrInvalidBound) {
			t.Errorf("Intn(%d) error = %v, want %v", n, err, ErrInvalidBound)
		}
	}
}

func TestSecureSourceIntn_ReaderError(t *testing.T) {
	src := &SecureSource{reader: failingReader{}}
	if _, err := src.Intn(10); err == nil {
		t.Fatal("expected error from failing reader")
	}
}

func TestSecureSourceIntn_RejectsPartialBand(t *testing.T) {
	// 0xFF.. is above the accepted limit for n=3 and must be skipped.
	data := append(bytes.Repeat([]byte{0xFF}, 8), 0, 0, 0, 0, 0, 0, 0, 5)
	src := &SecureSource{reader: bytes.NewReader(data)}

	v, err := src.Intn(3)
	if err != nil {
		t.Fatalf("Intn() unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("Intn() = %d, want 2", v)
	}
}

func TestPseudoSource_Deterministic(t *testing.T) {
	a := NewPseudoSource(42)
	b := NewPseudoSource(42)
	for i := 0; i < 50; i++ {
		va, _ := a.Intn(1000)
		vb, _ := b.Intn(1000)
		if va != vb {
			t.Fatalf("draw %d differs: %d vs %d", i, va, vb)
		}
	}
}

func TestPseudoSource_InvalidBound(t *testing.T) {
	if _, err := NewPseudoSource(1).Intn(0); !errors.Is(err, ErrInvalidBound) {
		t.Errorf("Intn(0) error = %v, want %v", err, ErrInvalidBound)
	}
}

func TestDefaultSource_PrefersSecure(t *testing.T) {
	if _, ok := DefaultSource().(*SecureSource); !ok {
		t.Error("DefaultSource() should return a SecureSource when crypto/rand works")
	}
}

func TestDefaultSource_FallsBack(t *testing.T) {
	src := defaultSource(io.Reader(failingReader{}))
	if _, ok := src.(*PseudoSource); !ok {
		t.Fatalf("defaultSource() = %T, want *PseudoSource", src)
	}
	if _, err := src.Intn(5); err != nil {
		t.Errorf("fallback Intn() unexpected error: %v", err)
	}
}

package generator

import "errors"

// scriptedSource replays fixed values (reduced mod n) and records every bound
// it was asked for. Once the script runs out it returns 0.
type scriptedSource struct {
	values []int
	bounds []int
}

func (s *scriptedSource) Intn(n int) (int, error) {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0, nil
	}
	v := s.values[0] % n
	s.values = s.values[1:]
	return v, nil
}

var errEntropy = errors.New("entropy exhausted")

type failingSource struct{}

func (failingSource) Intn(int) (int, error) { return 0, errEntropy }

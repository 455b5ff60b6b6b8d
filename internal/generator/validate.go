package generator

// Validate checks that a request is feasible before any sampling happens.
// Checks run in order: length below 1, empty charset, empty first-character
// pool, and, when noDuplicate is set, a charset shorter than the requested
// length.
func Validate(length int, cs Charset, noDuplicate bool) error {
	if length < 1 {
		return ErrInvalidLength
	}
	if len(cs.All) == 0 {
		return ErrEmptyCharset
	}
	if len(cs.First) == 0 {
		return ErrEmptyFirstCharPool
	}
	if noDuplicate && length > len(cs.All) {
		return &NotEnoughUniqueCharsError{Available: len(cs.All), Required: length}
	}
	return nil
}

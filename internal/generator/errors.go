package generator

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCharset       = errors.New("at least one character type must be selected")
	ErrEmptyFirstCharPool = errors.New("no characters left to start the password with")
	ErrInvalidLength      = errors.New("password length must be at least 1")
	ErrInvalidAmount      = errors.New("password amount must be at least 1")
)

// NotEnoughUniqueCharsError reports a duplicate-free request longer than the charset.
type NotEnoughUniqueCharsError struct {
	Available int
	Required  int
}

func (e *NotEnoughUniqueCharsError) Error() string {
	return fmt.Sprintf("not enough unique characters: %d available, %d required", e.Available, e.Required)
}

// CharacterExhaustionError reports that no character satisfied the constraints
// at a position. Earlier positions are never revisited.
type CharacterExhaustionError struct {
	Position int
}

func (e *CharacterExhaustionError) Error() string {
	return fmt.Sprintf("no valid character left for position %d", e.Position)
}

// Error codes returned by Code.
const (
	CodeEmptyCharset         = "empty_charset"
	CodeEmptyFirstCharPool   = "empty_first_char_pool"
	CodeNotEnoughUniqueChars = "not_enough_unique_chars"
	CodeCharacterExhaustion  = "character_exhaustion"
	CodeInvalidLength        = "invalid_length"
	CodeInvalidAmount        = "invalid_amount"
	CodeInternal             = "internal"
)

// Code maps a generation error to a stable machine-readable code.
// It returns "" for a nil error.
func Code(err error) string {
	var (
		uniqueErr     *NotEnoughUniqueCharsError
		exhaustionErr *CharacterExhaustionError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCharset):
		return CodeEmptyCharset
	case errors.Is(err, ErrEmptyFirstCharPool):
		return CodeEmptyFirstCharPool
	case errors.Is(err, ErrInvalidLength):
		return CodeInvalidLength
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.As(err, &uniqueErr):
		return CodeNotEnoughUniqueChars
	case errors.As(err, &exhaustionErr):
		return CodeCharacterExhaustion
	default:
		return CodeInternal
	}
}

package wordseg

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel is returned when a Segmenter is constructed without a model.
	ErrNilModel = errors.New("model must not be nil")

	// ErrInvalidCharacter is returned when input contains a byte outside
	// the accepted alphabet. Match it with errors.Is; the typed
	// *InvalidCharacterError carries the offending byte and position.
	ErrInvalidCharacter = errors.New("invalid character")
)

// InvalidCharacterError reports the first rejected input byte.
//
// The sentinel ErrInvalidCharacter can be matched via errors.Is.
type InvalidCharacterError struct {
	Byte     byte
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Byte, e.Position)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

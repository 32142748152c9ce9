package checksum

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidCharacter matches every *CharacterError.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrNilSequence is returned when the sequence itself is nil.
	ErrNilSequence = errors.New("nil sequence")
)

// CharacterError reports a character outside the alphabet of the algorithm.
// It signals a caller contract violation, not a failed check: the input
// was never a candidate for the checksum in the first place.
type CharacterError struct {
	Algorithm string
	Index     int
	Char      rune
}

func (e *CharacterError) Error() string {
	return "checksum: " + e.Algorithm + ": " + ErrInvalidCharacter.Error() + " " +
		strconv.QuoteRune(e.Char) + " at index " + strconv.Itoa(e.Index)
}

func (e *CharacterError) Is(target error) bool { return target == ErrInvalidCharacter }

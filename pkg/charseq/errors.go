package charseq

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidNumber matches every *NumberError.
	ErrInvalidNumber = errors.New("invalid decimal number")

	// ErrSyntax is returned when the text is not a signed decimal numeral.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned when the numeral does not fit the target width.
	ErrRange = errors.New("value out of range")

	// ErrEmpty is returned when the requested range holds no characters.
	ErrEmpty = errors.New("empty input")

	// ErrNullInput is returned when the sequence itself is nil.
	ErrNullInput = errors.New("null")

	// ErrIndexOutOfRange matches every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrBitSize is returned for widths other than 32 and 64.
	ErrBitSize = errors.New("unsupported bit size")

	// ErrInvalidUUID is returned when a sequence is not a canonical UUID.
	ErrInvalidUUID = errors.New("invalid UUID")
)

// NumberError reports a failed decimal parse.
//
// Text only ever holds the characters of the parsed range, so a bounded
// parse never discloses the surrounding content of the backing sequence.
type NumberError struct {
	Func string // the failing function (ParseInt32, ParseInt64Range, ...)
	Text string // the input, "null" for a nil sequence
	Err  error  // ErrSyntax, ErrRange, ErrEmpty or ErrNullInput
}

func (e *NumberError) Error() string {
	return "charseq." + e.Func + ": " + ErrInvalidNumber.Error() + " " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *NumberError) Unwrap() error { return e.Err }

func (e *NumberError) Is(target error) bool { return target == ErrInvalidNumber }

// IndexError reports a bounds violation. It never carries sequence content.
type IndexError struct {
	Begin  int
	End    int
	Length int

	point bool
}

func (e *IndexError) Error() string {
	if e.point {
		return "charseq: length " + strconv.Itoa(e.Length) + ", index out of range: " + strconv.Itoa(e.Begin)
	}
	return "charseq: range [" + strconv.Itoa(e.Begin) + ":" + strconv.Itoa(e.End) +
		"] out of bounds for length " + strconv.Itoa(e.Length)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

func indexError(i, length int) *IndexError {
	return &IndexError{Begin: i, End: i + 1, Length: length, point: true}
}

func syntaxError(fn string, text Sequence) error {
	return &NumberError{Func: fn, Text: text.String(), Err: ErrSyntax}
}

func rangeError(fn string, text Sequence) error {
	return &NumberError{Func: fn, Text: text.String(), Err: ErrRange}
}

func emptyError(fn string) error {
	return &NumberError{Func: fn, Err: ErrEmpty}
}

func nullError(fn string) error {
	return &NumberError{Func: fn, Text: "null", Err: ErrNullInput}
}

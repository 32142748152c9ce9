package validator

import "errors"

// Causes attached to ValidationError.Err by the rules in this package.
var (
	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a field has an invalid length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field is well formed but wrong,
	// for example a number whose check digits do not match.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)

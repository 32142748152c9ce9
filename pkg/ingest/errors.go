package ingest

import "errors"

var (
	// ErrInvalidSchema is returned when a schema fails validation.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrMissingColumn is reported when a line has fewer fields than a
	// required column needs.
	ErrMissingColumn = errors.New("missing column")

	// ErrEmptyField is reported when a required field is blank.
	ErrEmptyField = errors.New("empty field")

	// ErrChecksumMismatch is reported when a Luhn or IBAN field has wrong
	// check digits.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrNotNumeric is reported when a numeric field holds anything but
	// ASCII digits.
	ErrNotNumeric = errors.New("not numeric")
)

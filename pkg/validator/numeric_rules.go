package validator

import (
	"fmt"

	"github.com/dmitrymomot/charseq/pkg/charseq"
)

func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: check(func() bool { return value >= min }, ErrOutOfRange),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: check(func() bool { return value <= max }, ErrOutOfRange),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// ValidInt32 validates that value is a signed decimal integer that fits in 32 bits.
// The cause is the *charseq.NumberError from the parser.
func ValidInt32(field, value string) Rule {
	return Rule{
		Check: func() error {
			_, err := charseq.ParseInt32(charseq.String(value))
			return err
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 32-bit integer",
			TranslationKey: "validation.int32",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidInt64 validates that value is a signed decimal integer that fits in 64 bits.
func ValidInt64(field, value string) Rule {
	return Rule{
		Check: func() error {
			_, err := charseq.ParseInt64(charseq.String(value))
			return err
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a 64-bit integer",
			TranslationKey: "validation.int64",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Int64Range validates that value parses as an int64 within [min, max].
func Int64Range(field, value string, min, max int64) Rule {
	return Rule{
		Check: func() error {
			n, err := charseq.ParseInt64(charseq.String(value))
			if err != nil {
				return err
			}
			if n < min || n > max {
				return ErrOutOfRange
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be an integer between %d and %d", min, max),
			TranslationKey: "validation.int_range",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

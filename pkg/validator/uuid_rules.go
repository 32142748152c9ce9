package validator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/charseq/pkg/charseq"
)

// ValidUUID validates the canonical 36 character UUID form.
func ValidUUID(field, value string) Rule {
	return Rule{
		Check: func() error {
			_, err := charseq.ParseUUID(charseq.String(value))
			return err
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func RequiredUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: check(func() bool { return value != uuid.Nil }, ErrFieldRequired),
		Error: ValidationError{
			Field:          field,
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidUUIDVersion validates a canonical UUID string of the given version.
func ValidUUIDVersion(field, value string, version int) Rule {
	return Rule{
		Check: func() error {
			id, err := charseq.ParseUUID(charseq.String(value))
			if err != nil {
				return err
			}
			if int(id.Version()) != version {
				return ErrInvalidValue
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid UUID version %d", version),
			TranslationKey: "validation.uuid_version",
			TranslationValues: map[string]any{
				"field":   field,
				"version": version,
			},
		},
	}
}

package validator

import (
	"strings"

	"github.com/dmitrymomot/charseq/pkg/charseq"
	"github.com/dmitrymomot/charseq/pkg/checksum"
)

// separators are the grouping characters people type into card and account numbers.
var separators = strings.NewReplacer(" ", "", "-", "")

// ValidCreditCardChecksum validates a credit card number using the Luhn algorithm.
// Spaces and dashes are ignored; 13 to 19 digits are required.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() error {
			cleaned := charseq.String(separators.Replace(value))
			if !charseq.IsNumeric(cleaned) {
				return ErrInvalidFormat
			}
			if n := cleaned.Len(); n < 13 || n > 19 {
				return ErrInvalidLength
			}
			ok, err := checksum.Luhn(cleaned)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInvalidValue
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIBAN validates an International Bank Account Number in either the
// electronic or the printed (space separated, any case) form.
// Country specific lengths are not enforced, only the 15 to 34 character
// envelope, the country/check digit prefix and the MOD 97-10 checksum.
func ValidIBAN(field, value string) Rule {
	return Rule{
		Check: func() error {
			iban := charseq.String(strings.ToUpper(strings.ReplaceAll(value, " ", "")))
			if n := iban.Len(); n < 15 || n > 34 {
				return ErrInvalidLength
			}
			if !isUpperASCII(iban.At(0)) || !isUpperASCII(iban.At(1)) ||
				!charseq.IsNumeric(iban.Slice(2, 4)) {
				return ErrInvalidFormat
			}
			ok, err := checksum.IBAN(iban)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInvalidValue
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid IBAN",
			TranslationKey: "validation.iban",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAccountNumber validates that a bank account number is in a reasonable format.
// This is a basic validation - real implementations should use country-specific rules.
func ValidAccountNumber(field, value string) Rule {
	return Rule{
		Check: func() error {
			cleaned := charseq.String(separators.Replace(value))
			for i := range cleaned.Len() {
				c := cleaned.At(i)
				if !isUpperASCII(c) && !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
					return ErrInvalidFormat
				}
			}
			if n := cleaned.Len(); n < 4 || n > 34 {
				return ErrInvalidLength
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid account number format",
			TranslationKey: "validation.account_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// abaWeights are the ABA routing number checksum weights.
var abaWeights = [9]int{3, 7, 1, 3, 7, 1, 3, 7, 1}

// ValidRoutingNumber validates that a routing number is in the correct format (US).
func ValidRoutingNumber(field, value string) Rule {
	return Rule{
		Check: func() error {
			cleaned := charseq.String(separators.Replace(value))
			if !charseq.IsNumeric(cleaned) {
				return ErrInvalidFormat
			}
			if cleaned.Len() != len(abaWeights) {
				return ErrInvalidLength
			}

			sum := 0
			for i, w := range abaWeights {
				sum += int(cleaned.At(i)-'0') * w
			}
			if sum%10 != 0 {
				return ErrInvalidValue
			}
			return nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid routing number",
			TranslationKey: "validation.routing_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isUpperASCII(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

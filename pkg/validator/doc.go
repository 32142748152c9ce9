// Package validator provides composable validation rules for user supplied
// identifiers and numbers, backed by the allocation-free parsers in charseq
// and the check digit algorithms in checksum.
//
// A Rule pairs a Check function with translation-friendly error metadata.
// Rules are evaluated with Apply, which collects every failure into a
// ValidationErrors slice that satisfies the error interface.
//
// # Architecture
//
// Rules are grouped by domain:
//
//   - financial_rules.go – card numbers (Luhn), IBANs (MOD 97-10), account
//     and ABA routing numbers
//   - numeric_rules.go   – decimal integer text and numeric bounds
//   - uuid_rules.go      – canonical UUID text and versions
//
// Every exported function only builds a Rule value; nothing is evaluated
// until Apply runs and the package keeps no global state.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidIBAN("iban", form.IBAN),
//	    validator.ValidCreditCardChecksum("card", form.Card),
//	    validator.Int64Range("amount", form.Amount, 1, 1_000_000),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        ...
//	    }
//	}
//
// # Error Handling
//
// Each ValidationError keeps the cause returned by its Check in Err, and
// both ValidationError and ValidationErrors unwrap, so errors.Is works
// across the whole tree:
//
//	errors.Is(err, charseq.ErrRange)           // amount overflowed int64
//	errors.Is(err, validator.ErrInvalidValue)  // check digits did not match
//	errors.Is(err, checksum.ErrInvalidCharacter)
package validator

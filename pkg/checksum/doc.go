// Package checksum validates check digits of identifier sequences without
// materialising their numeric value.
//
// Two algorithms are provided:
//
//   - Luhn – the mod 10 scheme used by payment card numbers, IMEIs and many
//     national identifiers
//   - IBAN – the ISO 7064 MOD 97-10 scheme used by International Bank
//     Account Numbers
//
// Both scan a charseq.Sequence once, fold each character into a running
// remainder and keep that remainder below the modulus after every step, so
// arbitrarily long inputs never overflow and no modulus instruction on a
// large number is required.
//
// # Usage
//
//	ok, err := checksum.LuhnString("79927398713")
//	if err != nil {
//	    // the input contained something other than ASCII digits
//	}
//
//	ok, err = checksum.IBAN(charseq.String("GB82WEST12345698765432"))
//
// # Error Handling
//
// A false result means the check digits do not match. A character outside
// the alphabet of the algorithm is a caller error and is reported as a
// *CharacterError matching ErrInvalidCharacter, never as false. Format,
// length and country validation belong to the caller; see the validator
// package for rules that combine them with these checks.
package checksum

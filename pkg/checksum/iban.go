package checksum

import "github.com/dmitrymomot/charseq/pkg/charseq"

const algIBAN = "iban"

// IBAN reports whether s passes the ISO 7064 MOD 97-10 check used by
// International Bank Account Numbers.
//
// s must be the electronic form: no spaces, digits and upper case letters
// only. Any other character is returned as a *CharacterError. Country codes
// and country specific lengths are not checked; do that beforehand.
// A sequence shorter than the four character country and check digit block
// is reported as a *charseq.IndexError.
//
// The first four characters are folded in last, which is the same as
// rotating them to the end. Letters count as two digits (A=10 ... Z=35).
// The accumulator is reduced by subtraction after every character and never
// reaches 97, so no division and no wide arithmetic is needed.
func IBAN(s charseq.Sequence) (bool, error) {
	if s == nil {
		return false, ErrNilSequence
	}
	n := s.Len()
	if n < 4 {
		return false, &charseq.IndexError{Begin: 0, End: 4, Length: n}
	}

	acc := 0
	var err error
	for i := 4; i < n; i++ {
		if acc, err = mod97Fold(s, i, acc); err != nil {
			return false, err
		}
	}
	for i := 0; i < 4; i++ {
		if acc, err = mod97Fold(s, i, acc); err != nil {
			return false, err
		}
	}
	return acc == 1, nil
}

// IBANString is IBAN over a string.
func IBANString(s string) (bool, error) {
	return IBAN(charseq.String(s))
}

func mod97Fold(s charseq.Sequence, i, acc int) (int, error) {
	c := s.At(i)
	switch {
	case c >= '0' && c <= '9':
		acc = acc*10 + int(c-'0')
	case c >= 'A' && c <= 'Z':
		acc = acc*100 + int(c-'A') + 10
	default:
		return 0, &CharacterError{Algorithm: algIBAN, Index: i, Char: c}
	}
	for acc >= 97 {
		acc -= 97
	}
	return acc, nil
}

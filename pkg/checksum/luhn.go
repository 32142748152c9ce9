package checksum

import "github.com/dmitrymomot/charseq/pkg/charseq"

const algLuhn = "luhn"

// Luhn reports whether the digit sequence s carries a valid Luhn (mod 10)
// check digit in its last position.
//
// Every character must be an ASCII digit; anything else is returned as a
// *CharacterError instead of false. An empty sequence has no check digit and
// is reported as not valid.
//
// The running sum never leaves 0..9, so input length is unbounded.
func Luhn(s charseq.Sequence) (bool, error) {
	if s == nil {
		return false, ErrNilSequence
	}
	n := s.Len()
	if n == 0 {
		return false, nil
	}

	var sum int
	var err error
	if n&1 == 1 {
		sum, err = oddLengthSum(s, n)
	} else {
		sum, err = evenLengthSum(s, n)
	}
	if err != nil {
		return false, err
	}
	return sum == 0, nil
}

// LuhnString is Luhn over a string.
func LuhnString(s string) (bool, error) {
	return Luhn(charseq.String(s))
}

// LuhnCheckDigit returns the digit that, appended to the payload s, makes the
// result pass Luhn.
func LuhnCheckDigit(s charseq.Sequence) (int, error) {
	if s == nil {
		return 0, ErrNilSequence
	}
	// The check digit goes at index n, so the payload is doubled as if it
	// were a sequence of length n+1 without its last character.
	n := s.Len()
	var sum int
	var err error
	if n&1 == 1 {
		sum, err = pairSum(s, n-1, true)
		if err == nil {
			sum, err = foldAt(s, n-1, sum, true)
		}
	} else {
		sum, err = pairSum(s, n, false)
	}
	if err != nil {
		return 0, err
	}
	if sum == 0 {
		return 0, nil
	}
	return 10 - sum, nil
}

// oddLengthSum handles odd lengths: the pairs before the check digit have
// their second digit doubled and the check digit is added as is.
func oddLengthSum(s charseq.Sequence, n int) (int, error) {
	sum, err := pairSum(s, n-1, false)
	if err != nil {
		return 0, err
	}
	return foldAt(s, n-1, sum, false)
}

// evenLengthSum handles even lengths: every pair has its first digit doubled.
func evenLengthSum(s charseq.Sequence, n int) (int, error) {
	return pairSum(s, n, true)
}

// pairSum folds s[0:end) two digits at a time. end must be even.
func pairSum(s charseq.Sequence, end int, doubleFirst bool) (int, error) {
	sum := 0
	var err error
	for i := 0; i < end; i += 2 {
		if sum, err = foldAt(s, i, sum, doubleFirst); err != nil {
			return 0, err
		}
		if sum, err = foldAt(s, i+1, sum, !doubleFirst); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// foldAt adds the digit at i, optionally doubled, to sum and keeps the
// result in 0..9.
func foldAt(s charseq.Sequence, i, sum int, double bool) (int, error) {
	c := s.At(i)
	if c < '0' || c > '9' {
		return 0, &CharacterError{Algorithm: algLuhn, Index: i, Char: c}
	}
	v := int(c - '0')
	if double {
		v *= 2
		if v >= 10 {
			// sum of the two digits of v
			v -= 9
		}
	}
	sum += v
	if sum >= 10 {
		sum -= 10
	}
	return sum, nil
}

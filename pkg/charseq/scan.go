package charseq

import "iter"

// bom is the byte order mark, U+FEFF.
const bom = '\uFEFF'

// IndexRune returns the index of the first occurrence of r in s, or -1.
func IndexRune(s Sequence, r rune) int {
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.At(i) == r {
			return i
		}
	}
	return -1
}

// IndexRuneFrom returns the index of the first occurrence of r in s at or
// after from, or -1. A from at or past the end returns -1.
// A negative from is a caller bug and panics with an *IndexError; it is not
// clamped to zero.
func IndexRuneFrom(s Sequence, r rune, from int) int {
	if from < 0 {
		panic(indexError(from, s.Len()))
	}
	n := s.Len()
	for i := from; i < n; i++ {
		if s.At(i) == r {
			return i
		}
	}
	return -1
}

// LastIndexRune returns the index of the last occurrence of r in s, or -1.
func LastIndexRune(s Sequence, r rune) int {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i) == r {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of sub in s, or -1.
// An empty sub matches at 0.
func Index(s, sub Sequence) int {
	n, m := s.Len(), sub.Len()
outer:
	for i := 0; i <= n-m; i++ {
		for j := 0; j < m; j++ {
			if s.At(i+j) != sub.At(j) {
				continue outer
			}
		}
		return i
	}
	return -1
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix Sequence) bool {
	m := prefix.Len()
	if m > s.Len() {
		return false
	}
	for i := 0; i < m; i++ {
		if s.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether s is non-empty and made only of ASCII digits.
// Other Unicode digits do not count.
func IsNumeric(s Sequence) bool {
	n := s.Len()
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if c := s.At(i); c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Between returns the part of s strictly between the first occurrence of open
// and the last occurrence of close. It reports false when either is missing
// or close does not come after open.
func Between(s Sequence, open, close rune) (Sequence, bool) {
	start := IndexRune(s, open)
	if start == -1 {
		return nil, false
	}
	end := LastIndexRune(s, close)
	if end <= start {
		return nil, false
	}
	return s.Slice(start+1, end), true
}

// Trim strips leading and trailing characters at or below U+0020, which
// covers ASCII space and control characters. The result shares storage with s.
func Trim(s Sequence) Sequence {
	n := s.Len()
	begin, end := 0, n
	for begin < end && s.At(begin) <= ' ' {
		begin++
	}
	for begin < end && s.At(end-1) <= ' ' {
		end--
	}
	if begin == 0 && end == n {
		return s
	}
	return s.Slice(begin, end)
}

// Split lazily yields the fields of s separated by sep. Empty fields are
// kept, so "a,b," yields "a", "b" and "".
func Split(s Sequence, sep rune) iter.Seq[Sequence] {
	return func(yield func(Sequence) bool) {
		n := s.Len()
		start := 0
		for i := 0; i < n; i++ {
			if s.At(i) != sep {
				continue
			}
			if !yield(s.Slice(start, i)) {
				return
			}
			start = i + 1
		}
		yield(s.Slice(start, n))
	}
}

// HasBOM reports whether s starts with a byte order mark. Byte-indexed
// sequences (String, Bytes) are checked for the UTF-8 encoding EF BB BF,
// all others for the single character U+FEFF.
func HasBOM(s Sequence) bool {
	return bomLen(s) > 0
}

// TrimBOM returns s without its leading byte order mark, if any.
func TrimBOM(s Sequence) Sequence {
	if n := bomLen(s); n > 0 {
		return s.Slice(n, s.Len())
	}
	return s
}

func bomLen(s Sequence) int {
	switch s.(type) {
	case String, Bytes:
		if s.Len() >= 3 && s.At(0) == 0xEF && s.At(1) == 0xBB && s.At(2) == 0xBF {
			return 3
		}
		return 0
	}
	if s.Len() > 0 && s.At(0) == bom {
		return 1
	}
	return 0
}

// HexDigit returns the value of the hexadecimal digit r.
// Both upper and lower case letters are accepted.
func HexDigit(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

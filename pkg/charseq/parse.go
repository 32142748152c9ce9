package charseq

import "math"

const (
	fnParseInt32      = "ParseInt32"
	fnParseInt64      = "ParseInt64"
	fnParseInt32Range = "ParseInt32Range"
	fnParseInt64Range = "ParseInt64Range"
	fnParseInt        = "ParseInt"
	fnParseIntRange   = "ParseIntRange"
)

// ParseInt32 parses s as a signed decimal int32 with the grammar of
// strconv.ParseInt(s, 10, 32): an optional '+' or '-' followed by one or more
// ASCII digits. Leading zeros are accepted, whitespace is not.
//
// On failure the error is a *NumberError carrying the whole of s.
// A successful parse does not allocate.
func ParseInt32(s Sequence) (int32, error) {
	if s == nil {
		return 0, nullError(fnParseInt32)
	}
	return parseSigned[int32](fnParseInt32, s, 0, s.Len(), math.MinInt32)
}

// ParseInt64 is ParseInt32 for int64.
func ParseInt64(s Sequence) (int64, error) {
	if s == nil {
		return 0, nullError(fnParseInt64)
	}
	return parseSigned[int64](fnParseInt64, s, 0, s.Len(), math.MinInt64)
}

// ParseInt32Range parses the half-open range [begin, end) of s.
//
// A range outside [0, s.Len()] or with begin > end is reported as an
// *IndexError before any character is read. Parse failures report only the
// characters inside the range.
func ParseInt32Range(s Sequence, begin, end int) (int32, error) {
	if s == nil {
		return 0, nullError(fnParseInt32Range)
	}
	if err := checkRange(begin, end, s.Len()); err != nil {
		return 0, err
	}
	return parseSigned[int32](fnParseInt32Range, s, begin, end, math.MinInt32)
}

// ParseInt64Range is ParseInt32Range for int64.
func ParseInt64Range(s Sequence, begin, end int) (int64, error) {
	if s == nil {
		return 0, nullError(fnParseInt64Range)
	}
	if err := checkRange(begin, end, s.Len()); err != nil {
		return 0, err
	}
	return parseSigned[int64](fnParseInt64Range, s, begin, end, math.MinInt64)
}

// ParseInt parses s into an integer of the given bit size, 32 or 64.
func ParseInt(s Sequence, bitSize int) (int64, error) {
	if s == nil {
		return 0, nullError(fnParseInt)
	}
	return ParseIntRange(s, 0, s.Len(), bitSize)
}

// ParseIntRange parses [begin, end) of s into an integer of the given bit size.
func ParseIntRange(s Sequence, begin, end, bitSize int) (int64, error) {
	if s == nil {
		return 0, nullError(fnParseIntRange)
	}
	if err := checkRange(begin, end, s.Len()); err != nil {
		return 0, err
	}
	switch bitSize {
	case 32:
		v, err := parseSigned[int32](fnParseIntRange, s, begin, end, math.MinInt32)
		return int64(v), err
	case 64:
		return parseSigned[int64](fnParseIntRange, s, begin, end, math.MinInt64)
	default:
		return 0, ErrBitSize
	}
}

// MustParseInt32 is like ParseInt32 but panics on error.
func MustParseInt32(s Sequence) int32 {
	v, err := ParseInt32(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseInt64 is like ParseInt64 but panics on error.
func MustParseInt64(s Sequence) int64 {
	v, err := ParseInt64(s)
	if err != nil {
		panic(err)
	}
	return v
}

// parseSigned parses [begin, end) of s, which the caller has bounds checked.
// minValue is the most negative value of T.
//
// The magnitude is accumulated as a negative number: minValue has no positive
// counterpart, while every positive value has a negative one. Each step is
// checked against limit before it is taken, so acc never wraps.
func parseSigned[T int32 | int64](fn string, s Sequence, begin, end int, minValue T) (T, error) {
	if begin == end {
		return 0, emptyError(fn)
	}

	negative := false
	i := begin
	switch s.At(i) {
	case '-':
		negative = true
		i++
	case '+':
		i++
	}
	if i == end {
		return 0, syntaxError(fn, s.Slice(begin, end))
	}

	// -MaxT for positive input, MinT for negative input.
	limit := minValue + 1
	if negative {
		limit = minValue
	}
	cutoff := limit / 10

	var acc T
	for ; i < end; i++ {
		c := s.At(i)
		if c < '0' || c > '9' {
			return 0, syntaxError(fn, s.Slice(begin, end))
		}
		d := T(c - '0')
		if acc < cutoff {
			return 0, rangeError(fn, s.Slice(begin, end))
		}
		acc *= 10
		if acc < limit+d {
			return 0, rangeError(fn, s.Slice(begin, end))
		}
		acc -= d
	}

	if negative {
		return acc, nil
	}
	return -acc, nil
}

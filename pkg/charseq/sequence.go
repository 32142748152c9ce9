package charseq

import "unicode/utf16"

// Sequence is a read-only, randomly indexable run of characters.
//
// Implementations must return in O(1) from Len and At, and Slice should share
// the backing storage instead of copying it. At and Slice panic with an
// *IndexError when the indices are out of range.
type Sequence interface {
	Len() int
	At(i int) rune
	Slice(begin, end int) Sequence
	String() string
}

// Of wraps s as a Sequence. The empty string maps to Empty.
func Of(s string) Sequence {
	if s == "" {
		return Empty
	}
	return String(s)
}

// String is a byte-indexed sequence over a Go string.
// At returns the byte at i widened to a rune.
type String string

func (s String) Len() int { return len(s) }

func (s String) At(i int) rune {
	if uint(i) >= uint(len(s)) {
		panic(indexError(i, len(s)))
	}
	return rune(s[i])
}

func (s String) Slice(begin, end int) Sequence {
	checkSlice(begin, end, len(s))
	return s[begin:end]
}

func (s String) String() string { return string(s) }

// Bytes is a byte-indexed sequence over a byte slice.
// The slice must not be modified while the sequence is in use.
type Bytes []byte

func (b Bytes) Len() int { return len(b) }

func (b Bytes) At(i int) rune {
	if uint(i) >= uint(len(b)) {
		panic(indexError(i, len(b)))
	}
	return rune(b[i])
}

func (b Bytes) Slice(begin, end int) Sequence {
	checkSlice(begin, end, len(b))
	return b[begin:end:end]
}

func (b Bytes) String() string { return string(b) }

// Runes is a code point indexed sequence.
type Runes []rune

func (r Runes) Len() int { return len(r) }

func (r Runes) At(i int) rune {
	if uint(i) >= uint(len(r)) {
		panic(indexError(i, len(r)))
	}
	return r[i]
}

func (r Runes) Slice(begin, end int) Sequence {
	checkSlice(begin, end, len(r))
	return r[begin:end:end]
}

func (r Runes) String() string { return string(r) }

// UTF16 is a sequence of UTF-16 code units, the layout used by Java and
// JavaScript strings. At returns single code units, so surrogate halves are
// visible individually. String decodes surrogate pairs and replaces unpaired
// surrogates with U+FFFD.
type UTF16 []uint16

func (u UTF16) Len() int { return len(u) }

func (u UTF16) At(i int) rune {
	if uint(i) >= uint(len(u)) {
		panic(indexError(i, len(u)))
	}
	return rune(u[i])
}

func (u UTF16) Slice(begin, end int) Sequence {
	checkSlice(begin, end, len(u))
	return u[begin:end:end]
}

func (u UTF16) String() string { return string(utf16.Decode(u)) }

// Empty is the shared zero-length sequence.
var Empty Sequence = emptySequence{}

type emptySequence struct{}

func (emptySequence) Len() int { return 0 }

func (emptySequence) At(i int) rune {
	panic(indexError(i, 0))
}

func (e emptySequence) Slice(begin, end int) Sequence {
	if begin != 0 || end != 0 {
		panic(&IndexError{Begin: begin, End: end, Length: 0})
	}
	return e
}

func (emptySequence) String() string { return "" }

func checkSlice(begin, end, length int) {
	if err := checkRange(begin, end, length); err != nil {
		panic(err)
	}
}

// checkRange returns nil when 0 <= begin <= end <= length.
func checkRange(begin, end, length int) *IndexError {
	if begin < 0 || end > length || begin > end {
		return &IndexError{Begin: begin, End: end, Length: length}
	}
	return nil
}

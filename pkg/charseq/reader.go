package charseq

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"
)

// NewReader returns an io.Reader producing the UTF-8 encoding of s.
//
// Byte-indexed sequences (String, Bytes) are passed through unchanged. For
// every other sequence each character is encoded as UTF-8; a high surrogate
// followed by a low surrogate is joined into one code point and any
// unpaired surrogate is written as U+FFFD.
func NewReader(s Sequence) io.Reader {
	r := &reader{s: s}
	switch s.(type) {
	case String, Bytes:
		r.raw = true
	}
	return r
}

type reader struct {
	s       Sequence
	raw     bool
	pos     int
	buf     [utf8.UTFMax]byte
	pending []byte
}

func (r *reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(p) {
		if len(r.pending) > 0 {
			c := copy(p[n:], r.pending)
			r.pending = r.pending[c:]
			n += c
			continue
		}
		if r.pos >= r.s.Len() {
			break
		}
		if r.raw {
			p[n] = byte(r.s.At(r.pos))
			r.pos++
			n++
			continue
		}
		w := utf8.EncodeRune(r.buf[:], r.next())
		r.pending = r.buf[:w]
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// next decodes the character at pos, joining surrogate pairs.
func (r *reader) next() rune {
	c := r.s.At(r.pos)
	r.pos++
	if !utf16.IsSurrogate(c) {
		return c
	}
	if c < 0xDC00 && r.pos < r.s.Len() {
		if d := utf16.DecodeRune(c, r.s.At(r.pos)); d != utf8.RuneError {
			r.pos++
			return d
		}
	}
	return utf8.RuneError
}

package charseq

import "github.com/google/uuid"

// ParseUUID decodes the canonical 36 character form
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx, with hex digits in either case.
// Unlike uuid.Parse it accepts no URN, brace or dashless variants.
// A successful parse does not allocate.
func ParseUUID(s Sequence) (uuid.UUID, error) {
	var id uuid.UUID
	if s == nil || s.Len() != 36 {
		return uuid.Nil, ErrInvalidUUID
	}
	if s.At(8) != '-' || s.At(13) != '-' || s.At(18) != '-' || s.At(23) != '-' {
		return uuid.Nil, ErrInvalidUUID
	}
	for i, x := range uuidByteOffsets {
		hi, ok := HexDigit(s.At(x))
		if !ok {
			return uuid.Nil, ErrInvalidUUID
		}
		lo, ok := HexDigit(s.At(x + 1))
		if !ok {
			return uuid.Nil, ErrInvalidUUID
		}
		id[i] = byte(hi<<4 | lo)
	}
	return id, nil
}

// uuidByteOffsets holds the text offset of each of the 16 encoded bytes.
var uuidByteOffsets = [16]int{
	0, 2, 4, 6,
	9, 11,
	14, 16,
	19, 21,
	24, 26, 28, 30, 32, 34,
}

// Package charseq provides allocation-free parsing and scanning routines that
// work directly on indexable character sequences, without building
// intermediate strings.
//
// The package is meant for hot paths that chew through large volumes of
// numeric or identifier text, such as log parsing or financial data
// ingestion, where every temporary string shows up in the allocation profile.
//
// # Architecture
//
// Everything is written against the Sequence interface: Len, At, Slice and
// String. Concrete sequences are provided for the usual Go representations:
//
//   - String – byte-indexed view over a string
//   - Bytes  – byte-indexed view over a []byte
//   - Runes  – code point indexed view over a []rune
//   - UTF16  – UTF-16 code units, as produced by Java or JavaScript
//   - Empty  – shared zero-length sequence
//
// Slice never copies, so sub-ranges can be handed around freely.
//
// The decimal parser (ParseInt32, ParseInt64 and their Range variants)
// follows the grammar of strconv.ParseInt with base 10: one optional sign
// followed by at least one ASCII digit. The magnitude is accumulated in
// negative form so the most negative value of each width parses without a
// special case, and every step is bounds checked before it is taken.
//
// The scanning helpers (IndexRune, LastIndexRune, Index, HasPrefix, Trim,
// Split, Between, HasBOM, TrimBOM, ParseUUID, NewReader) are plain linear
// scans over the same interface.
//
// # Usage
//
//	line := charseq.String("2024-06-01 GET /orders/1789 200 5132")
//	for field := range charseq.Split(line, ' ') {
//	    if charseq.IsNumeric(field) {
//	        n, err := charseq.ParseInt64(field)
//	        ...
//	    }
//	}
//
//	// parse "1789" without slicing the line first
//	id, err := charseq.ParseInt32Range(line, 23, 27)
//
// # Error Handling
//
// Parse failures are returned as *NumberError and match ErrInvalidNumber
// through errors.Is. The wrapped cause tells them apart: ErrSyntax,
// ErrRange, ErrEmpty or ErrNullInput. The Range functions put only the
// requested range into the error, never the surrounding text.
//
// Invalid begin/end pairs are reported as *IndexError, matching
// ErrIndexOutOfRange, and are never confused with a malformed number.
// At and Slice panic with the same type, like slice expressions do.
//
// # Performance Considerations
//
// Successful parses perform no heap allocation. Converting a string to the
// Sequence interface may allocate once at the call site; keep the converted
// value around when parsing many ranges of the same line.
package charseq

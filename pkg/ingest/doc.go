// Package ingest checks delimited text files against a column schema using
// the allocation-free parsers in charseq and the checksums in checksum.
//
// A Schema is usually loaded from YAML:
//
//	delimiter: ";"
//	header: true
//	columns:
//	  - {name: id,     index: 0, kind: uuid}
//	  - {name: amount, index: 1, kind: int64}
//	  - {name: card,   index: 2, kind: luhn}
//	  - {name: iban,   index: 3, kind: iban, optional: true}
//
// Supported kinds are int32, int64, numeric, uuid, luhn and iban. Fields are
// trimmed of ASCII space and control characters before they are checked.
//
// # Usage
//
//	schema, err := ingest.LoadSchemaFile("payments.yaml")
//	if err != nil {
//	    return err
//	}
//	sc, err := ingest.NewScanner(schema, ingest.WithLogger(log), ingest.WithMaxIssues(100))
//	if err != nil {
//	    return err
//	}
//	rep, err := sc.Scan(ctx, f)
//
// Input may start with a UTF-8 or UTF-16 byte order mark; UTF-16 input is
// converted to UTF-8 on the fly.
//
// # Error Handling
//
// Scan returns an error only when reading fails, a line exceeds the
// configured maximum or ctx is cancelled. Field failures are collected in
// Report.Issues; each Issue unwraps to the underlying cause, so
// errors.Is(issue, charseq.ErrRange) or errors.Is(issue, ErrChecksumMismatch)
// work as expected. Issue errors never hold a reference to the read buffer.
package ingest

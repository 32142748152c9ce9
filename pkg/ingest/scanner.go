package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/charseq/pkg/charseq"
	"github.com/dmitrymomot/charseq/pkg/checksum"
	"github.com/dmitrymomot/charseq/pkg/logger"
)

const (
	defaultMaxIssues   = 1000
	defaultMaxLineSize = 1 << 20
)

// Issue is a single failed field check.
type Issue struct {
	Line   int
	Column string
	Err    error
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %s: %v", i.Line, i.Column, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Report summarises a scan.
type Report struct {
	Lines     int // lines read, header included
	Valid     int
	Invalid   int
	Skipped   int // header and blank lines
	Issues    []Issue
	Truncated bool // more issues were found than recorded
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger issues are reported to. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxIssues caps the number of issues kept in the report.
// Values below one are ignored.
func WithMaxIssues(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxIssues = n
		}
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
// Values below one are ignored.
func WithMaxLineSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxLineSize = n
		}
	}
}

// Scanner checks delimited text line by line against a Schema.
//
// Lines are never copied into strings: each one is viewed as charseq.Bytes
// over the read buffer, split lazily and every configured field is parsed
// or checksummed in place. A Scanner is safe for concurrent use.
type Scanner struct {
	schema      *Schema
	byIndex     [][]Column
	log         *slog.Logger
	maxIssues   int
	maxLineSize int
}

// NewScanner validates schema and builds a Scanner for it.
func NewScanner(schema *Schema, opts ...Option) (*Scanner, error) {
	if schema == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrInvalidSchema)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	s := &Scanner{
		schema:      schema,
		log:         slog.New(slog.DiscardHandler),
		maxIssues:   defaultMaxIssues,
		maxLineSize: defaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	maxIndex := 0
	for _, c := range schema.Columns {
		maxIndex = max(maxIndex, c.Index)
	}
	s.byIndex = make([][]Column, maxIndex+1)
	for _, c := range schema.Columns {
		s.byIndex[c.Index] = append(s.byIndex[c.Index], c)
	}
	return s, nil
}

// Scan reads r to the end and checks every line.
//
// Input is decoded as UTF-8 unless it starts with a UTF-16 byte order mark,
// and a leading UTF-8 byte order mark is dropped. Cancelling ctx stops the
// scan between lines; the partial report is returned with ctx's error.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) (*Report, error) {
	in := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, min(64*1024, s.maxLineSize)), s.maxLineSize)

	rep := &Report{}
	sep := rune(s.schema.delimiter())

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Lines++

		line := charseq.Bytes(sc.Bytes())
		if (s.schema.Header && rep.Lines == 1) || charseq.Trim(line).Len() == 0 {
			rep.Skipped++
			continue
		}

		if s.checkLine(ctx, rep, line, sep) {
			rep.Valid++
		} else {
			rep.Invalid++
		}
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("read line %d: %w", rep.Lines+1, err)
	}

	s.log.InfoContext(ctx, "scan finished",
		logger.Component("ingest"),
		slog.Int("lines", rep.Lines),
		slog.Int("valid", rep.Valid),
		slog.Int("invalid", rep.Invalid),
	)
	return rep, nil
}

// checkLine reports whether every column of line passed.
func (s *Scanner) checkLine(ctx context.Context, rep *Report, line charseq.Sequence, sep rune) bool {
	ok := true
	fields := 0
	for field := range charseq.Split(line, sep) {
		if fields < len(s.byIndex) {
			for _, c := range s.byIndex[fields] {
				if err := checkField(c, charseq.Trim(field)); err != nil {
					s.addIssue(ctx, rep, c, err)
					ok = false
				}
			}
		}
		fields++
		if fields >= len(s.byIndex) {
			break
		}
	}

	for idx := fields; idx < len(s.byIndex); idx++ {
		for _, c := range s.byIndex[idx] {
			if !c.Optional {
				s.addIssue(ctx, rep, c, ErrMissingColumn)
				ok = false
			}
		}
	}
	return ok
}

func (s *Scanner) addIssue(ctx context.Context, rep *Report, c Column, err error) {
	s.log.WarnContext(ctx, "invalid field",
		logger.Line(rep.Lines),
		logger.Field(c.Name),
		logger.Error(err),
	)
	if len(rep.Issues) >= s.maxIssues {
		rep.Truncated = true
		return
	}
	rep.Issues = append(rep.Issues, Issue{Line: rep.Lines, Column: c.Name, Err: err})
}

// checkField applies the column check to an already trimmed field.
func checkField(c Column, field charseq.Sequence) error {
	if field.Len() == 0 {
		if c.Optional {
			return nil
		}
		return ErrEmptyField
	}

	switch c.Kind {
	case KindInt32:
		_, err := charseq.ParseInt32(field)
		return err
	case KindInt64:
		_, err := charseq.ParseInt64(field)
		return err
	case KindUUID:
		_, err := charseq.ParseUUID(field)
		return err
	case KindNumeric:
		if !charseq.IsNumeric(field) {
			return ErrNotNumeric
		}
		return nil
	case KindLuhn:
		return checksumResult(checksum.Luhn(field))
	case KindIBAN:
		return checksumResult(checksum.IBAN(field))
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidSchema, c.Kind)
}

func checksumResult(ok bool, err error) error {
	switch {
	case err != nil:
		return err
	case !ok:
		return ErrChecksumMismatch
	}
	return nil
}

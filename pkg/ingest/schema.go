package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Kind names the check applied to a column.
type Kind string

const (
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindLuhn    Kind = "luhn"
	KindIBAN    Kind = "iban"
	KindUUID    Kind = "uuid"
	KindNumeric Kind = "numeric"
)

func (k Kind) valid() bool {
	switch k {
	case KindInt32, KindInt64, KindLuhn, KindIBAN, KindUUID, KindNumeric:
		return true
	}
	return false
}

// Column describes one checked field of a delimited line.
// Index is zero based. Optional columns may be blank or missing.
type Column struct {
	Name     string `yaml:"name"`
	Index    int    `yaml:"index"`
	Kind     Kind   `yaml:"kind"`
	Optional bool   `yaml:"optional"`
}

// Schema describes the layout of a delimited text stream.
//
//	delimiter: ";"
//	header: true
//	columns:
//	  - {name: id, index: 0, kind: uuid}
//	  - {name: amount, index: 3, kind: int64}
//	  - {name: iban, index: 4, kind: iban, optional: true}
type Schema struct {
	Delimiter string   `yaml:"delimiter"`
	Header    bool     `yaml:"header"`
	Columns   []Column `yaml:"columns"`
}

// LoadSchema decodes and validates a YAML schema. Unknown keys are rejected.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSchemaFile is LoadSchema for a file path.
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	return LoadSchema(f)
}

// Validate checks the schema and defaults an empty delimiter to a comma.
func (s *Schema) Validate() error {
	if s.Delimiter == "" {
		s.Delimiter = ","
	}
	if utf8.RuneCountInString(s.Delimiter) != 1 || s.Delimiter[0] >= utf8.RuneSelf {
		return fmt.Errorf("%w: delimiter must be a single ASCII character, got %q", ErrInvalidSchema, s.Delimiter)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidSchema)
	}

	names := make(map[string]bool, len(s.Columns))
	for i, c := range s.Columns {
		switch {
		case c.Name == "":
			return fmt.Errorf("%w: column %d has no name", ErrInvalidSchema, i)
		case names[c.Name]:
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, c.Name)
		case c.Index < 0:
			return fmt.Errorf("%w: column %q has negative index", ErrInvalidSchema, c.Name)
		case !c.Kind.valid():
			return fmt.Errorf("%w: column %q has unknown kind %q", ErrInvalidSchema, c.Name, c.Kind)
		}
		names[c.Name] = true
	}
	return nil
}

func (s *Schema) delimiter() byte {
	return s.Delimiter[0]
}

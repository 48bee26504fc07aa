package record

import (
	"errors"
	"fmt"

	"github.com/gnolang/parsec/parser"
	"github.com/gnolang/parsec/result"
)

// FieldKind selects the parser used for a field.
type FieldKind string

const (
	KindWord    FieldKind = "word"    // letters
	KindNatural FieldKind = "natural" // non-negative integer, stored as int
	KindDigits  FieldKind = "digits"  // digits kept as text, e.g. a zip code
	KindPhone   FieldKind = "phone"   // digit groups joined by '-'
	KindText    FieldKind = "text"    // rest of the line; must be the last field
)

// FieldSpec describes one field of a record layout.
type FieldSpec struct {
	Name string    `yaml:"name" json:"name"`
	Kind FieldKind `yaml:"kind" json:"kind"`
}

// Field is a parsed field value. Value is an int for natural fields and a
// string otherwise.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Fields is a parsed record in layout order.
type Fields []Field

// Get returns the value of the named field.
func (fs Fields) Get(name string) (any, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

var (
	errEmptySchema   = errors.New("schema has no fields")
	errTextNotLast   = errors.New("a text field must be the last field")
	errUnnamedField  = errors.New("field name must not be empty")
	errDuplicateName = errors.New("duplicate field name")
)

// Schema is a validated record layout.
type Schema struct {
	specs  []FieldSpec
	parser parser.Parser[Fields]
}

// DefaultFields is the Person layout.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{Name: "name", Kind: KindWord},
		{Name: "age", Kind: KindNatural},
		{Name: "phone", Kind: KindPhone},
		{Name: "address", Kind: KindText},
	}
}

// DefaultSchema returns the Schema for DefaultFields.
func DefaultSchema() *Schema {
	s, err := NewSchema(DefaultFields())
	if err != nil {
		panic(err) // the default layout is always valid
	}
	return s
}

// NewSchema validates specs and builds the record parser for them.
func NewSchema(specs []FieldSpec) (*Schema, error) {
	if len(specs) == 0 {
		return nil, errEmptySchema
	}

	seen := make(map[string]bool, len(specs))
	fields := make([]parser.Parser[any], 0, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("field %d: %w", i, errUnnamedField)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("field %q: %w", spec.Name, errDuplicateName)
		}
		seen[spec.Name] = true

		if spec.Kind == KindText && i != len(specs)-1 {
			return nil, fmt.Errorf("field %q: %w", spec.Name, errTextNotLast)
		}

		p, err := fieldParser(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", spec.Name, err)
		}
		if i > 0 {
			p = parser.AndThen(parser.WhitespaceRun(), p)
		}
		fields = append(fields, p)
	}

	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	p := parser.Map(parser.SequenceOf(fields...), func(values []any) Fields {
		out := make(Fields, len(values))
		for i, v := range values {
			out[i] = Field{Name: names[i], Value: v}
		}
		return out
	})

	return &Schema{specs: append([]FieldSpec(nil), specs...), parser: p}, nil
}

func fieldParser(kind FieldKind) (parser.Parser[any], error) {
	switch kind {
	case KindWord:
		return anyOf(parser.Word()), nil
	case KindNatural:
		return anyOf(parser.NaturalNumber()), nil
	case KindDigits:
		return anyOf(parser.Map(parser.OneOrMore(parser.DigitChar()), func(rs []rune) string { return string(rs) })), nil
	case KindPhone:
		return anyOf(Phone()), nil
	case KindText:
		return anyOf(Address()), nil
	default:
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
}

func anyOf[V any](p parser.Parser[V]) parser.Parser[any] {
	return parser.Map(p, func(v V) any { return v })
}

// Specs returns a copy of the layout.
func (s *Schema) Specs() []FieldSpec {
	return append([]FieldSpec(nil), s.specs...)
}

// Parser returns the record parser. It stops at the end of the line without
// consuming the line break.
func (s *Schema) Parser() parser.Parser[Fields] {
	return s.parser
}

// ParseLine parses line as one complete record.
func (s *Schema) ParseLine(line string) result.Result[Fields] {
	return value(parser.Skip(s.parser, parser.End()).Run(line))
}

// ParseAll parses every line of text as a record.
func (s *Schema) ParseAll(text string) result.Result[[]Fields] {
	return parseLines(text, s.parser)
}

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/parsec/result"
)

func TestNewSchemaValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		specs   []FieldSpec
		wantErr error
		errText string
	}{
		{
			name:    "empty",
			specs:   nil,
			wantErr: errEmptySchema,
		},
		{
			name:    "unnamed field",
			specs:   []FieldSpec{{Name: "", Kind: KindWord}},
			wantErr: errUnnamedField,
		},
		{
			name: "duplicate name",
			specs: []FieldSpec{
				{Name: "a", Kind: KindWord},
				{Name: "a", Kind: KindNatural},
			},
			wantErr: errDuplicateName,
		},
		{
			name: "text not last",
			specs: []FieldSpec{
				{Name: "note", Kind: KindText},
				{Name: "age", Kind: KindNatural},
			},
			wantErr: errTextNotLast,
		},
		{
			name:    "unknown kind",
			specs:   []FieldSpec{{Name: "when", Kind: "date"}},
			errText: `field "when": unknown field kind "date"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewSchema(tt.specs)
			require.Error(t, err)
			assert.Nil(t, s)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errText != "" {
				assert.EqualError(t, err, tt.errText)
			}
		})
	}
}

func TestDefaultSchemaMatchesPerson(t *testing.T) {
	t.Parallel()
	s := DefaultSchema()
	assert.Equal(t, DefaultFields(), s.Specs())

	r := s.ParseLine("Alice 30 555-0100 12 Main St.")
	fields, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, Fields{
		{Name: "name", Value: "Alice"},
		{Name: "age", Value: 30},
		{Name: "phone", Value: "555-0100"},
		{Name: "address", Value: "12 Main St."},
	}, fields)

	age, found := fields.Get("age")
	assert.True(t, found)
	assert.Equal(t, 30, age)

	_, found = fields.Get("email")
	assert.False(t, found)
}

func TestSchemaParseLine(t *testing.T) {
	t.Parallel()
	s, err := NewSchema([]FieldSpec{
		{Name: "zip", Kind: KindDigits},
		{Name: "count", Kind: KindNatural},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		line     string
		expected result.Result[Fields]
	}{
		{
			name: "valid",
			line: "01234 7",
			expected: result.Ok(Fields{
				{Name: "zip", Value: "01234"},
				{Name: "count", Value: 7},
			}),
		},
		{
			name:     "trailing input",
			line:     "01234 7 extra",
			expected: result.Fail[Fields](result.ErrUnexpectedInput(" ")),
		},
		{
			name:     "missing field",
			line:     "01234",
			expected: result.Fail[Fields](result.ErrNotEnoughInput()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, s.ParseLine(tt.line))
		})
	}
}

func TestSchemaParseAll(t *testing.T) {
	t.Parallel()
	s := DefaultSchema()

	r := s.ParseAll("Alice 30 555-0100 12 Main St.\nBob 41 5550199 9 Elm Road, Apt 2\n")
	records, ok := r.Value()
	require.True(t, ok)
	require.Len(t, records, 2)
	name, _ := records[1].Get("name")
	assert.Equal(t, "Bob", name)

	r = s.ParseAll("Alice 30 555-0100 12 Main St.\n\nBob 41 5550199 x\n")
	e, failed := r.Failure()
	require.True(t, failed)
	assert.Equal(t, result.ErrUnexpectedInput("\n"), e)
}

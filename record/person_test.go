package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/parsec/parser"
	"github.com/gnolang/parsec/result"
)

var (
	alice = Person{Name: "Alice", Age: 30, Phone: "555-0100", Address: "12 Main St."}
	bob   = Person{Name: "Bob", Age: 41, Phone: "5550199", Address: "9 Elm Road, Apt 2"}
)

func TestPersonParser(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected result.Result[parser.State[Person]]
	}{
		{
			name:     "single record",
			input:    "Alice 30 555-0100 12 Main St.",
			expected: result.Ok(parser.State[Person]{Remaining: "", Value: alice}),
		},
		{
			name:     "stops before newline",
			input:    "Alice  30\t555-0100 12 Main St.  \nBob",
			expected: result.Ok(parser.State[Person]{Remaining: "\nBob", Value: alice}),
		},
		{
			name:     "age is not a number",
			input:    "Alice thirty 555-0100 12 Main St.",
			expected: result.Fail[parser.State[Person]](result.ErrUnexpectedInput("t")),
		},
		{
			name:     "missing separator",
			input:    "Alice30 555-0100 x",
			expected: result.Fail[parser.State[Person]](result.ErrUnexpectedInput("3")),
		},
		{
			name:     "truncated",
			input:    "Alice 30",
			expected: result.Fail[parser.State[Person]](result.ErrNotEnoughInput()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, PersonParser().Run(tt.input))
		})
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected result.Result[[]Person]
	}{
		{
			name:     "empty",
			input:    "",
			expected: result.Ok([]Person{}),
		},
		{
			name:     "two records",
			input:    "Alice 30 555-0100 12 Main St.\nBob 41 5550199 9 Elm Road, Apt 2",
			expected: result.Ok([]Person{alice, bob}),
		},
		{
			name:     "trailing newline",
			input:    "Alice 30 555-0100 12 Main St.\nBob 41 5550199 9 Elm Road, Apt 2\n",
			expected: result.Ok([]Person{alice, bob}),
		},
		{
			name:     "crlf line endings",
			input:    "Alice 30 555-0100 12 Main St.\r\nBob 41 5550199 9 Elm Road, Apt 2\r\n",
			expected: result.Ok([]Person{alice, bob}),
		},
		{
			name:     "first error wins",
			input:    "Alice 30 555-0100 12 Main St.\nBob x 5550199 y\n42 z",
			expected: result.Fail[[]Person](result.ErrUnexpectedInput("x")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseAll(tt.input))
		})
	}
}

func TestParseLines(t *testing.T) {
	t.Parallel()
	got := ParseLines([]string{
		"Alice 30 555-0100 12 Main St.",
		"Bob 41 5550199 9 Elm Road, Apt 2",
	})
	people, ok := got.Value()
	require.True(t, ok)
	assert.Equal(t, []Person{alice, bob}, people)

	got = ParseLines([]string{"Alice 30 555-0100 12 Main St.", "Bob", "Carol"})
	e, failed := got.Failure()
	require.True(t, failed)
	assert.Equal(t, result.ErrNotEnoughInput(), e)
}

func TestPhone(t *testing.T) {
	t.Parallel()
	assert.Equal(t, result.Ok(parser.State[string]{Remaining: " x", Value: "1-800-555"}), Phone().Run("1-800-555 x"))
	assert.Equal(t, result.Ok(parser.State[string]{Remaining: "-", Value: "12"}), Phone().Run("12-"))
}

func TestCountLines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"\n", 1},
		{"a\n\nb\n", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CountLines(tt.input), "input %q", tt.input)
	}
}

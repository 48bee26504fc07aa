// Package record parses line-oriented records with the combinators from the
// parser package. Person is the fixed four-field layout; Schema describes a
// layout loaded from configuration.
package record

import (
	"strings"

	"github.com/gnolang/parsec/parser"
	"github.com/gnolang/parsec/result"
)

// Person is one line of the form
//
//	<name> <age> <phone> <address>
//
// where fields are separated by runs of spaces or tabs and the address takes
// the rest of the line.
type Person struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Phone parses groups of digits joined by dashes, e.g. 555-0100.
func Phone() parser.Parser[string] {
	digits := parser.Map(parser.OneOrMore(parser.DigitChar()), func(rs []rune) string { return string(rs) })
	return parser.Map(parser.SeparatedBy(digits, parser.Exactly('-')), func(groups []string) string {
		return strings.Join(groups, "-")
	})
}

// Address takes the rest of the line without trailing blanks or a carriage
// return.
func Address() parser.Parser[string] {
	return parser.Map(parser.RestOfLine(), trimLineEnd)
}

// PersonParser parses a single Person and stops at the end of the line
// without consuming the line break.
func PersonParser() parser.Parser[Person] {
	ws := parser.WhitespaceRun()
	return parser.Bind(parser.Word(), func(name string) parser.Parser[Person] {
		return parser.Bind(parser.AndThen(ws, parser.NaturalNumber()), func(age int) parser.Parser[Person] {
			return parser.Bind(parser.AndThen(ws, Phone()), func(phone string) parser.Parser[Person] {
				return parser.Map(parser.AndThen(ws, Address()), func(address string) Person {
					return Person{Name: name, Age: age, Phone: phone, Address: address}
				})
			})
		})
	})
}

// ParseAll parses every line of text as a Person. It returns all records in
// order, or the first failure.
func ParseAll(text string) result.Result[[]Person] {
	return parseLines(text, PersonParser())
}

// ParseLines parses each element of lines as a complete Person record.
func ParseLines(lines []string) result.Result[[]Person] {
	line := parser.Skip(PersonParser(), parser.End())
	rs := make([]result.Result[Person], 0, len(lines))
	for _, l := range lines {
		rs = append(rs, value(line.Run(l)))
	}
	return result.Sequence(rs)
}

// parseLines runs one p per line of text, each line ending at a newline or
// at the end of the input.
func parseLines[V any](text string, p parser.Parser[V]) result.Result[[]V] {
	all := parser.ExactlyN(CountLines(text), parser.Skip(p, lineEnd()))
	return value(all.Run(text))
}

func lineEnd() parser.Parser[struct{}] {
	newline := parser.Map(parser.Exactly('\n'), func(rune) struct{} { return struct{}{} })
	return parser.OrElse(newline, parser.End())
}

// CountLines returns the number of lines in text. A trailing newline does not
// start a new line and empty text has none.
func CountLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

func value[V any](r result.Result[parser.State[V]]) result.Result[V] {
	return result.Map(r, func(s parser.State[V]) V { return s.Value })
}

func trimLineEnd(s string) string {
	return strings.TrimRight(s, " \t\r")
}

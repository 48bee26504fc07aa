package parser

import (
	"strconv"
	"unicode"

	"github.com/gnolang/parsec/result"
)

// DigitChar takes one ASCII decimal digit.
func DigitChar() Parser[rune] {
	return Satisfying(func(c rune) bool { return '0' <= c && c <= '9' })
}

func LowerChar() Parser[rune] { return Satisfying(unicode.IsLower) }
func UpperChar() Parser[rune] { return Satisfying(unicode.IsUpper) }

// AlphaChar takes a lower or upper case letter.
func AlphaChar() Parser[rune] {
	return OrElse(LowerChar(), UpperChar())
}

// SpaceChar takes a space or a tab. Line breaks are not spaces here: records
// are line oriented and a newline ends one.
func SpaceChar() Parser[rune] {
	return Satisfying(func(c rune) bool { return c == ' ' || c == '\t' })
}

// NaturalNumber reads a run of digits as a non-negative int. A run too large
// for an int fails with NotANumber carrying the digits.
func NaturalNumber() Parser[int] {
	return Bind(OneOrMore(DigitChar()), func(digits []rune) Parser[int] {
		text := string(digits)
		n, err := strconv.Atoi(text)
		if err != nil {
			return Never[int](result.ErrNotANumber(text))
		}
		return Always(n)
	})
}

// WhitespaceRun takes one or more spaces or tabs and returns them as a string.
func WhitespaceRun() Parser[string] {
	return Map(OneOrMore(SpaceChar()), runesToString)
}

// Word takes one or more letters.
func Word() Parser[string] {
	return Map(OneOrMore(AlphaChar()), runesToString)
}

// RestOfLine takes every rune up to, but not including, the next newline.
// At least one rune is required.
func RestOfLine() Parser[string] {
	return Map(OneOrMore(Satisfying(func(c rune) bool { return c != '\n' })), runesToString)
}

func runesToString(rs []rune) string { return string(rs) }

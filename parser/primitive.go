package parser

import (
	"unicode/utf8"

	"github.com/gnolang/parsec/result"
)

// Always succeeds with value without consuming input.
func Always[V any](value V) Parser[V] {
	return Func[V](func(input string) result.Result[State[V]] {
		return ok(input, value)
	})
}

// Never fails with err without consuming input.
func Never[V any](err result.Error) Parser[V] {
	return Func[V](func(string) result.Result[State[V]] {
		return fail[V](err)
	})
}

// AnyChar takes the first rune of the input.
func AnyChar() Parser[rune] {
	return Func[rune](func(input string) result.Result[State[rune]] {
		if input == "" {
			return fail[rune](result.ErrNotEnoughInput())
		}
		c, size := utf8.DecodeRuneInString(input)
		return ok(input[size:], c)
	})
}

// Satisfying takes the first rune if pred accepts it. A rejected rune is
// reported as UnexpectedInput; empty input as NotEnoughInput.
func Satisfying(pred func(rune) bool) Parser[rune] {
	return Bind(AnyChar(), func(c rune) Parser[rune] {
		if pred(c) {
			return Always(c)
		}
		return Never[rune](result.ErrUnexpectedInput(string(c)))
	})
}

// Exactly takes the rune target.
func Exactly(target rune) Parser[rune] {
	return Satisfying(func(c rune) bool { return c == target })
}

// End succeeds only when the input is exhausted.
func End() Parser[struct{}] {
	return Func[struct{}](func(input string) result.Result[State[struct{}]] {
		if input != "" {
			c, _ := utf8.DecodeRuneInString(input)
			return fail[struct{}](result.ErrUnexpectedInput(string(c)))
		}
		return ok(input, struct{}{})
	})
}

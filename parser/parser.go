package parser

import (
	"github.com/gnolang/parsec/result"
)

// State is the outcome of a successful parser run: the value produced and the
// input that is still left.
type State[V any] struct {
	Remaining string
	Value     V
}

// Parser is anything that can be run on an input string.
type Parser[V any] interface {
	Run(input string) result.Result[State[V]]
}

// Func adapts an ordinary function to the Parser interface.
type Func[V any] func(input string) result.Result[State[V]]

func (f Func[V]) Run(input string) result.Result[State[V]] { return f(input) }

var (
	_ Parser[int] = Func[int](nil)
	_ Parser[int] = mapParser[string, int]{}
	_ Parser[int] = bindParser[string, int]{}
	_ Parser[int] = choiceParser[int]{}
	_ Parser[int] = deferredParser[int]{}
)

// Parse runs p on input and requires all of the input to be consumed.
// Leftover input is reported as UnexpectedInput carrying its first rune.
func Parse[V any](p Parser[V], input string) (V, error) {
	whole := Bind(p, func(v V) Parser[V] {
		return Map(End(), func(struct{}) V { return v })
	})
	s, err := whole.Run(input).Get()
	return s.Value, err
}

// ok and fail shorten the common constructors in this package.
func ok[V any](remaining string, value V) result.Result[State[V]] {
	return result.Ok(State[V]{Remaining: remaining, Value: value})
}

func fail[V any](err result.Error) result.Result[State[V]] {
	return result.Fail[State[V]](err)
}

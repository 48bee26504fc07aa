package parser

import (
	"github.com/gnolang/parsec/result"
)

// ZeroOrMore applies p as many times as it succeeds and collects the values
// in order. It never fails; the failure that stops the repetition is
// discarded and the input at that point is left for the next parser.
//
// p must consume input whenever it succeeds, otherwise this loops forever.
func ZeroOrMore[V any](p Parser[V]) Parser[[]V] {
	return Func[[]V](func(input string) result.Result[State[[]V]] {
		values := []V{}
		rest := input
		for {
			s, matched := p.Run(rest).Value()
			if !matched {
				break
			}
			values = append(values, s.Value)
			rest = s.Remaining
		}
		return ok(rest, values)
	})
}

// OneOrMore is like ZeroOrMore but requires at least one success of p.
// Empty input fails with NotEnoughInput before p is tried.
func OneOrMore[V any](p Parser[V]) Parser[[]V] {
	many := ZeroOrMore(p)
	return Func[[]V](func(input string) result.Result[State[[]V]] {
		if input == "" {
			return fail[[]V](result.ErrNotEnoughInput())
		}
		return Bind(p, func(first V) Parser[[]V] {
			return Map(many, func(rest []V) []V {
				return append([]V{first}, rest...)
			})
		}).Run(input)
	})
}

// SequenceOf runs parsers one after another, each on the input left by the
// previous one, and collects their values in order. The first failure is
// returned and nothing is consumed from the caller's point of view.
func SequenceOf[V any](parsers ...Parser[V]) Parser[[]V] {
	return Func[[]V](func(input string) result.Result[State[[]V]] {
		values := make([]V, 0, len(parsers))
		rest := input
		for _, p := range parsers {
			r := p.Run(rest)
			s, matched := r.Value()
			if !matched {
				e, _ := r.Failure()
				return fail[[]V](e)
			}
			values = append(values, s.Value)
			rest = s.Remaining
		}
		return ok(rest, values)
	})
}

// ExactlyN runs p n times in sequence. n <= 0 always succeeds with an empty
// slice.
func ExactlyN[V any](n int, p Parser[V]) Parser[[]V] {
	if n < 0 {
		n = 0
	}
	parsers := make([]Parser[V], n)
	for i := range parsers {
		parsers[i] = p
	}
	return SequenceOf(parsers...)
}

// SeparatedBy parses one or more p with sep between each pair.
func SeparatedBy[V, S any](p Parser[V], sep Parser[S]) Parser[[]V] {
	return Bind(p, func(first V) Parser[[]V] {
		return Map(ZeroOrMore(AndThen(sep, p)), func(rest []V) []V {
			return append([]V{first}, rest...)
		})
	})
}

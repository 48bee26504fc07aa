package parser

import (
	"github.com/gnolang/parsec/result"
)

type mapParser[V, W any] struct {
	p Parser[V]
	f func(V) W
}

func (m mapParser[V, W]) Run(input string) result.Result[State[W]] {
	return result.Map(m.p.Run(input), func(s State[V]) State[W] {
		return State[W]{Remaining: s.Remaining, Value: m.f(s.Value)}
	})
}

// Map runs p and applies f to the value it produces. Consumption is that of p.
func Map[V, W any](p Parser[V], f func(V) W) Parser[W] {
	return mapParser[V, W]{p: p, f: f}
}

type bindParser[V, W any] struct {
	p Parser[V]
	f func(V) Parser[W]
}

func (b bindParser[V, W]) Run(input string) result.Result[State[W]] {
	return result.Bind(b.p.Run(input), func(s State[V]) result.Result[State[W]] {
		return b.f(s.Value).Run(s.Remaining)
	})
}

// Bind runs p, passes its value to f, and runs the resulting parser on
// whatever p left over. A failure of p is returned as is and f is not called.
func Bind[V, W any](p Parser[V], f func(V) Parser[W]) Parser[W] {
	return bindParser[V, W]{p: p, f: f}
}

// AndThen runs p and then next, discarding p's value.
func AndThen[V, W any](p Parser[V], next Parser[W]) Parser[W] {
	return Bind(p, func(V) Parser[W] { return next })
}

// Skip runs p and then next, keeping p's value.
func Skip[V, W any](p Parser[V], next Parser[W]) Parser[V] {
	return Bind(p, func(v V) Parser[V] {
		return Map(next, func(W) V { return v })
	})
}

type choiceParser[V any] struct {
	first  Parser[V]
	second Parser[V]
}

func (c choiceParser[V]) Run(input string) result.Result[State[V]] {
	return c.first.Run(input).OrElse(func() result.Result[State[V]] {
		return c.second.Run(input)
	})
}

// OrElse tries p and, if it fails, runs alt on the same input. Only the
// successful branch consumes input. If both fail, p's error is reported.
func OrElse[V any](p, alt Parser[V]) Parser[V] {
	return choiceParser[V]{first: p, second: alt}
}

// Optional runs p and falls back to def without consuming input.
func Optional[V any](p Parser[V], def V) Parser[V] {
	return OrElse(p, Always(def))
}

type deferredParser[V any] struct {
	build func() Parser[V]
}

func (d deferredParser[V]) Run(input string) result.Result[State[V]] {
	return d.build().Run(input)
}

// Defer postpones building a parser until it is run. It allows a grammar to
// refer to itself.
func Defer[V any](build func() Parser[V]) Parser[V] {
	return deferredParser[V]{build: build}
}

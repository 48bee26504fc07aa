// Package result provides a two-state Result type: a successful value or a
// typed Error. Every failure is a value; nothing in this package panics.
//
// Operations that change the value type (Map, Bind, Fold, Sequence) are
// package functions because Go methods cannot declare type parameters.
// Operations that keep the type (GetOrElse, OrElse) are methods.
//
// Map and Bind follow the usual laws:
//
//	Map(r, identity) == r
//	Map(Map(r, f), g) == Map(r, func(v) { return g(f(v)) })
//	Bind(Bind(r, f), g) == Bind(r, func(v) { return Bind(f(v), g) })
package result

import "fmt"

// Result holds either a value (Ok) or an Error (Fail), never both.
type Result[V any] struct {
	value V
	err   Error
	ok    bool
}

// Ok creates a successful Result.
func Ok[V any](value V) Result[V] {
	return Result[V]{value: value, ok: true}
}

// Fail creates a failed Result.
func Fail[V any](err Error) Result[V] {
	return Result[V]{err: err}
}

func (r Result[V]) IsOk() bool { return r.ok }

// Value returns the contained value and true for Ok, or the zero value and
// false for Fail.
func (r Result[V]) Value() (V, bool) {
	if !r.ok {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Failure returns the contained Error and true for Fail.
func (r Result[V]) Failure() (Error, bool) {
	if r.ok {
		return Error{}, false
	}
	return r.err, true
}

// Get converts r to Go's usual (value, error) pair.
func (r Result[V]) Get() (V, error) {
	if !r.ok {
		var zero V
		return zero, r.err
	}
	return r.value, nil
}

// GetOrElse unwraps an Ok value. def is only called on Fail.
func (r Result[V]) GetOrElse(def func() V) V {
	if r.ok {
		return r.value
	}
	return def()
}

// OrElse returns r if it is Ok. Otherwise it evaluates alt and returns it if
// that is Ok. When both fail, r's error is kept: the first failure wins.
func (r Result[V]) OrElse(alt func() Result[V]) Result[V] {
	if r.ok {
		return r
	}
	if next := alt(); next.ok {
		return next
	}
	return r
}

func (r Result[V]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return "Fail(" + r.err.String() + ")"
}

// Fold applies exactly one of onFail or onOk depending on r's state.
func Fold[V, X any](r Result[V], onFail func(Error) X, onOk func(V) X) X {
	if r.ok {
		return onOk(r.value)
	}
	return onFail(r.err)
}

// Map applies f to an Ok value. A Fail passes through untouched.
func Map[V, W any](r Result[V], f func(V) W) Result[W] {
	if !r.ok {
		return Fail[W](r.err)
	}
	return Ok(f(r.value))
}

// Bind chains a computation that may itself fail. f is not called on Fail.
func Bind[V, W any](r Result[V], f func(V) Result[W]) Result[W] {
	if !r.ok {
		return Fail[W](r.err)
	}
	return f(r.value)
}

// Sequence turns a list of Results into a Result of a list. The values keep
// their original order; if any element failed, the leftmost failure is
// returned.
func Sequence[V any](xs []Result[V]) Result[[]V] {
	values := make([]V, 0, len(xs))
	for _, x := range xs {
		if !x.ok {
			return Fail[[]V](x.err)
		}
		values = append(values, x.value)
	}
	return Ok(values)
}

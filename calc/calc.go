// Package calc is a two-operand integer calculator built on the result and
// parser packages.
package calc

import (
	"math"
	"strings"

	"github.com/gnolang/parsec/parser"
	"github.com/gnolang/parsec/result"
)

type operation func(lhs, rhs int) result.Result[int]

// Results outside the int range are InvalidOperation, never wrapped values.
var operations = map[string]operation{
	"+": func(lhs, rhs int) result.Result[int] {
		if (rhs > 0 && lhs > math.MaxInt-rhs) || (rhs < 0 && lhs < math.MinInt-rhs) {
			return result.Fail[int](result.ErrInvalidOperation("+"))
		}
		return result.Ok(lhs + rhs)
	},
	"-": func(lhs, rhs int) result.Result[int] {
		if (rhs < 0 && lhs > math.MaxInt+rhs) || (rhs > 0 && lhs < math.MinInt+rhs) {
			return result.Fail[int](result.ErrInvalidOperation("-"))
		}
		return result.Ok(lhs - rhs)
	},
	"*": func(lhs, rhs int) result.Result[int] {
		if lhs == 0 || rhs == 0 {
			return result.Ok(0)
		}
		product := lhs * rhs
		if product/rhs != lhs || (lhs == -1 && rhs == math.MinInt) || (rhs == -1 && lhs == math.MinInt) {
			return result.Fail[int](result.ErrInvalidOperation("*"))
		}
		return result.Ok(product)
	},
	"/": func(lhs, rhs int) result.Result[int] {
		if rhs == 0 || (lhs == math.MinInt && rhs == -1) {
			return result.Fail[int](result.ErrInvalidOperation("/"))
		}
		return result.Ok(lhs / rhs)
	},
}

// integer is an optional '-' followed by a natural number.
func integer() parser.Parser[int] {
	return parser.Bind(parser.Optional(parser.Exactly('-'), '+'), func(sign rune) parser.Parser[int] {
		return parser.Map(parser.NaturalNumber(), func(n int) int {
			if sign == '-' {
				return -n
			}
			return n
		})
	})
}

// Number reads text as a whole integer. Anything else is NotANumber.
func Number(text string) result.Result[int] {
	n, err := parser.Parse(integer(), text)
	if err != nil {
		return result.Fail[int](result.ErrNotANumber(text))
	}
	return result.Ok(n)
}

// Evaluate computes lhs op rhs. Operands are checked left to right before
// the operator, so the first problem found is the one reported.
func Evaluate(lhs, op, rhs string) result.Result[int] {
	return result.Bind(Number(lhs), func(l int) result.Result[int] {
		return result.Bind(Number(rhs), func(r int) result.Result[int] {
			fn, ok := operations[op]
			if !ok {
				return result.Fail[int](result.ErrInvalidOperation(op))
			}
			return fn(l, r)
		})
	})
}

// EvaluateArgs evaluates a command line of the form <lhs> <op> <rhs>.
func EvaluateArgs(args []string) result.Result[int] {
	if len(args) != 3 {
		return result.Fail[int](result.ErrInvalidOperation(strings.Join(args, " ")))
	}
	return Evaluate(args[0], args[1], args[2])
}

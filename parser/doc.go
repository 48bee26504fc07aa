/*
Package parser provides generic parser combinators over in-memory text.

# Overview

A Parser[V] turns an input string into a result.Result of State[V]: the value
it produced and the input it left unconsumed. Parsers hold no mutable state.
Every combinator returns a new Parser that closes over its arguments, so a
parser can be built once and then run any number of times, from any number of
goroutines.

Input is read one rune at a time from the front. State.Remaining is always a
suffix of the string the parser was run on.

# Building Blocks

Primitives consume at most one rune:

  - Always(v): succeed with v, consume nothing
  - Never(err): fail with err, consume nothing
  - AnyChar(): take one rune, or fail with NotEnoughInput on empty input
  - Satisfying(pred): take one rune that matches pred, else UnexpectedInput
  - Exactly(c): take the rune c
  - End(): succeed only when no input remains

Combinators compose parsers:

  - Map(p, f): transform the produced value
  - Bind(p, f): run p, then run the parser f builds from p's value on the rest
  - AndThen(p, q): run p then q, keep q's value
  - OrElse(p, q): try p, and on failure try q on the same input
  - ZeroOrMore, OneOrMore, SequenceOf, ExactlyN, SeparatedBy: repetition

Composite parsers such as DigitChar, AlphaChar, NaturalNumber and
WhitespaceRun are assembled from the pieces above.

# Failure Policy

Failures are values of type result.Error. Bind, SequenceOf and the mandatory
first step of OneOrMore stop at the first failure. ZeroOrMore and OrElse
absorb failures; when both branches of OrElse fail, the error of the first
branch is reported.

# Usage Example

	age := parser.NaturalNumber()
	r := age.Run("42 years")
	// r == result.Ok(parser.State[int]{Remaining: " years", Value: 42})

Repetition combinators require that the repeated parser consumes input on
every success. A parser that succeeds without consuming input will make
ZeroOrMore loop forever.
*/
package parser

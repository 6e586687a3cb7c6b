package match

import (
	"github.com/zostay/comb/parser"
)

// Map returns a Parser that matches whatever p matches and transforms the
// output with f. Failure passes through untouched. The transform must be
// total: a transform that can reject its input belongs in Filter instead.
func Map[E, A, B any](p parser.Parser[E, A], f func(a A) B) parser.Parser[E, B] {
	return func(in parser.Input[E]) (B, parser.Input[E], bool) {
		a, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		return f(a), rest, true
	}
}

// Filter returns a Parser that matches whatever p matches, then re-checks the
// output against the predicate. If the predicate rejects it, the whole match
// becomes a failure and the input reverts to the caller's cursor, as if p had
// never matched.
func Filter[E, O any](p parser.Parser[E, O], pred func(o O) bool) parser.Parser[E, O] {
	return func(in parser.Input[E]) (O, parser.Input[E], bool) {
		o, rest, ok := p(in)
		if !ok || !pred(o) {
			var zero O
			return zero, in, false
		}
		return o, rest, true
	}
}

// Skip returns a Parser that matches whatever p matches and discards the
// output, keeping only the consumed input. Failure passes through untouched.
func Skip[E, O any](p parser.Parser[E, O]) parser.Parser[E, struct{}] {
	return Map(p, func(O) struct{} { return struct{}{} })
}

// Maybe returns a Parser that never fails. If p matches, the output is Some
// of its output with its remainder. If p does not match, the output is None
// and the input is untouched.
func Maybe[E, O any](p parser.Parser[E, O]) parser.Parser[E, Option[O]] {
	return func(in parser.Input[E]) (Option[O], parser.Input[E], bool) {
		o, rest, ok := p(in)
		if !ok {
			return None[O](), in, true
		}
		return Some(o), rest, true
	}
}

// And returns a Parser that matches p1 and then p2 against whatever p1 left
// behind. The output is the Pair of both outputs; the remainder is whatever
// p2 leaves. It fails if either parser fails.
//
// p2 is always attempted, even when p1 consumed the whole input: an empty
// remainder is a valid Input, and a p2 that can match zero elements (Many,
// Maybe) will succeed on it. Only p2's own matching logic decides.
func And[E, A, B any](p1 parser.Parser[E, A], p2 parser.Parser[E, B]) parser.Parser[E, Pair[A, B]] {
	return func(in parser.Input[E]) (Pair[A, B], parser.Input[E], bool) {
		var zero Pair[A, B]

		a, rest, ok := p1(in)
		if !ok {
			return zero, in, false
		}

		b, rest, ok := p2(rest)
		if !ok {
			return zero, in, false
		}

		return Pair[A, B]{a, b}, rest, true
	}
}

// ThenMaybe returns a Parser that requires p1 to match and then attempts p2
// against p1's remainder. If p2 matches, the output pairs both values and the
// remainder is p2's. If p2 does not match, the output pairs p1's value with
// None and the remainder reverts to the one p1 produced, so nothing a failed
// p2 touched leaks through. If p1 fails, the whole parser fails.
func ThenMaybe[E, A, B any](p1 parser.Parser[E, A], p2 parser.Parser[E, B]) parser.Parser[E, Pair[A, Option[B]]] {
	return And(p1, Maybe(p2))
}

// Or returns a Parser that attempts p1 and returns its result if it matches.
// Otherwise it attempts p2 against the original input and returns p2's
// result, match or not. Left-biased: p2 is never attempted when p1 matches.
func Or[E, O any](p1, p2 parser.Parser[E, O]) parser.Parser[E, O] {
	return func(in parser.Input[E]) (O, parser.Input[E], bool) {
		if o, rest, ok := p1(in); ok {
			return o, rest, true
		}
		return p2(in)
	}
}

// Choice returns a Parser that will try each parser in the order given and
// immediately return on the first one that matches. A failed attempt
// consumes nothing, so every candidate sees the original input. It fails
// only if every candidate fails; a Choice of nothing always fails.
func Choice[E, O any](ps ...parser.Parser[E, O]) parser.Parser[E, O] {
	return func(in parser.Input[E]) (O, parser.Input[E], bool) {
		for _, p := range ps {
			if o, rest, ok := p(in); ok {
				in.Trace(parser.StageGot, "Choice", o)
				return o, rest, true
			}
		}

		var zero O
		return zero, in, false
	}
}

// Many returns a Parser that matches p as many times as possible one after
// another, collecting the outputs in order. It never fails: zero matches is
// a successful match of an empty sequence. The loop is iterative, so stack
// use does not grow with input length.
//
// The inner parser is expected to consume input on every match. If it
// matches without consuming, the loop keeps that match and stops rather than
// repeat forever.
func Many[E, O any](p parser.Parser[E, O]) parser.Parser[E, []O] {
	return many(0, p)
}

// Many1 returns a Parser that matches like Many but requires at least one
// match. Zero matches is a failure, not an empty sequence: the two outcomes
// are never conflated.
func Many1[E, O any](p parser.Parser[E, O]) parser.Parser[E, []O] {
	return many(1, p)
}

func many[E, O any](min int, p parser.Parser[E, O]) parser.Parser[E, []O] {
	return func(in parser.Input[E]) ([]O, parser.Input[E], bool) {
		os := make([]O, 0, min)
		rest := in

		for {
			o, next, ok := p(rest)
			if !ok {
				break
			}

			os = append(os, o)
			if next.Pos() == rest.Pos() {
				break
			}
			rest = next
		}

		if len(os) < min {
			return nil, in, false
		}

		in.Trace(parser.StageGot, "Many", min, os)
		return os, rest, true
	}
}

// Defer returns a Parser built on first use from the given function. It is
// the indirection needed for self-referential grammars, where a parser must
// mention itself before its own definition is complete. The build function
// runs once; its result is memoized.
func Defer[E, O any](build func() parser.Parser[E, O]) parser.Parser[E, O] {
	var p parser.Parser[E, O]
	return func(in parser.Input[E]) (O, parser.Input[E], bool) {
		if p == nil {
			p = build()
		}
		return p(in)
	}
}

package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/comb/parser"
)

// Satisfy returns a Parser that matches exactly one element if the next
// element in the input matches the given predicate. The matched element is
// the output. It fails on empty input and whenever the predicate rejects the
// next element.
func Satisfy[E any](pred func(e E) bool) parser.Parser[E, E] {
	return func(in parser.Input[E]) (E, parser.Input[E], bool) {
		var zero E
		if in.Empty() {
			return zero, in, false
		}

		in.Trace(parser.StageTry, "Satisfy", pred)

		e, rest := in.Next()
		if pred(e) {
			in.Trace(parser.StageGot, "Satisfy", pred, e)
			return e, rest, true
		}

		return zero, in, false
	}
}

// Any returns a Parser that matches any single element. It fails only on
// empty input.
func Any[E any]() parser.Parser[E, E] {
	return Satisfy(func(E) bool { return true })
}

// Char returns a Parser that matches the given rune exactly.
func Char(c rune) parser.Parser[rune, rune] {
	return Satisfy(OneOf(c))
}

// Digit returns a Parser that matches a single ASCII decimal digit.
func Digit() parser.Parser[rune, rune] {
	return Satisfy(InRange('0', '9'))
}

// Literal returns a Parser that matches the given string rune for rune. The
// output is the string itself.
func Literal(s string) parser.Parser[rune, string] {
	ps := slices.Map([]rune(s), Char)
	return func(in parser.Input[rune]) (string, parser.Input[rune], bool) {
		rest := in
		for _, p := range ps {
			var ok bool
			if _, rest, ok = p(rest); !ok {
				return "", in, false
			}
		}

		in.Trace(parser.StageGot, "Literal", s)
		return s, rest, true
	}
}

// Package grammar provides small ready-made grammars built on the match
// combinators. They are useful on their own and double as worked examples of
// composing the core into something concrete.
package grammar

import (
	"strconv"
	"unicode"

	"github.com/zostay/comb/match"
	"github.com/zostay/comb/parser"
)

func identStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func identRune(r rune) bool {
	return identStart(r) || unicode.IsDigit(r)
}

// Identifier returns a Parser matching a programming-language identifier: a
// letter or underscore followed by any number of letters, digits, or
// underscores. The output is the identifier text.
func Identifier() parser.Parser[rune, string] {
	head := match.Satisfy(identStart)
	tail := match.Many(match.Satisfy(identRune))
	return match.IntoString(match.ThenMaybe(head, tail))
}

// Number returns a Parser matching a decimal number literal: an optional sign,
// one or more digits, and an optional fraction. The output is the matched
// text.
func Number() parser.Parser[rune, string] {
	sign := match.Maybe(match.Choice(match.Char('+'), match.Char('-')))
	digits := match.Many1(match.Digit())
	frac := match.Maybe(match.And(match.Char('.'), match.Many1(match.Digit())))
	return match.IntoString(match.And(sign, match.And(digits, frac)))
}

// Float returns a Parser matching a decimal number literal and producing its
// value. Conversion cannot fail on text Number accepts, so the transform is
// total; out-of-range literals saturate the way strconv.ParseFloat saturates.
func Float() parser.Parser[rune, float64] {
	return match.Map(Number(), func(s string) float64 {
		f, _ := strconv.ParseFloat(s, 64)
		return f
	})
}

package parser

// Parser is the type for matching functions. A Parser is applied to an Input
// and either matches a prefix of it or does not.
//
// If the match is successful, the Parser returns the value it produced, the
// Input advanced past everything it consumed, and true. It is possible for a
// match to consume zero elements.
//
// If the match fails, the Parser returns the zero value, the Input it was
// given unchanged, and false. A failed Parser never consumes input: callers
// that try alternatives observe the original cursor.
//
// A Parser captures whatever it needs at construction time and never mutates
// it afterward, so applying the same Parser to the same Input always yields
// the same result.
type Parser[E, O any] func(Input[E]) (O, Input[E], bool)

// Parse applies the parser to the given input sequence. On success it
// returns the produced value, the unconsumed suffix of the input, and true.
// On failure it returns the zero value, the input unchanged, and false.
func Parse[E, O any](p Parser[E, O], input []E) (O, []E, bool) {
	v, rest, ok := p(New(input))
	if !ok {
		var zero O
		return zero, input, false
	}
	return v, rest.Rest(), true
}

// ParseString applies a rune parser to the given string. It is Parse
// specialized to the common case of parsing text.
func ParseString[O any](p Parser[rune, O], input string) (O, string, bool) {
	v, rest, ok := p(NewString(input))
	if !ok {
		var zero O
		return zero, input, false
	}
	return v, string(rest.Rest()), true
}

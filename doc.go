// Package comb is a parser combinator library for recursive descent parsing
// over in-memory sequences. It provides a small set of primitive matchers and
// the combinators needed to compose them into complete grammars without a
// separate grammar-compilation step.
//
// The module is split into three packages:
//
//   - parser provides the engine: the Input cursor, the Parser type, and the
//     Parse entry points.
//   - match provides the matchers: primitives such as Satisfy, Char, and
//     Digit, and the combinators that sequence, alternate, repeat, and
//     transform them.
//   - grammar provides small ready-made grammars (identifiers, numbers) that
//     double as examples of how to build your own.
//
// A parser is just a function from an input cursor to a value, a remaining
// cursor, and a success flag. Combining two parsers produces another such
// function; nothing is compiled and there is no hidden state. A quick taste:
//
//	word := match.IntoString(match.Many1(match.Satisfy(unicode.IsLetter)))
//	v, rest, ok := parser.ParseString(word, "hello world")
//	// v == "hello", rest == " world", ok == true
package comb

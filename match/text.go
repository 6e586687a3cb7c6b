package match

import (
	"reflect"
	"strings"

	"github.com/zostay/comb/parser"
)

// IntoString returns a Parser that matches whatever p matches and folds the
// output into a single string, left to right. It understands every output
// shape the character-level combinators produce: a rune, a Pair of such
// shapes, an Option of one (absent contributes nothing), and a sequence of
// them. Grammars built from And, ThenMaybe, and Many over rune parsers come
// out flat instead of nested.
func IntoString[O any](p parser.Parser[rune, O]) parser.Parser[rune, string] {
	return Map(p, func(o O) string {
		out := &strings.Builder{}
		appendText(out, o)
		return out.String()
	})
}

type optionItem interface {
	item() (any, bool)
}

type pairItems interface {
	items() (any, any)
}

// appendText is the recursive fold behind IntoString. Shapes it does not
// recognize, such as the unit output of Skip, contribute nothing.
func appendText(out *strings.Builder, v any) {
	switch v := v.(type) {
	case rune:
		out.WriteRune(v)
	case string:
		out.WriteString(v)
	case []rune:
		out.WriteString(string(v))
	case optionItem:
		if e, ok := v.item(); ok {
			appendText(out, e)
		}
	case pairItems:
		a, b := v.items()
		appendText(out, a)
		appendText(out, b)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				appendText(out, rv.Index(i).Interface())
			}
		}
	}
}

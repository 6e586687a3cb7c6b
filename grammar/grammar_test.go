package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zostay/comb/grammar"
	"github.com/zostay/comb/parser"
)

type parseResult struct {
	Value string
	Rest  string
	OK    bool
}

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want parseResult
	}{
		{"hello_world", parseResult{"hello_world", "", true}},
		{"_tmp42 = 1", parseResult{"_tmp42", " = 1", true}},
		{"x", parseResult{"x", "", true}},
		{"éclair", parseResult{"éclair", "", true}},
		{"9lives", parseResult{"", "9lives", false}},
		{"", parseResult{"", "", false}},
	}

	for _, test := range tests {
		v, rest, ok := parser.ParseString(grammar.Identifier(), test.in)
		got := parseResult{v, rest, ok}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Identifier(%q) (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want parseResult
	}{
		{"42", parseResult{"42", "", true}},
		{"3.14xyz", parseResult{"3.14", "xyz", true}},
		{"-0.5", parseResult{"-0.5", "", true}},
		{"+7.", parseResult{"+7", ".", true}},
		{".5", parseResult{"", ".5", false}},
		{"-", parseResult{"", "-", false}},
		{"abc", parseResult{"", "abc", false}},
	}

	for _, test := range tests {
		v, rest, ok := parser.ParseString(grammar.Number(), test.in)
		got := parseResult{v, rest, ok}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Number(%q) (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3.14", 3.14, true},
		{"-2.5", -2.5, true},
		{"+12", 12, true},
		{"x", 0, false},
	}

	for _, test := range tests {
		v, _, ok := parser.ParseString(grammar.Float(), test.in)
		if ok != test.ok || v != test.want {
			t.Errorf("Float(%q) = %v, %v; want %v, %v", test.in, v, ok, test.want, test.ok)
		}
	}
}

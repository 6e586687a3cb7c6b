package parser

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// Input provides the tool for keeping track of how the parser input is being
// read during the parsing process. It is a value: the buffer is shared but
// never written, and the cursor travels with the copy. Backtracking is
// holding on to an earlier Input value, nothing more.
type Input[E any] struct {
	trace Tracer
	buf   []E
	pos   int
}

// New creates an Input for recursive descent parsing over the given buffer.
// The buffer is owned by the parse from here on and must not be mutated while
// parsing.
func New[E any](buf []E) Input[E] {
	return Input[E]{buf: buf}
}

// NewString creates an Input over the runes of the given string.
func NewString(s string) Input[rune] {
	return New([]rune(s))
}

// WithTrace returns a copy of this Input that reports parser progress to the
// given Tracer. Every Input derived from the copy carries the Tracer along.
func (in Input[E]) WithTrace(t Tracer) Input[E] {
	in.trace = t
	return in
}

// Len returns the number of unconsumed elements.
func (in Input[E]) Len() int {
	return len(in.buf) - in.pos
}

// Empty reports whether all input has been consumed. An empty Input is still
// a valid Input; matchers that can match zero elements succeed on it.
func (in Input[E]) Empty() bool {
	return in.pos >= len(in.buf)
}

// Pos returns the cursor offset from the start of the buffer.
func (in Input[E]) Pos() int {
	return in.pos
}

// Rest returns the unconsumed suffix of the buffer. The returned slice
// aliases the buffer and must be treated as read-only.
func (in Input[E]) Rest() []E {
	return in.buf[in.pos:]
}

// Next returns the next element and a copy of this Input advanced past it.
// It must not be called when Empty returns true.
func (in Input[E]) Next() (E, Input[E]) {
	e := in.buf[in.pos]
	in.pos++
	return e, in
}

// Trace may be called to help track the progress through a parse for help in
// debugging. It does nothing unless a Tracer has been attached with
// WithTrace.
func (in Input[E]) Trace(stage Stage, name string, args ...any) {
	if in.trace == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")
	fmt.Fprint(out, preview(in.Rest()))
	fmt.Fprint(out, "…")

	for _, arg := range args {
		fmt.Fprint(out, ", ")

		if arg != nil && reflect.TypeOf(arg).Kind() == reflect.Func {
			fmt.Fprint(out, runtime.FuncForPC(reflect.ValueOf(arg).Pointer()).Name())
			continue
		}

		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")

	in.trace(out.String())
}

// preview renders the first few upcoming elements for trace output.
func preview[E any](es []E) string {
	if len(es) > 10 {
		es = es[:10]
	}

	switch es := any(es).(type) {
	case []rune:
		return string(es)
	case []byte:
		return string(es)
	default:
		return fmt.Sprint(es)
	}
}

package match

import "fmt"

// Pair is the output shape produced by And: both halves of the sequence, in
// order.
type Pair[A, B any] struct {
	A A
	B B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.A, p.B)
}

// items feeds the text fold in IntoString.
func (p Pair[A, B]) items() (any, any) {
	return p.A, p.B
}

// Option is the output shape produced by Maybe and the second half of
// ThenMaybe: either a present value or nothing at all. The zero Option is
// None.
type Option[O any] struct {
	value   O
	present bool
}

// Some returns an Option holding the given value.
func Some[O any](v O) Option[O] {
	return Option[O]{value: v, present: true}
}

// None returns the absent Option.
func None[O any]() Option[O] {
	return Option[O]{}
}

// Get returns the held value and whether one is present.
func (o Option[O]) Get() (O, bool) {
	return o.value, o.present
}

// Present reports whether a value is held.
func (o Option[O]) Present() bool {
	return o.present
}

func (o Option[O]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// item feeds the text fold in IntoString.
func (o Option[O]) item() (any, bool) {
	return o.value, o.present
}

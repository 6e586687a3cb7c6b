package match

import "cmp"

// Predicate is a function that returns true if it matches a single element or
// false if it does not.
type Predicate[E any] func(e E) bool

// OneOf creates a Predicate from the set of elements given.
func OneOf[E comparable](es ...E) Predicate[E] {
	return func(e E) bool {
		for _, c := range es {
			if c == e {
				return true
			}
		}
		return false
	}
}

// InRange creates a Predicate that matches any element in the given range.
// The match is inclusive so elements equal to either end point are also
// matched.
func InRange[E cmp.Ordered](lo, hi E) Predicate[E] {
	return func(e E) bool {
		return e >= lo && e <= hi
	}
}

// AnyOf creates a combined Predicate that matches an element that matches any
// of the given predicates.
func AnyOf[E any](preds ...Predicate[E]) Predicate[E] {
	switch len(preds) {
	case 0:
		return func(E) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(e E) bool {
			for _, pred := range preds {
				if pred(e) {
					return true
				}
			}
			return false
		}
	}
}

// Not creates a combined Predicate that matches an element that does not
// match any of the given predicates.
func Not[E any](preds ...Predicate[E]) Predicate[E] {
	return func(e E) bool {
		for _, pred := range preds {
			if pred(e) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThat creates a combined Predicate that matches an element that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThat[E any](this, that Predicate[E]) Predicate[E] {
	return func(e E) bool {
		if this(e) {
			if that(e) {
				return false
			}
			return true
		}
		return false
	}
}

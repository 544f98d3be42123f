// Package tuple groups a fixed number of values without declaring a struct.
package tuple

// Tuple2 holds two values, such as the left and right values an intersection
// of two maps finds under one key.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

// NewTuple2 pairs first with second.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{first: first, second: second}
}

// First returns the first value.
func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

// Second returns the second value.
func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values unpacks the pair.
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

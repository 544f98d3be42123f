package sortable

import (
	"github.com/amp-labs/sortedvec/compare"
)

// Sortable is a key type carrying its own total order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare performs a three-way comparison of two Sortable values.
func Compare[T Sortable[T]](a, b T) int {
	if a.LessThan(b) {
		return -1
	}

	if a.Equals(b) {
		return 0
	}

	return 1
}

// Func returns Compare as a compare.Func.
func Func[T Sortable[T]]() compare.Func[T] {
	return Compare[T]
}

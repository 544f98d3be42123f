//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics unless value is true.
func True(value bool, args ...any) {
	if !value {
		panic(failure(args...))
	}
}

// False panics unless value is false.
func False(value bool, args ...any) {
	if value {
		panic(failure(args...))
	}
}

// InRange panics unless lo <= index < hi.
func InRange(index, lo, hi int, args ...any) {
	if index < lo || index >= hi {
		if len(args) == 0 {
			args = []any{"index %d out of range [%d, %d)", index, lo, hi}
		}

		panic(failure(args...))
	}
}

// SortedFunc panics unless every element of items is strictly greater than
// the one before it according to cmp.
func SortedFunc[T any](items []T, cmp func(a, b T) int, args ...any) {
	for i := 1; i < len(items); i++ {
		if cmp(items[i-1], items[i]) >= 0 {
			if len(args) == 0 {
				args = []any{"elements %d and %d are out of order", i - 1, i}
			}

			panic(failure(args...))
		}
	}
}

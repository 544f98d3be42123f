package compare

import (
	"cmp"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a three-way comparison. It returns a negative number when a sorts
// before b, zero when they are equal, and a positive number when a sorts after b.
//
// A Func must describe a strict weak ordering that is consistent with equality:
// Func(a, b) == 0 if and only if a and b are the same key.
type Func[T any] func(a, b T) int

// Ordered returns the natural ordering of any cmp.Ordered type.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse returns a Func which orders values in the opposite direction of f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By orders values of type T by a key extracted from each of them.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Ordered[int]())
func By[T any, K any](key func(T) K, f Func[K]) Func[T] {
	return func(a, b T) int {
		return f(key(a), key(b))
	}
}

// Then chains comparisons: ties under f are broken by next.
func Then[T any](f Func[T], next Func[T]) Func[T] {
	return func(a, b T) int {
		if c := f(a, b); c != 0 {
			return c
		}

		return next(a, b)
	}
}

// Natural orders strings the way a human would, so that "file2" sorts
// before "file10".
//
// Strings that compare as neither less nor greater are only considered equal
// when they are byte-identical, keeping the ordering consistent with equality.
func Natural() Func[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		// natsort.Compare reports true in both directions for strings it
		// cannot tell apart, such as "a1" and "a01".
		less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case less && !greater:
			return -1
		case greater && !less:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	}
}

// Collated orders strings using the collation rules of the given language.
// Ties reported by the collator (for example strings differing only in
// ignorable characters) are broken by byte order so that the ordering stays
// consistent with equality.
//
// The returned Func owns a collate.Collator, which is not safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	collator := collate.New(tag, opts...)

	return func(a, b string) int {
		if c := collator.CompareString(a, b); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	}
}

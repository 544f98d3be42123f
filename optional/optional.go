// Package optional provides Value, an explicit "maybe" used by the collections
// in this module wherever an operation may legitimately find nothing: removing
// a missing key, replacing a key that was never stored, or addressing an index
// past the end.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either one T (Some) or nothing (None).
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value, such as the field a Map.Insert displaced.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None is the result when nothing was found or displaced.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// NonEmpty reports Some.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports None.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrPanic unwraps a Value the caller knows is Some. None panics.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// All yields the value if present, so a Value can be ranged over.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the contained value, keeping None as None.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

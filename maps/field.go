package maps

import "fmt"

// Field is a key/value pair stored in a Map.
//
// The key of a stored field never changes in place; Value may be modified
// freely through the pointers handed out by the Map.
type Field[K any, V any] struct {
	key K

	// Value is the value stored under the field's key.
	Value V
}

// NewField returns a field holding key and value.
func NewField[K any, V any](key K, value V) Field[K, V] {
	return Field[K, V]{key: key, Value: value}
}

// Key returns the key of this field.
func (f Field[K, V]) Key() K { //nolint:ireturn
	return f.key
}

// Parts returns the key and value of this field.
func (f Field[K, V]) Parts() (K, V) { //nolint:ireturn
	return f.key, f.Value
}

// String formats the field as "key: value".
func (f Field[K, V]) String() string {
	return fmt.Sprintf("%v: %v", f.key, f.Value)
}

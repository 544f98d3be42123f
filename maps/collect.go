package maps

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/sortedvec/compare"
)

// Collect builds a map from seq, ordered by the natural order of K.
// When a key repeats, the last pair wins.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	return CollectFunc(cmp.Compare[K], seq, opts...)
}

// CollectFunc builds a map from seq, ordered by cmpFn. When a key repeats,
// the last pair wins.
// The pairs are gathered first and sorted once.
func CollectFunc[K any, V any](cmpFn compare.Func[K], seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := NewFunc[K, V](cmpFn, opts...)
	m.mustPrepare()

	fields := m.buf.fields
	for key, value := range seq {
		fields = append(fields, NewField(key, value))
	}

	order := m.buf.cmp

	slices.SortStableFunc(fields, func(a, b Field[K, V]) int {
		return order(a.key, b.key)
	})

	// Keep the last field of every run of equal keys.
	unique := fields[:0]

	for i, field := range fields {
		if i+1 < len(fields) && order(field.key, fields[i+1].key) == 0 {
			continue
		}

		unique = append(unique, field)
	}

	clear(fields[len(unique):])
	m.buf.replace(unique)

	return m
}

// FromGoMap converts a builtin map into an ordered Map.
// Returns nil if the input map is nil.
//
// Example:
//
//	m := maps.FromGoMap(map[string]int{"b": 2, "a": 1})
//	m.String() // {a: 1, b: 2}
func FromGoMap[K cmp.Ordered, V any](src map[K]V, opts ...Option) *Map[K, V] {
	if src == nil {
		return nil
	}

	out := New[K, V](append([]Option{WithCapacity(len(src))}, opts...)...)

	for key, value := range src {
		out.Insert(key, value)
	}

	return out
}

// ToGoMap copies an ordered Map into a builtin map.
// Returns nil if the input map is nil.
func ToGoMap[K comparable, V any](m *Map[K, V]) map[K]V {
	if m == nil {
		return nil
	}

	out := make(map[K]V, m.Len())

	for key, value := range m.Seq() {
		out[key] = value
	}

	return out
}

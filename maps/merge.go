package maps

import "github.com/amp-labs/sortedvec/compare"

// Resolver decides the outcome for a key present in both maps of a merge.
// It returns the value to keep, or false to drop the key from the result.
type Resolver[K any, V any] func(key K, left, right V) (V, bool)

// KeepLeft keeps the receiver's value.
func KeepLeft[K any, V any]() Resolver[K, V] {
	return func(_ K, left, _ V) (V, bool) {
		return left, true
	}
}

// KeepRight keeps the other map's value.
func KeepRight[K any, V any]() Resolver[K, V] {
	return func(_ K, _, right V) (V, bool) {
		return right, true
	}
}

// DropBoth removes keys found in both maps.
func DropBoth[K any, V any]() Resolver[K, V] {
	return func(K, V, V) (V, bool) {
		var zero V

		return zero, false
	}
}

// Combine keeps combine(left, right).
func Combine[K any, V any](combine func(left, right V) V) Resolver[K, V] {
	return func(_ K, left, right V) (V, bool) {
		return combine(left, right), true
	}
}

// MergeWith merges other into m in a single pass over both maps.
//
// Fields found only in m are kept and fields found only in other are copied
// in. Keys present in both are settled by resolve. Keys copied from other go through the map's
// key clone function when one is configured. The maps must share an ordering.
func (m *Map[K, V]) MergeWith(other *Map[K, V], resolve Resolver[K, V]) {
	m.MergeWithFilter(other, nil, resolve)
}

// MergeWithFilter is MergeWith with a filter for fields only found in other:
// filter returns the value to insert for the key, or false to skip it.
// A nil filter copies every such field.
func (m *Map[K, V]) MergeWithFilter(
	other *Map[K, V],
	filter func(key K, value V) (V, bool),
	resolve Resolver[K, V],
) {
	if other == m {
		other = m.Clone()
	}

	other.guard.share("MergeWith")
	defer other.guard.unshare()

	m.mustPrepare()

	m.guard.withLock("MergeWith", func() {
		merged := mergeFields(m.buf.cmp, m.buf.fields, other.buf.fields, m.keyClone, filter, resolve)
		m.buf.replace(merged)
	})
}

// Merged returns the merge of m and other as a new map, leaving m unchanged.
func (m *Map[K, V]) Merged(other *Map[K, V], resolve Resolver[K, V]) *Map[K, V] {
	merged := m.Clone()
	merged.MergeWith(other, resolve)

	return merged
}

func mergeFields[K any, V any](
	cmp compare.Func[K],
	left, right []Field[K, V],
	clone func(K) K,
	filter func(K, V) (V, bool),
	resolve Resolver[K, V],
) []Field[K, V] {
	merged := make([]Field[K, V], 0, len(left)+len(right))

	adopt := func(field Field[K, V]) {
		value := field.Value

		if filter != nil {
			var keep bool
			if value, keep = filter(field.key, value); !keep {
				return
			}
		}

		key := field.key
		if clone != nil {
			key = clone(key)
		}

		merged = append(merged, NewField(key, value))
	}

	i, j := 0, 0

	for i < len(left) && j < len(right) {
		switch c := cmp(left[i].key, right[j].key); {
		case c < 0:
			merged = append(merged, left[i])
			i++
		case c > 0:
			adopt(right[j])
			j++
		default:
			if value, keep := resolve(left[i].key, left[i].Value, right[j].Value); keep {
				merged = append(merged, NewField(left[i].key, value))
			}

			i++
			j++
		}
	}

	merged = append(merged, left[i:]...)

	for ; j < len(right); j++ {
		adopt(right[j])
	}

	return merged
}

package maps

import (
	"iter"

	"github.com/amp-labs/sortedvec/optional"
	"github.com/amp-labs/sortedvec/tuple"
)

// walk is the two-cursor state shared by Union, Intersection and Difference.
// It holds a shared borrow on both maps until it is closed.
type walk[K any, V any] struct {
	left, right *Map[K, V]
	i, j        int
	closed      bool
}

func newWalk[K any, V any](op string, left, right *Map[K, V]) walk[K, V] {
	left.mustPrepare()
	right.guard.read(op)

	left.guard.share(op)
	right.guard.share(op)

	return walk[K, V]{left: left, right: right}
}

func (w *walk[K, V]) fields() ([]Field[K, V], []Field[K, V]) {
	return w.left.buf.fields, w.right.buf.fields
}

func (w *walk[K, V]) compare(a, b K) int {
	return w.left.buf.cmp(a, b)
}

// Close releases both maps. It is safe to call more than once.
func (w *walk[K, V]) Close() {
	if w.closed {
		return
	}

	w.closed = true
	w.left.guard.unshare()
	w.right.guard.unshare()
}

// Unioned is one step of a Union: the key and the value each side holds for it.
// At least one of Left and Right is set.
type Unioned[K any, V any] struct {
	Key   K
	Left  optional.Value[V]
	Right optional.Value[V]
}

// Both reports whether both maps contain the key.
func (u Unioned[K, V]) Both() bool {
	return u.Left.NonEmpty() && u.Right.NonEmpty()
}

// MapBoth collapses the step into one key and value. merge is only called
// when both maps contain the key.
func (u Unioned[K, V]) MapBoth(merge func(key K, left, right V) V) (K, V) {
	left, hasLeft := u.Left.Get()
	right, hasRight := u.Right.Get()

	switch {
	case hasLeft && hasRight:
		return u.Key, merge(u.Key, left, right)
	case hasLeft:
		return u.Key, left
	default:
		return u.Key, right
	}
}

// Union walks the keys of both maps in ascending order, once per distinct key.
type Union[K any, V any] struct {
	walk[K, V]
}

// Union returns a lazy union of m and other. Both maps are borrowed for
// reading until the union is exhausted or closed.
func (m *Map[K, V]) Union(other *Map[K, V]) *Union[K, V] {
	return &Union[K, V]{walk: newWalk("Union", m, other)}
}

// Next returns the next key of the union.
func (u *Union[K, V]) Next() (Unioned[K, V], bool) {
	if u.closed {
		return Unioned[K, V]{}, false
	}

	left, right := u.fields()

	switch {
	case u.i < len(left) && u.j < len(right):
		l, r := left[u.i], right[u.j]

		switch c := u.compare(l.key, r.key); {
		case c < 0:
			u.i++

			return Unioned[K, V]{Key: l.key, Left: optional.Some(l.Value)}, true
		case c > 0:
			u.j++

			return Unioned[K, V]{Key: r.key, Right: optional.Some(r.Value)}, true
		default:
			u.i++
			u.j++

			return Unioned[K, V]{Key: l.key, Left: optional.Some(l.Value), Right: optional.Some(r.Value)}, true
		}
	case u.i < len(left):
		l := left[u.i]
		u.i++

		return Unioned[K, V]{Key: l.key, Left: optional.Some(l.Value)}, true
	case u.j < len(right):
		r := right[u.j]
		u.j++

		return Unioned[K, V]{Key: r.key, Right: optional.Some(r.Value)}, true
	default:
		u.Close()

		return Unioned[K, V]{}, false
	}
}

// Seq ranges over the rest of the union and closes it when the loop ends.
func (u *Union[K, V]) Seq() iter.Seq[Unioned[K, V]] {
	return func(yield func(Unioned[K, V]) bool) {
		defer u.Close()

		for {
			step, ok := u.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Intersection walks the keys found in both maps, in ascending order.
type Intersection[K any, V any] struct {
	walk[K, V]
}

// Intersection returns a lazy intersection of m and other. Both maps are
// borrowed for reading until it is exhausted or closed.
func (m *Map[K, V]) Intersection(other *Map[K, V]) *Intersection[K, V] {
	return &Intersection[K, V]{walk: newWalk("Intersection", m, other)}
}

// Next returns the next shared key with the left and right values.
func (x *Intersection[K, V]) Next() (K, tuple.Tuple2[V, V], bool) {
	if !x.closed {
		left, right := x.fields()

		for x.i < len(left) && x.j < len(right) {
			l, r := left[x.i], right[x.j]

			switch c := x.compare(l.key, r.key); {
			case c < 0:
				x.i++
			case c > 0:
				x.j++
			default:
				x.i++
				x.j++

				return l.key, tuple.NewTuple2(l.Value, r.Value), true
			}
		}

		x.Close()
	}

	var key K

	return key, tuple.Tuple2[V, V]{}, false
}

// Seq ranges over the rest of the intersection and closes it when the loop ends.
func (x *Intersection[K, V]) Seq() iter.Seq2[K, tuple.Tuple2[V, V]] {
	return func(yield func(K, tuple.Tuple2[V, V]) bool) {
		defer x.Close()

		for {
			key, values, ok := x.Next()
			if !ok || !yield(key, values) {
				return
			}
		}
	}
}

// Difference walks the fields of the left map whose keys are not in the right.
type Difference[K any, V any] struct {
	walk[K, V]
}

// Difference returns the fields of m missing from other, lazily. Both maps
// are borrowed for reading until it is exhausted or closed.
func (m *Map[K, V]) Difference(other *Map[K, V]) *Difference[K, V] {
	return &Difference[K, V]{walk: newWalk("Difference", m, other)}
}

// Next returns the next key and value only found on the left.
func (d *Difference[K, V]) Next() (K, V, bool) {
	if !d.closed {
		left, right := d.fields()

		for d.i < len(left) {
			l := left[d.i]

			if d.j >= len(right) {
				d.i++

				return l.key, l.Value, true
			}

			switch c := d.compare(l.key, right[d.j].key); {
			case c < 0:
				d.i++

				return l.key, l.Value, true
			case c > 0:
				d.j++
			default:
				d.i++
				d.j++
			}
		}

		d.Close()
	}

	var (
		key   K
		value V
	)

	return key, value, false
}

// Seq ranges over the rest of the difference and closes it when the loop ends.
func (d *Difference[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer d.Close()

		for {
			key, value, ok := d.Next()
			if !ok || !yield(key, value) {
				return
			}
		}
	}
}

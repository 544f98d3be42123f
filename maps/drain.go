package maps

import "iter"

// Drain removes fields from the front of a Map as they are consumed.
//
// The map is borrowed exclusively until the drain is closed. Closing removes
// exactly the fields that were returned by Next; the rest stay in the map,
// still sorted. A drain closes itself once it is exhausted.
type Drain[K any, V any] struct {
	m      *Map[K, V]
	next   int
	closed bool
}

// Drain starts draining the map from its smallest key.
func (m *Map[K, V]) Drain() *Drain[K, V] {
	m.guard.lock("Drain")

	return &Drain[K, V]{m: m}
}

// Next removes and returns the next field.
func (d *Drain[K, V]) Next() (Field[K, V], bool) {
	if d.closed {
		return Field[K, V]{}, false
	}

	if d.next >= d.m.buf.len() {
		d.Close()

		return Field[K, V]{}, false
	}

	field := d.m.buf.fields[d.next]
	d.next++

	return field, true
}

// Remaining returns how many fields have not been drained yet.
func (d *Drain[K, V]) Remaining() int {
	if d.closed {
		return 0
	}

	return d.m.buf.len() - d.next
}

// Close ends the drain and gives the map back. It is safe to call more than once.
func (d *Drain[K, V]) Close() {
	if d.closed {
		return
	}

	d.closed = true
	d.m.buf.removePrefix(d.next)
	d.m.guard.unlock()
}

// Seq ranges over the remaining fields. The drain is closed when the loop
// ends, whether or not it ran to completion.
func (d *Drain[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer d.Close()

		for {
			field, ok := d.Next()
			if !ok || !yield(field.key, field.Value) {
				return
			}
		}
	}
}

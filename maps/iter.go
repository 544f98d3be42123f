package maps

import "iter"

// Seq yields every key and value in ascending key order. The map is borrowed
// for reading while the loop runs, so the loop body must not modify it.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.guard.share("Seq")
		defer m.guard.unshare()

		for _, field := range m.buf.fields {
			if !yield(field.key, field.Value) {
				return
			}
		}
	}
}

// Keys yields every key in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.Seq() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields every value in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.Seq() {
			if !yield(value) {
				return
			}
		}
	}
}

// Fields yields each field with its position.
func (m *Map[K, V]) Fields() iter.Seq2[int, Field[K, V]] {
	return func(yield func(int, Field[K, V]) bool) {
		m.guard.share("Fields")
		defer m.guard.unshare()

		for i, field := range m.buf.fields {
			if !yield(i, field) {
				return
			}
		}
	}
}

// ValuePtrs yields a pointer to every value in ascending key order. The map
// is borrowed exclusively while the loop runs: the loop body may update
// values through the pointers but may not otherwise touch the map.
func (m *Map[K, V]) ValuePtrs() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		m.guard.lock("ValuePtrs")
		defer m.guard.unlock()

		for i := range m.buf.fields {
			if !yield(&m.buf.fields[i].Value) {
				return
			}
		}
	}
}

// InsertAll inserts every pair from seq, later pairs replacing earlier ones.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		m.Insert(key, value)
	}
}

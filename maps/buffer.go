package maps

import (
	"slices"

	"github.com/amp-labs/sortedvec/assert"
	"github.com/amp-labs/sortedvec/compare"
)

// buffer is the sorted backing store of a Map. It never searches: every
// index it receives comes from locate, and it only asserts that the index
// keeps the fields strictly ordered.
type buffer[K any, V any] struct {
	fields []Field[K, V]
	cmp    compare.Func[K]
}

func (b *buffer[K, V]) len() int {
	return len(b.fields)
}

func (b *buffer[K, V]) capacity() int {
	return cap(b.fields)
}

func (b *buffer[K, V]) insertAt(index int, field Field[K, V]) {
	assert.InRange(index, 0, len(b.fields)+1)

	if assert.Enabled {
		if index > 0 {
			assert.True(b.cmp(b.fields[index-1].key, field.key) < 0,
				"insert at %d would follow a key that is not smaller", index)
		}

		if index < len(b.fields) {
			assert.True(b.cmp(field.key, b.fields[index].key) < 0,
				"insert at %d would precede a key that is not greater", index)
		}
	}

	b.fields = slices.Insert(b.fields, index, field)
}

func (b *buffer[K, V]) removeAt(index int) Field[K, V] {
	assert.InRange(index, 0, len(b.fields))

	field := b.fields[index]
	b.fields = slices.Delete(b.fields, index, index+1)

	return field
}

// removePrefix drops the first n fields, keeping the rest in order.
func (b *buffer[K, V]) removePrefix(n int) {
	assert.InRange(n, 0, len(b.fields)+1)

	b.fields = slices.Delete(b.fields, 0, n)
}

func (b *buffer[K, V]) clear() {
	clear(b.fields)
	b.fields = b.fields[:0]
}

func (b *buffer[K, V]) reserve(additional int) {
	b.fields = slices.Grow(b.fields, additional)
}

// shrinkTo reallocates the backing array to max(len, n) slots if that is
// smaller than the current capacity.
func (b *buffer[K, V]) shrinkTo(n int) {
	target := max(len(b.fields), n)
	if target >= cap(b.fields) {
		return
	}

	fields := make([]Field[K, V], len(b.fields), target)
	copy(fields, b.fields)
	b.fields = fields
}

// replace swaps in a complete, already sorted set of fields.
func (b *buffer[K, V]) replace(fields []Field[K, V]) {
	assert.SortedFunc(fields, func(x, y Field[K, V]) int {
		return b.cmp(x.key, y.key)
	})

	clear(b.fields)
	b.fields = fields
}

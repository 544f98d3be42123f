package maps

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/optional"
	"github.com/amp-labs/sortedvec/sortable"
)

// Map is an ordered key/value collection backed by one sorted slice.
// See the package documentation for the lookup strategy and borrowing rules.
type Map[K any, V any] struct {
	buf       buffer[K, V]
	scanLimit int
	keyClone  func(K) K
	guard     guard
	ready     bool
}

// New returns an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewSortable returns an empty map ordered by K's LessThan and Equals methods.
func NewSortable[K sortable.Sortable[K], V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](sortable.Func[K](), opts...)
}

// NewFunc returns an empty map ordered by cmpFn. A nil cmpFn falls back to
// the natural order of K, as for the zero Map.
func NewFunc[K any, V any](cmpFn compare.Func[K], opts ...Option) *Map[K, V] {
	cfg := buildConfig(opts)

	scanLimit := defaultScanLimit[K, V]()
	if cfg.scanSet {
		scanLimit = cfg.scanLimit
	}

	return &Map[K, V]{
		buf: buffer[K, V]{
			fields: make([]Field[K, V], 0, cfg.capacity),
			cmp:    cmpFn,
		},
		scanLimit: scanLimit,
		keyClone:  keyCloneFor[K](cfg),
		ready:     true,
	}
}

// prepare fills in the defaults of a zero Map.
func (m *Map[K, V]) prepare() error {
	if !m.ready {
		m.scanLimit = defaultScanLimit[K, V]()
		m.ready = true
	}

	if m.buf.cmp == nil {
		order, ok := naturalOrder[K]()
		if !ok {
			return fmt.Errorf("%w: %s", errors.ErrNoComparator, reflect.TypeFor[K]())
		}

		m.buf.cmp = order
	}

	return nil
}

// Init resolves the ordering of a zero Map up front. It returns an error
// wrapping errors.ErrNoComparator if K has no natural order; without Init,
// the first operation that needs to compare keys panics with that error.
func (m *Map[K, V]) Init() error {
	m.guard.read("Init")

	return m.prepare()
}

func (m *Map[K, V]) mustPrepare() {
	if err := m.prepare(); err != nil {
		panic(err)
	}
}

// search runs the locator; callers have already checked the guard.
func (m *Map[K, V]) search(key K) (int, bool) {
	m.mustPrepare()

	return locate(m.buf.fields, key, m.buf.cmp, m.scanLimit)
}

// Compare returns the ordering used by this map.
func (m *Map[K, V]) Compare() compare.Func[K] {
	m.mustPrepare()

	return m.buf.cmp
}

// Len returns the number of fields in the map.
func (m *Map[K, V]) Len() int {
	m.guard.read("Len")

	return m.buf.len()
}

// IsEmpty returns true if the map holds no fields.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Capacity returns how many fields the map can hold before it must reallocate.
func (m *Map[K, V]) Capacity() int {
	m.guard.read("Capacity")

	return m.buf.capacity()
}

// Reserve makes room for at least additional more fields.
func (m *Map[K, V]) Reserve(additional int) {
	m.guard.write("Reserve")
	m.buf.reserve(additional)
}

// ShrinkTo reduces the capacity to max(Len(), n). It never grows the map.
func (m *Map[K, V]) ShrinkTo(n int) {
	m.guard.write("ShrinkTo")
	m.buf.shrinkTo(n)
}

// ShrinkToFit reduces the capacity to Len().
func (m *Map[K, V]) ShrinkToFit() {
	m.ShrinkTo(0)
}

// Clear removes every field, keeping the allocated capacity.
func (m *Map[K, V]) Clear() {
	m.guard.write("Clear")
	m.buf.clear()
}

// Search returns the index of key and true if it is present, or the index at
// which it would be inserted and false.
func (m *Map[K, V]) Search(key K) (int, bool) {
	m.guard.read("Search")

	return m.search(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.Search(key)

	return found
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	field, found := m.GetField(key)

	return field.Value, found
}

// GetField returns the field stored under key.
func (m *Map[K, V]) GetField(key K) (Field[K, V], bool) {
	index, found := m.Search(key)
	if !found {
		return Field[K, V]{}, false
	}

	return m.buf.fields[index], true
}

// GetPtr returns a pointer to the value stored under key, or nil.
// The pointer is invalidated by the next insert or removal.
func (m *Map[K, V]) GetPtr(key K) *V {
	m.guard.write("GetPtr")

	index, found := m.search(key)
	if !found {
		return nil
	}

	return &m.buf.fields[index].Value
}

// At returns the field at position index in key order.
func (m *Map[K, V]) At(index int) (Field[K, V], bool) {
	m.guard.read("At")

	if index < 0 || index >= m.buf.len() {
		return Field[K, V]{}, false
	}

	return m.buf.fields[index], true
}

// ValueAt returns a pointer to the value at position index, or nil if index
// is out of range. The pointer is invalidated by the next insert or removal.
func (m *Map[K, V]) ValueAt(index int) *V {
	m.guard.write("ValueAt")

	if index < 0 || index >= m.buf.len() {
		return nil
	}

	return &m.buf.fields[index].Value
}

// First returns the field with the smallest key.
func (m *Map[K, V]) First() (Field[K, V], bool) {
	return m.At(0)
}

// Last returns the field with the largest key.
func (m *Map[K, V]) Last() (Field[K, V], bool) {
	m.guard.read("Last")

	return m.At(m.buf.len() - 1)
}

// Insert stores value under key. If the key was already present the previous
// field is replaced and returned; otherwise None is returned.
func (m *Map[K, V]) Insert(key K, value V) optional.Value[Field[K, V]] {
	m.guard.write("Insert")

	index, found := m.search(key)
	if found {
		previous := m.buf.fields[index]
		m.buf.fields[index] = NewField(key, value)

		return optional.Some(previous)
	}

	m.buf.insertAt(index, NewField(key, value))

	return optional.None[Field[K, V]]()
}

// InsertWith inserts key only if it is absent, calling value to produce the
// value. If the key is already present, value is not called, the map is left
// unchanged and the key is handed back as Some(key).
//
// Unlike Entry, the key is never cloned: the map takes it as given.
func (m *Map[K, V]) InsertWith(key K, value func() V) optional.Value[K] {
	m.guard.write("InsertWith")

	index, found := m.search(key)
	if found {
		return optional.Some(key)
	}

	var produced V

	m.guard.withLock("InsertWith", func() {
		produced = value()
	})

	m.buf.insertAt(index, NewField(key, produced))

	return optional.None[K]()
}

// Remove deletes key and returns the field that held it.
func (m *Map[K, V]) Remove(key K) optional.Value[Field[K, V]] {
	m.guard.write("Remove")

	index, found := m.search(key)
	if !found {
		return optional.None[Field[K, V]]()
	}

	return optional.Some(m.buf.removeAt(index))
}

// RemoveAt deletes the field at position index. An out of range index leaves
// the map unchanged and returns None.
func (m *Map[K, V]) RemoveAt(index int) optional.Value[Field[K, V]] {
	m.guard.write("RemoveAt")

	if index < 0 || index >= m.buf.len() {
		return optional.None[Field[K, V]]()
	}

	return optional.Some(m.buf.removeAt(index))
}

// Clone returns a shallow copy of the map with the same ordering and options.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m.guard.read("Clone")
	m.mustPrepare()

	fields := make([]Field[K, V], len(m.buf.fields), cap(m.buf.fields))
	copy(fields, m.buf.fields)

	return &Map[K, V]{
		buf:       buffer[K, V]{fields: fields, cmp: m.buf.cmp},
		scanLimit: m.scanLimit,
		keyClone:  m.keyClone,
		ready:     true,
	}
}

// EqualFunc reports whether both maps hold the same keys, in the same order,
// with values considered equal by eq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	m.guard.read("EqualFunc")
	other.guard.read("EqualFunc")

	if m.buf.len() != other.buf.len() {
		return false
	}

	if m.buf.len() == 0 {
		return true
	}

	m.mustPrepare()

	for i := range m.buf.fields {
		left, right := &m.buf.fields[i], &other.buf.fields[i]

		if m.buf.cmp(left.key, right.key) != 0 || !eq(left.Value, right.Value) {
			return false
		}
	}

	return true
}

// Equal reports whether two maps hold the same keys and equal values.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool {
		return x == y
	})
}

// String formats the map as "{k1: v1, k2: v2}".
func (m *Map[K, V]) String() string {
	m.guard.read("String")

	var sb strings.Builder

	sb.WriteByte('{')

	for i, field := range m.buf.fields {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(field.String())
	}

	sb.WriteByte('}')

	return sb.String()
}

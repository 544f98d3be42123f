package maps

import (
	"fmt"

	"github.com/amp-labs/sortedvec/errors"
)

// Entry is the result of locating a key with Map.Entry. It is either an
// *OccupiedEntry or a *VacantEntry.
//
// An entry holds the map's exclusive borrow until it is consumed (by Insert,
// Replace, Remove, OrInsert, OrInsertWith or OrDefault) or released. Any
// other access to the map while an entry is open panics. Using an entry
// after it has been consumed also panics.
type Entry[K any, V any] interface {
	// Key returns the stored key for an occupied entry, or the key being
	// looked up for a vacant one.
	Key() K

	// Occupied reports whether the key was found.
	Occupied() bool

	// Index returns the position of the field, or the position at which it
	// would be inserted.
	Index() int

	// AndModify calls update with the stored value if the entry is
	// occupied, and returns the entry unchanged otherwise.
	AndModify(update func(value *V)) Entry[K, V]

	// OrInsert inserts value if the entry is vacant, then returns a pointer
	// to the stored value. It consumes the entry.
	OrInsert(value V) *V

	// OrInsertWith calls produce and inserts its result only if the entry is
	// vacant, then returns a pointer to the stored value. It consumes the
	// entry.
	OrInsertWith(produce func() V) *V

	// OrDefault inserts the zero V if the entry is vacant, then returns a
	// pointer to the stored value. It consumes the entry.
	OrDefault() *V

	// Release gives the borrow back to the map without changing it. It is a
	// no-op on a consumed entry.
	Release()

	sealed()
}

// Entry locates key and returns an entry positioned on it. If the entry ends
// up inserting, the key is cloned first when the map was built WithKeyClone.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return m.entry("Entry", key, false)
}

// EntryOwned is Entry for a key the caller hands over: it is stored as is,
// without cloning.
func (m *Map[K, V]) EntryOwned(key K) Entry[K, V] {
	return m.entry("EntryOwned", key, true)
}

func (m *Map[K, V]) entry(op string, key K, owned bool) Entry[K, V] {
	m.guard.write(op)

	index, found := m.search(key)
	m.guard.lock(op)

	base := entryBase[K, V]{m: m, index: index}

	if found {
		return &OccupiedEntry[K, V]{entryBase: base}
	}

	return &VacantEntry[K, V]{entryBase: base, key: key, owned: owned}
}

var (
	_ Entry[int, int] = (*OccupiedEntry[int, int])(nil)
	_ Entry[int, int] = (*VacantEntry[int, int])(nil)
)

type entryBase[K any, V any] struct {
	m        *Map[K, V]
	index    int
	consumed bool
}

func (e *entryBase[K, V]) check(op string) {
	if e.consumed {
		panic(fmt.Errorf("%w: %s", errors.ErrEntryConsumed, op))
	}
}

func (e *entryBase[K, V]) consume() {
	e.consumed = true
	e.m.guard.unlock()
}

func (e *entryBase[K, V]) Index() int {
	e.check("Index")

	return e.index
}

func (e *entryBase[K, V]) Release() {
	if !e.consumed {
		e.consume()
	}
}

func (e *entryBase[K, V]) sealed() {}

// guarded runs caller code while the entry is open. If f panics the borrow
// is given back, since a chained call leaves the caller nothing to Release.
func (e *entryBase[K, V]) guarded(f func()) {
	done := false

	defer func() {
		if !done {
			e.Release()
		}
	}()

	f()

	done = true
}

// OccupiedEntry is an Entry whose key is stored in the map.
type OccupiedEntry[K any, V any] struct {
	entryBase[K, V]
}

func (e *OccupiedEntry[K, V]) field() *Field[K, V] {
	return &e.m.buf.fields[e.index]
}

// Key returns the key stored in the map.
func (e *OccupiedEntry[K, V]) Key() K {
	e.check("Key")

	return e.field().key
}

// Occupied returns true.
func (e *OccupiedEntry[K, V]) Occupied() bool {
	return true
}

// Value returns the stored value.
func (e *OccupiedEntry[K, V]) Value() V {
	e.check("Value")

	return e.field().Value
}

// ValuePtr returns a pointer to the stored value. The entry stays open.
func (e *OccupiedEntry[K, V]) ValuePtr() *V {
	e.check("ValuePtr")

	return &e.field().Value
}

// AndModify calls update with the stored value.
func (e *OccupiedEntry[K, V]) AndModify(update func(value *V)) Entry[K, V] {
	e.check("AndModify")

	e.guarded(func() {
		update(&e.field().Value)
	})

	return e
}

// OrInsert returns the stored value, ignoring value.
func (e *OccupiedEntry[K, V]) OrInsert(V) *V {
	return e.into("OrInsert")
}

// OrInsertWith returns the stored value without calling produce.
func (e *OccupiedEntry[K, V]) OrInsertWith(func() V) *V {
	return e.into("OrInsertWith")
}

// OrDefault returns the stored value.
func (e *OccupiedEntry[K, V]) OrDefault() *V {
	return e.into("OrDefault")
}

func (e *OccupiedEntry[K, V]) into(op string) *V {
	e.check(op)
	e.consume()

	return &e.field().Value
}

// Replace stores value in place of the current one and returns the previous
// value. The key is kept. It consumes the entry.
func (e *OccupiedEntry[K, V]) Replace(value V) V {
	e.check("Replace")
	e.consume()

	field := e.field()
	previous := field.Value
	field.Value = value

	return previous
}

// Remove deletes the field from the map and returns it. It consumes the entry.
func (e *OccupiedEntry[K, V]) Remove() Field[K, V] {
	e.check("Remove")
	e.consume()

	return e.m.buf.removeAt(e.index)
}

// VacantEntry is an Entry for a key that is not in the map.
type VacantEntry[K any, V any] struct {
	entryBase[K, V]

	key   K
	owned bool
}

// Key returns the key that was looked up.
func (e *VacantEntry[K, V]) Key() K {
	e.check("Key")

	return e.key
}

// Occupied returns false.
func (e *VacantEntry[K, V]) Occupied() bool {
	return false
}

// AndModify does nothing for a vacant entry.
func (e *VacantEntry[K, V]) AndModify(func(value *V)) Entry[K, V] {
	e.check("AndModify")

	return e
}

// Insert stores value under the entry's key and returns a pointer to it.
// It consumes the entry.
func (e *VacantEntry[K, V]) Insert(value V) *V {
	e.check("Insert")

	key := e.key
	if !e.owned && e.m.keyClone != nil {
		e.guarded(func() {
			key = e.m.keyClone(key)
		})
	}

	e.consume()
	e.m.buf.insertAt(e.index, NewField(key, value))

	return &e.m.buf.fields[e.index].Value
}

// OrInsert inserts value.
func (e *VacantEntry[K, V]) OrInsert(value V) *V {
	return e.Insert(value)
}

// OrInsertWith inserts the result of produce. The map stays borrowed while
// produce runs.
func (e *VacantEntry[K, V]) OrInsertWith(produce func() V) *V {
	e.check("OrInsertWith")

	var value V

	e.guarded(func() {
		value = produce()
	})

	return e.Insert(value)
}

// OrDefault inserts the zero V.
func (e *VacantEntry[K, V]) OrDefault() *V {
	var zero V

	return e.Insert(zero)
}

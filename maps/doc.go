// Package maps provides Map, an ordered key/value collection stored in a single
// sorted slice instead of a tree or a hash table.
//
// # Overview
//
// A Map keeps its fields sorted by key at all times. Lookups narrow the search
// window by bisection until it is small enough to fit in a couple of cache
// lines, then finish with a linear scan. Iteration is always in key order.
//
//	m := maps.New[int, string]()
//	m.Insert(5, "e")
//	m.Insert(1, "a")
//	m.Insert(3, "c")
//
//	for key, value := range m.Seq() {
//	    fmt.Println(key, value) // 1 a, 3 c, 5 e
//	}
//
// Insertion and removal shift the tail of the slice, so they are O(n). Two
// maps can be combined in a single linear pass with [Map.MergeWith].
//
// # Ordering
//
// Keys are ordered by a [compare.Func] given at construction ([New] for
// cmp.Ordered keys, [NewSortable] for [sortable.Sortable] keys, [NewFunc] for
// anything else). The zero Map is usable when the key type has a natural
// order: a built-in integer, float or string type, a named type whose
// underlying type is one of those, or a Sortable type.
//
// # Borrowing
//
// Entries, drains and iterators borrow the map. An [Entry] or a [Drain]
// holds an exclusive borrow until it is consumed or closed; iterators such as
// [Map.Seq] and [Map.Union] hold a shared borrow until they finish or are
// closed. Any access that conflicts with an outstanding borrow panics with an
// error wrapping errors.ErrAliasedAccess instead of observing a half-updated
// buffer.
//
// # Thread Safety
//
// A Map is not safe for concurrent use. Callers must synchronize access
// externally, for example with a sync.Mutex.
package maps

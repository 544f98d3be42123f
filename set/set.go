// Package set provides Set, an ordered collection of unique members stored in
// a single sorted slice. It is a thin layer over maps.Map with an empty value
// type, and shares its lookup strategy, ordering and borrowing rules.
package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/maps"
	"github.com/amp-labs/sortedvec/optional"
	"github.com/amp-labs/sortedvec/sortable"
)

// Option configures a Set at construction time. Set accepts the same options
// as maps.Map.
type Option = maps.Option

var (
	// WithCapacity preallocates room for n members.
	WithCapacity = maps.WithCapacity

	// WithScanLimit sets the linear scan window used by lookups.
	WithScanLimit = maps.WithScanLimit
)

// WithMemberClone registers a function which produces an owned copy of a
// member. It is called when a member is copied in from another set.
func WithMemberClone[T any](clone func(T) T) Option {
	return maps.WithKeyClone(clone)
}

type unit = struct{}

// Set is an ordered collection of unique members.
//
// The zero Set is ready to use when T has a natural order (see maps.Map).
type Set[T any] struct {
	m maps.Map[T, unit]
}

// New returns an empty set ordered by the natural order of T.
func New[T cmp.Ordered](opts ...Option) *Set[T] {
	return NewFunc(compare.Ordered[T](), opts...)
}

// NewSortable returns an empty set ordered by T's LessThan and Equals methods.
func NewSortable[T sortable.Sortable[T]](opts ...Option) *Set[T] {
	return NewFunc(sortable.Func[T](), opts...)
}

// NewFunc returns an empty set ordered by cmpFn.
func NewFunc[T any](cmpFn compare.Func[T], opts ...Option) *Set[T] {
	return &Set[T]{m: *maps.NewFunc[T, unit](cmpFn, opts...)}
}

// Collect builds a set from seq, ordered by the natural order of T.
func Collect[T cmp.Ordered](seq iter.Seq[T], opts ...Option) *Set[T] {
	return CollectFunc(compare.Ordered[T](), seq, opts...)
}

// CollectFunc builds a set from seq, ordered by cmpFn.
func CollectFunc[T any](cmpFn compare.Func[T], seq iter.Seq[T], opts ...Option) *Set[T] {
	var pairs iter.Seq2[T, unit] = func(yield func(T, unit) bool) {
		for member := range seq {
			if !yield(member, unit{}) {
				return
			}
		}
	}

	return &Set[T]{m: *maps.CollectFunc(cmpFn, pairs, opts...)}
}

// Insert adds member to the set. It returns false, leaving the set
// unchanged, if an equal member is already present.
func (s *Set[T]) Insert(member T) bool {
	return s.m.InsertWith(member, func() unit { return unit{} }).Empty()
}

// Replace stores member, replacing an equal member if there is one, and
// returns the member it replaced.
func (s *Set[T]) Replace(member T) optional.Value[T] {
	return keyOf(s.m.Insert(member, unit{}))
}

// Contains reports whether the set holds a member equal to member.
func (s *Set[T]) Contains(member T) bool {
	return s.m.Contains(member)
}

// Get returns the stored member equal to member.
func (s *Set[T]) Get(member T) (T, bool) {
	field, found := s.m.GetField(member)

	return field.Key(), found
}

// Remove deletes the member equal to member and returns it.
func (s *Set[T]) Remove(member T) optional.Value[T] {
	return keyOf(s.m.Remove(member))
}

// Member returns the member at position index in sort order.
func (s *Set[T]) Member(index int) (T, bool) {
	field, ok := s.m.At(index)

	return field.Key(), ok
}

// RemoveMember deletes the member at position index. An out of range index
// leaves the set unchanged and returns None.
func (s *Set[T]) RemoveMember(index int) optional.Value[T] {
	return keyOf(s.m.RemoveAt(index))
}

// Index returns the position of member and true if it is present, or the
// position at which it would be inserted and false.
func (s *Set[T]) Index(member T) (int, bool) {
	return s.m.Search(member)
}

// First returns the smallest member.
func (s *Set[T]) First() (T, bool) {
	field, ok := s.m.First()

	return field.Key(), ok
}

// Last returns the largest member.
func (s *Set[T]) Last() (T, bool) {
	field, ok := s.m.Last()

	return field.Key(), ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// IsEmpty returns true if the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Capacity returns how many members the set can hold before it must reallocate.
func (s *Set[T]) Capacity() int {
	return s.m.Capacity()
}

// Reserve makes room for at least additional more members.
func (s *Set[T]) Reserve(additional int) {
	s.m.Reserve(additional)
}

// ShrinkTo reduces the capacity to max(Len(), n).
func (s *Set[T]) ShrinkTo(n int) {
	s.m.ShrinkTo(n)
}

// ShrinkToFit reduces the capacity to Len().
func (s *Set[T]) ShrinkToFit() {
	s.m.ShrinkToFit()
}

// Clear removes every member, keeping the allocated capacity.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Seq yields the members in ascending order. The set must not be modified
// while the loop runs.
func (s *Set[T]) Seq() iter.Seq[T] {
	return s.m.Keys()
}

// InsertAll inserts every member of seq.
func (s *Set[T]) InsertAll(seq iter.Seq[T]) {
	for member := range seq {
		s.Insert(member)
	}
}

// UnionWith adds every member of other to s in a single pass over both sets.
// Members already in s are kept as they are.
func (s *Set[T]) UnionWith(other *Set[T]) {
	s.m.MergeWith(&other.m, maps.KeepLeft[T, unit]())
}

// Clone returns a copy of the set with the same ordering and options.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{m: *s.m.Clone()}
}

// Equal reports whether both sets hold equal members.
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.m.EqualFunc(&other.m, func(unit, unit) bool { return true })
}

// String formats the set as "{a, b, c}".
func (s *Set[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, field := range s.m.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, field.Key())
	}

	sb.WriteByte('}')

	return sb.String()
}

func keyOf[T any](field optional.Value[maps.Field[T, unit]]) optional.Value[T] {
	return optional.Map(field, maps.Field[T, unit].Key)
}

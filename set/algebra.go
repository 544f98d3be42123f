package set

import "iter"

// Sequence is a lazy, single-pass walk over members produced by Union,
// Intersection, Difference or Drain. It can be abandoned at any point by
// calling Close; running it to the end closes it as well.
type Sequence[T any] struct {
	next  func() (T, bool)
	close func()
}

// Next returns the next member.
func (q *Sequence[T]) Next() (T, bool) {
	return q.next()
}

// Close releases the sets the sequence borrows. It is safe to call more than once.
func (q *Sequence[T]) Close() {
	q.close()
}

// Seq ranges over the rest of the sequence and closes it when the loop ends.
func (q *Sequence[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer q.Close()

		for {
			member, ok := q.Next()
			if !ok || !yield(member) {
				return
			}
		}
	}
}

// Union yields every member of s or other once, in ascending order.
// Both sets are borrowed for reading until the sequence ends or is closed.
func (s *Set[T]) Union(other *Set[T]) *Sequence[T] {
	union := s.m.Union(&other.m)

	return &Sequence[T]{
		next: func() (T, bool) {
			step, ok := union.Next()

			return step.Key, ok
		},
		close: union.Close,
	}
}

// Intersection yields the members found in both s and other, in ascending
// order. The members are taken from s.
func (s *Set[T]) Intersection(other *Set[T]) *Sequence[T] {
	intersection := s.m.Intersection(&other.m)

	return &Sequence[T]{
		next: func() (T, bool) {
			member, _, ok := intersection.Next()

			return member, ok
		},
		close: intersection.Close,
	}
}

// Difference yields the members of s that are not in other, in ascending order.
func (s *Set[T]) Difference(other *Set[T]) *Sequence[T] {
	difference := s.m.Difference(&other.m)

	return &Sequence[T]{
		next: func() (T, bool) {
			member, _, ok := difference.Next()

			return member, ok
		},
		close: difference.Close,
	}
}

// Drain removes members from the front of the set as they are consumed, in
// ascending order. The set is borrowed exclusively until the sequence ends or
// is closed; afterwards it holds exactly the members that were not consumed.
func (s *Set[T]) Drain() *Sequence[T] {
	drain := s.m.Drain()

	return &Sequence[T]{
		next: func() (T, bool) {
			field, ok := drain.Next()

			return field.Key(), ok
		},
		close: drain.Close,
	}
}

// IsSubset reports whether every member of s is also in other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	difference := s.m.Difference(&other.m)
	defer difference.Close()

	_, _, found := difference.Next()

	return !found
}

// IsDisjoint reports whether s and other have no members in common.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	intersection := s.m.Intersection(&other.m)
	defer intersection.Close()

	_, _, found := intersection.Next()

	return !found
}

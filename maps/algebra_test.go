package maps_test

import (
	"testing"

	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/maps"
	"github.com/amp-labs/sortedvec/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	t.Parallel()

	left := mapOf(1, "a", 2, "b", 3, "c")
	right := mapOf(2, "B", 4, "D")

	merged := maps.New[int, string]()

	for step := range left.Union(right).Seq() {
		merged.Insert(step.MapBoth(func(_ int, l, r string) string { return l + r }))
	}

	assert.Equal(t, "{1: a, 2: bB, 3: c, 4: D}", merged.String())

	union := left.Union(right)

	first, ok := union.Next()
	require.True(t, ok)
	assert.Equal(t, 1, first.Key)
	assert.False(t, first.Both())
	assert.True(t, first.Right.Empty())

	second, _ := union.Next()
	assert.True(t, second.Both())

	union.Close()

	_, ok = union.Next()
	assert.False(t, ok)

	left.Insert(9, "z")
}

func TestIntersection(t *testing.T) {
	t.Parallel()

	left := mapOf(1, "a", 2, "b", 3, "c", 5, "e")
	right := mapOf(0, "z", 2, "B", 3, "C", 4, "D")

	var keys []int

	var values []tuple.Tuple2[string, string]

	for key, pair := range left.Intersection(right).Seq() {
		keys = append(keys, key)
		values = append(values, pair)
	}

	assert.Equal(t, []int{2, 3}, keys)
	assert.Equal(t, []tuple.Tuple2[string, string]{
		tuple.NewTuple2("b", "B"),
		tuple.NewTuple2("c", "C"),
	}, values)
}

func TestDifference(t *testing.T) {
	t.Parallel()

	left := mapOf(1, "a", 2, "b", 3, "c", 7, "g")
	right := mapOf(2, "B", 4, "D", 5, "E")

	var got []int
	for key := range left.Difference(right).Seq() {
		got = append(got, key)
	}

	assert.Equal(t, []int{1, 3, 7}, got)

	key, value, ok := right.Difference(left).Next()
	require.True(t, ok)
	assert.Equal(t, 4, key)
	assert.Equal(t, "D", value)
}

func TestAlgebraPartialConsumption(t *testing.T) {
	t.Parallel()

	left := mapOf(1, "a", 2, "b", 3, "c")
	right := mapOf(3, "c")

	diff := left.Difference(right)
	_, _, ok := diff.Next()
	require.True(t, ok)

	require.ErrorIs(t, panicErr(func() { left.Insert(4, "d") }), errors.ErrAliasedAccess)
	require.ErrorIs(t, panicErr(func() { right.Remove(3) }), errors.ErrAliasedAccess)

	// Reads stay allowed while shared.
	assert.Equal(t, 3, left.Len())

	diff.Close()
	left.Insert(4, "d")
	right.Remove(3)

	for range left.Union(right).Seq() {
		break
	}

	left.Insert(5, "e")
	assert.Equal(t, 5, left.Len())
}

func TestAlgebraExhaustionReleases(t *testing.T) {
	t.Parallel()

	left := mapOf(1, "a")
	right := mapOf(1, "b")

	x := left.Intersection(right)

	_, _, ok := x.Next()
	require.True(t, ok)

	_, _, ok = x.Next()
	require.False(t, ok)

	left.Insert(2, "b")
	right.Insert(2, "c")
	assert.Equal(t, 2, left.Len())
}

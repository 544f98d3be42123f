package maps_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/sortedvec/hashing"
	"github.com/amp-labs/sortedvec/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ hashing.Hashable = (*maps.Map[int, int])(nil)

func TestHashIgnoresInsertionOrder(t *testing.T) {
	t.Parallel()

	a := mapOf(1, "a", 2, "b", 3, "c")
	b := mapOf(3, "c", 1, "a", 2, "b")

	for _, fn := range []hashing.HashFunc{hashing.Sha256, hashing.Xxh3, hashing.XxHash64} {
		left, err := fn(a)
		require.NoError(t, err)

		right, err := fn(b)
		require.NoError(t, err)

		assert.Equal(t, left, right)
	}
}

func TestHashDistinguishesContents(t *testing.T) {
	t.Parallel()

	base, err := hashing.Sum64(mapOf(1, "a", 2, "b"))
	require.NoError(t, err)

	for _, other := range []*maps.Map[int, string]{
		mapOf(1, "a"),
		mapOf(1, "a", 2, "c"),
		mapOf(1, "a", 3, "b"),
		mapOf(),
	} {
		sum, err := hashing.Sum64(other)
		require.NoError(t, err)
		assert.NotEqual(t, base, sum, other.String())
	}
}

func TestHashNested(t *testing.T) {
	t.Parallel()

	inner := maps.Collect(slices.All([]string{"x"}))
	outer := maps.New[string, *maps.Map[int, string]]()
	outer.Insert("inner", inner)

	_, err := hashing.Xxh3(outer)
	require.NoError(t, err)

	unsupported := maps.New[int, []int]()
	unsupported.Insert(1, []int{1})

	_, err = hashing.Sha256(unsupported)
	require.ErrorIs(t, err, hashing.ErrUnsupportedType)
}

package maps_test

import (
	"testing"

	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainComplete(t *testing.T) {
	t.Parallel()

	m := mapOf(3, "c", 1, "a", 2, "b")

	var keys []int
	for key := range m.Drain().Seq() {
		keys = append(keys, key)
	}

	assert.Equal(t, []int{1, 2, 3}, keys)
	assert.True(t, m.IsEmpty())
}

func TestDrainPartialLeavesSuffix(t *testing.T) {
	t.Parallel()

	m := mapOf(1, "a", 2, "b", 3, "c", 4, "d")

	drain := m.Drain()

	field, ok := drain.Next()
	require.True(t, ok)
	assert.Equal(t, maps.NewField(1, "a"), field)

	_, ok = drain.Next()
	require.True(t, ok)
	assert.Equal(t, 2, drain.Remaining())

	require.ErrorIs(t, panicErr(func() { m.Len() }), errors.ErrAliasedAccess)

	drain.Close()
	drain.Close()

	assert.Equal(t, "{3: c, 4: d}", m.String())
	assert.Equal(t, 0, drain.Remaining())

	_, ok = drain.Next()
	assert.False(t, ok)

	m.Insert(0, "z")
	assert.Equal(t, "{0: z, 3: c, 4: d}", m.String())
}

func TestDrainSeqBreak(t *testing.T) {
	t.Parallel()

	m := mapOf(1, "a", 2, "b", 3, "c")

	for key := range m.Drain().Seq() {
		if key == 2 {
			break
		}
	}

	assert.Equal(t, "{3: c}", m.String())
}

func TestDrainEmpty(t *testing.T) {
	t.Parallel()

	m := maps.New[int, int]()
	drain := m.Drain()

	_, ok := drain.Next()
	assert.False(t, ok)

	m.Insert(1, 1)
	assert.Equal(t, 1, m.Len())
}

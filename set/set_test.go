package set_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/hashing"
	"github.com/amp-labs/sortedvec/optional"
	"github.com/amp-labs/sortedvec/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	f()

	return nil
}

func TestInsertScenario(t *testing.T) {
	t.Parallel()

	s := set.New[int]()

	assert.True(t, s.Insert(42))
	assert.True(t, s.Insert(1))
	assert.False(t, s.Insert(42))

	require.Equal(t, 2, s.Len())

	first, ok := s.Member(0)
	require.True(t, ok)
	assert.Equal(t, 1, first)

	second, ok := s.Member(1)
	require.True(t, ok)
	assert.Equal(t, 42, second)

	_, ok = s.Member(2)
	assert.False(t, ok)
	assert.Equal(t, "{1, 42}", s.String())
}

func TestUniquenessUnderRandomInserts(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec
	s := set.New[int]()
	seen := map[int]bool{}

	for range 2000 {
		member := rng.IntN(150)

		assert.Equal(t, !seen[member], s.Insert(member))
		seen[member] = true
	}

	members := slices.Collect(s.Seq())
	assert.Len(t, members, len(seen))
	assert.True(t, slices.IsSorted(members))
	assert.Len(t, slices.Compact(slices.Clone(members)), len(members))
}

func TestRemoveMember(t *testing.T) {
	t.Parallel()

	s := set.Collect(slices.Values([]string{"c", "a", "b"}))

	assert.Equal(t, optional.Some("b"), s.RemoveMember(1))
	assert.True(t, s.RemoveMember(2).Empty())
	assert.True(t, s.RemoveMember(-1).Empty())
	assert.Equal(t, "{a, c}", s.String())

	assert.Equal(t, optional.Some("a"), s.Remove("a"))
	assert.True(t, s.Remove("a").Empty())
	assert.False(t, s.Contains("a"))
	assert.True(t, s.Contains("c"))
}

func TestReplaceKeepsLatestMember(t *testing.T) {
	t.Parallel()

	s := set.NewFunc(compare.By(strings.ToLower, compare.Ordered[string]()))

	assert.True(t, s.Insert("Go"))
	assert.False(t, s.Insert("go"))

	stored, ok := s.Get("GO")
	require.True(t, ok)
	assert.Equal(t, "Go", stored)

	assert.Equal(t, optional.Some("Go"), s.Replace("go"))
	stored, _ = s.Get("GO")
	assert.Equal(t, "go", stored)

	assert.True(t, s.Replace("rust").Empty())
	assert.Equal(t, 2, s.Len())
}

func TestAlgebra(t *testing.T) {
	t.Parallel()

	a := set.Collect(slices.Values([]int{1, 2, 3, 5, 8}))
	b := set.Collect(slices.Values([]int{2, 3, 4, 8, 9}))

	assert.Equal(t, []int{1, 2, 3, 4, 5, 8, 9}, slices.Collect(a.Union(b).Seq()))
	assert.Equal(t, []int{2, 3, 8}, slices.Collect(a.Intersection(b).Seq()))
	assert.Equal(t, []int{1, 5}, slices.Collect(a.Difference(b).Seq()))
	assert.Equal(t, []int{4, 9}, slices.Collect(b.Difference(a).Seq()))

	assert.False(t, a.IsSubset(b))
	assert.True(t, set.Collect(slices.Values([]int{2, 8})).IsSubset(a))
	assert.False(t, a.IsDisjoint(b))
	assert.True(t, a.IsDisjoint(set.New[int]()))
}

func TestAlgebraPartialConsumption(t *testing.T) {
	t.Parallel()

	a := set.Collect(slices.Values([]int{1, 2, 3}))
	b := set.Collect(slices.Values([]int{3, 4}))

	union := a.Union(b)

	member, ok := union.Next()
	require.True(t, ok)
	assert.Equal(t, 1, member)

	require.ErrorIs(t, panicErr(func() { a.Insert(0) }), errors.ErrAliasedAccess)
	assert.True(t, b.Contains(4))

	union.Close()
	assert.True(t, a.Insert(0))

	_, ok = union.Next()
	assert.False(t, ok)
}

func TestDrain(t *testing.T) {
	t.Parallel()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		s := set.Collect(slices.Values([]int{3, 1, 2}))
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Drain().Seq()))
		assert.True(t, s.IsEmpty())
	})

	t.Run("partial", func(t *testing.T) {
		t.Parallel()

		s := set.Collect(slices.Values([]int{5, 4, 3, 2, 1}))

		drain := s.Drain()
		for range 2 {
			_, ok := drain.Next()
			require.True(t, ok)
		}

		drain.Close()
		assert.Equal(t, []int{3, 4, 5}, slices.Collect(s.Seq()))
	})

	t.Run("break", func(t *testing.T) {
		t.Parallel()

		s := set.Collect(slices.Values([]int{1, 2, 3}))

		for member := range s.Drain().Seq() {
			if member == 1 {
				break
			}
		}

		assert.Equal(t, "{2, 3}", s.String())
	})
}

func TestCapacityAndClone(t *testing.T) {
	t.Parallel()

	s := set.New[int](set.WithCapacity(16))
	assert.Equal(t, 16, s.Capacity())

	s.InsertAll(slices.Values([]int{1, 2, 3}))
	s.ShrinkToFit()
	assert.Equal(t, 3, s.Capacity())

	clone := s.Clone()
	assert.True(t, s.Equal(clone))

	clone.Insert(4)
	assert.False(t, s.Equal(clone))

	index, found := clone.Index(4)
	assert.True(t, found)
	assert.Equal(t, 3, index)

	first, _ := clone.First()
	last, _ := clone.Last()
	assert.Equal(t, 1, first)
	assert.Equal(t, 4, last)

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestZeroSet(t *testing.T) {
	t.Parallel()

	var s set.Set[string]
	s.Insert("b")
	s.Insert("a")

	assert.Equal(t, "{a, b}", s.String())
}

func TestCodecs(t *testing.T) {
	t.Parallel()

	s := set.Collect(slices.Values([]string{"pear", "apple", "fig"}))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["apple","fig","pear"]`, string(data))

	var fromJSON set.Set[string]
	require.NoError(t, json.Unmarshal([]byte(`["pear","fig","apple","fig"]`), &fromJSON))
	assert.True(t, s.Equal(&fromJSON))

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	var generic []string
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Equal(t, []string{"apple", "fig", "pear"}, generic)

	var fromYAML set.Set[string]
	require.NoError(t, yaml.Unmarshal([]byte("- pear\n- apple\n- fig\n"), &fromYAML))
	assert.True(t, s.Equal(&fromYAML))

	require.ErrorIs(t, yaml.Unmarshal([]byte("a: b\n"), &fromYAML), errors.ErrMalformedField)

	type tag struct{ Name string }

	var opaque set.Set[tag]
	require.ErrorIs(t, json.Unmarshal([]byte(`[{"Name":"x"}]`), &opaque), errors.ErrNoComparator)
}

func TestHash(t *testing.T) {
	t.Parallel()

	a := set.Collect(slices.Values([]string{"x", "y"}))
	b := set.Collect(slices.Values([]string{"y", "x"}))
	c := set.Collect(slices.Values([]string{"x", "z"}))

	ha, err := hashing.Xxh3(a)
	require.NoError(t, err)

	hb, err := hashing.Xxh3(b)
	require.NoError(t, err)

	hc, err := hashing.Xxh3(c)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)
}

func TestMemberClone(t *testing.T) {
	t.Parallel()

	clones := 0
	s := set.New[string](set.WithMemberClone(func(member string) string {
		clones++

		return strings.Clone(member)
	}))

	s.Insert("a")
	assert.Equal(t, 0, clones)

	s.UnionWith(set.Collect(slices.Values([]string{"a", "b", "c"})))
	assert.Equal(t, 2, clones)
	assert.Equal(t, "{a, b, c}", s.String())
}

func TestCollatedMembers(t *testing.T) {
	t.Parallel()

	s := set.CollectFunc(
		compare.Collated(language.German, collate.IgnoreCase),
		slices.Values([]string{"Zebra", "Äpfel", "apple", "zebra"}),
	)

	assert.Equal(t, []string{"Äpfel", "apple", "Zebra", "zebra"}, slices.Collect(s.Seq()))
}

func TestFailedDecodeKeepsMembers(t *testing.T) {
	t.Parallel()

	s := set.Collect(slices.Values([]int{9}))

	require.Error(t, json.Unmarshal([]byte(`[1, "two", 3]`), s))
	assert.Equal(t, "{9}", s.String())

	require.ErrorIs(t, yaml.Unmarshal([]byte("- 1\n- [2]\n"), s), errors.ErrMalformedField)
	assert.Equal(t, "{9}", s.String())
}

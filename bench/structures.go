package bench

import (
	"slices"

	"github.com/amp-labs/sortedvec/maps"
	"github.com/amp-labs/sortedvec/set"
)

// structure is one lookup implementation under test.
type structure interface {
	load(keys []int)
	contains(key int) bool
}

// Structures names every implementation Run measures, in report order.
var Structures = []string{"sortedvec-map", "sortedvec-set", "go-map", "binary-search"} //nolint:gochecknoglobals

func newStructure(name string, scanLimit int) structure {
	var opts []maps.Option
	if scanLimit >= 0 {
		opts = append(opts, maps.WithScanLimit(scanLimit))
	}

	switch name {
	case "sortedvec-map":
		return &sortedMap{opts: opts}
	case "sortedvec-set":
		return &sortedSet{opts: opts}
	case "go-map":
		return &goMap{}
	default:
		return &sortedSlice{}
	}
}

type sortedMap struct {
	opts []maps.Option
	m    *maps.Map[int, int]
}

func (s *sortedMap) load(keys []int) {
	s.m = maps.New[int, int](append(s.opts, maps.WithCapacity(len(keys)))...)
	for i, key := range keys {
		s.m.Insert(key, i)
	}
}

func (s *sortedMap) contains(key int) bool {
	_, found := s.m.Get(key)

	return found
}

type sortedSet struct {
	opts []maps.Option
	s    *set.Set[int]
}

func (s *sortedSet) load(keys []int) {
	s.s = set.Collect(slices.Values(keys), s.opts...)
}

func (s *sortedSet) contains(key int) bool {
	return s.s.Contains(key)
}

type goMap struct {
	m map[int]int
}

func (g *goMap) load(keys []int) {
	g.m = make(map[int]int, len(keys))
	for i, key := range keys {
		g.m[key] = i
	}
}

func (g *goMap) contains(key int) bool {
	_, found := g.m[key]

	return found
}

type sortedSlice struct {
	keys []int
}

func (s *sortedSlice) load(keys []int) {
	s.keys = slices.Sorted(slices.Values(keys))
}

func (s *sortedSlice) contains(key int) bool {
	_, found := slices.BinarySearch(s.keys, key)

	return found
}

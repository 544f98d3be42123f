package maps

import (
	"cmp"
	"reflect"

	"github.com/amp-labs/sortedvec/compare"
	"github.com/amp-labs/sortedvec/sortable"
)

// naturalOrder returns the ordering a zero Map uses for K, if K has one.
func naturalOrder[K any]() (compare.Func[K], bool) {
	var key K

	if _, ok := any(key).(sortable.Sortable[K]); ok {
		return func(a, b K) int {
			left, _ := any(a).(sortable.Sortable[K])

			switch {
			case left.LessThan(b):
				return -1
			case left.Equals(b):
				return 0
			default:
				return 1
			}
		}, true
	}

	switch any(key).(type) {
	case int:
		return asFunc[K](cmp.Compare[int]), true
	case int8:
		return asFunc[K](cmp.Compare[int8]), true
	case int16:
		return asFunc[K](cmp.Compare[int16]), true
	case int32:
		return asFunc[K](cmp.Compare[int32]), true
	case int64:
		return asFunc[K](cmp.Compare[int64]), true
	case uint:
		return asFunc[K](cmp.Compare[uint]), true
	case uint8:
		return asFunc[K](cmp.Compare[uint8]), true
	case uint16:
		return asFunc[K](cmp.Compare[uint16]), true
	case uint32:
		return asFunc[K](cmp.Compare[uint32]), true
	case uint64:
		return asFunc[K](cmp.Compare[uint64]), true
	case uintptr:
		return asFunc[K](cmp.Compare[uintptr]), true
	case float32:
		return asFunc[K](cmp.Compare[float32]), true
	case float64:
		return asFunc[K](cmp.Compare[float64]), true
	case string:
		return asFunc[K](cmp.Compare[string]), true
	}

	return reflectOrder[K]()
}

func asFunc[K any, T any](f func(a, b T) int) compare.Func[K] {
	out, _ := any(compare.Func[T](f)).(compare.Func[K])

	return out
}

// reflectOrder covers named types whose underlying type is ordered, such as
// `type Priority int`.
func reflectOrder[K any]() (compare.Func[K], bool) {
	//nolint:exhaustive // only ordered kinds have a natural order
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	default:
		return nil, false
	}
}

package maps

import (
	"unsafe"

	"github.com/amp-labs/sortedvec/compare"
)

const (
	// scanBudget is the number of bytes a lookup is willing to walk linearly,
	// two 64-byte cache lines.
	scanBudget = 128

	minScanLimit = 4
	maxScanLimit = 16
)

// defaultScanLimit picks how many fields fit in scanBudget, clamped to
// [minScanLimit, maxScanLimit].
func defaultScanLimit[K any, V any]() int {
	var field Field[K, V]

	size := int(unsafe.Sizeof(field))
	if size == 0 {
		return 1
	}

	return min(max(scanBudget/size, minScanLimit), maxScanLimit)
}

// locate finds key in fields, which must be strictly sorted by cmp.
//
// It returns (index, true) when fields[index] holds key, and (index, false)
// when key is absent and inserting it at index keeps the fields sorted.
//
// The window [low, high) is bisected while it is wider than scanLimit; the
// remainder is scanned from low upward. The result is the same as a plain
// binary search for every scanLimit.
func locate[K any, V any](fields []Field[K, V], key K, cmp compare.Func[K], scanLimit int) (int, bool) {
	low, high := 0, len(fields)

	for {
		width := high - low

		if width <= scanLimit {
			for i := low; i < high; i++ {
				switch c := cmp(fields[i].key, key); {
				case c < 0:
					continue
				case c == 0:
					return i, true
				default:
					return i, false
				}
			}

			return high, false
		}

		mid := low + width/2

		switch c := cmp(fields[mid].key, key); {
		case c < 0:
			low = mid + 1
		case c == 0:
			return mid, true
		default:
			high = mid
		}
	}
}

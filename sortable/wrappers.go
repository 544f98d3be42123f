package sortable

import (
	"cmp"

	"facette.io/natsort"
)

// Int orders by numeric value.
type Int int

// Byte orders by numeric value.
type Byte byte

// String orders lexically, byte by byte.
type String string

// NaturalString orders runs of digits by their numeric value, so "v2" sorts
// before "v10".
type NaturalString string

var (
	_ Sortable[Int]           = Int(0)
	_ Sortable[Byte]          = Byte(0)
	_ Sortable[String]        = String("")
	_ Sortable[NaturalString] = NaturalString("")
)

func (i Int) Equals(other Int) bool   { return i == other }
func (i Int) LessThan(other Int) bool { return cmp.Less(i, other) }

func (b Byte) Equals(other Byte) bool   { return b == other }
func (b Byte) LessThan(other Byte) bool { return cmp.Less(b, other) }

func (s String) Equals(other String) bool   { return s == other }
func (s String) LessThan(other String) bool { return cmp.Less(s, other) }

func (s NaturalString) Equals(other NaturalString) bool { return s == other }

// LessThan reports whether s precedes other in natural order. Strings that
// natural order cannot tell apart, such as "a1" and "a01", fall back to byte
// order so that LessThan stays consistent with Equals.
func (s NaturalString) LessThan(other NaturalString) bool {
	a, b := string(s), string(other)

	if less, greater := natsort.Compare(a, b), natsort.Compare(b, a); less != greater {
		return less
	}

	return a < b
}

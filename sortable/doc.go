// Package sortable provides the Sortable capability and wrapper types for
// primitive types that implement it, so they can be used as keys of the
// sorted-vector collections in this module.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/sortedvec/compare.Comparable] with
// a LessThan method. Any Sortable type can back a
// [github.com/amp-labs/sortedvec/maps.Map] or
// [github.com/amp-labs/sortedvec/set.Set] without supplying a comparison
// function:
//
//	m := maps.NewSortable[sortable.Int, string]()
//	m.Insert(sortable.Int(42), "answer")
//	m.Insert(sortable.Int(7), "lucky")
//
//	// Keys are visited in order: 7, 42
//	for key, value := range m.Seq() {
//	    fmt.Println(int(key), value)
//	}
//
// [Compare] and [Func] turn a Sortable type into a three-way
// [github.com/amp-labs/sortedvec/compare.Func].
//
// # Creating Custom Sortable Types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// Equals must agree with LessThan: two values are equal exactly when neither
// is less than the other. The collections rely on this to reject duplicates.
package sortable

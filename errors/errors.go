// Package errors holds the sentinel errors shared by the packages in this
// module, plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrAliasedAccess is the panic cause when a collection is touched while an
	// Entry, Drain or iterator holds a conflicting borrow of it.
	ErrAliasedAccess = errors.New("aliased access to borrowed collection")

	// ErrEntryConsumed is the panic cause when an Entry is used after it was
	// consumed by an insert, replace, remove or release.
	ErrEntryConsumed = errors.New("entry already consumed")

	// ErrNoComparator is returned when a collection needs to order keys of a
	// type that has neither an explicit comparison function nor a natural order.
	ErrNoComparator = errors.New("no comparator for key type")

	// ErrMalformedField is returned when a serialized field cannot be decoded
	// into a key/value pair.
	ErrMalformedField = errors.New("malformed field")

	ErrWrongType = errors.New("wrong type")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent operations run to completion and their
// failures should be reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}

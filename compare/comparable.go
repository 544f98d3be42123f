package compare

// Comparable is implemented by key types that decide their own equality.
// Equals must be reflexive, symmetric and transitive.
type Comparable[T any] interface {
	Equals(other T) bool
}

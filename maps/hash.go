package maps

import (
	"fmt"
	"hash"

	"github.com/amp-labs/sortedvec/hashing"
)

// UpdateHash writes the length of the map followed by each key and value in
// key order. Maps with equal contents hash identically.
func (m *Map[K, V]) UpdateHash(h hash.Hash) error {
	m.guard.read("UpdateHash")

	if err := hashing.UpdateAny(h, m.buf.len()); err != nil {
		return err
	}

	for i, field := range m.buf.fields {
		if err := hashing.UpdateAny(h, field.key); err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}

		if err := hashing.UpdateAny(h, field.Value); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}

	return nil
}

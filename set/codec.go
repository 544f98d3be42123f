package set

import (
	"encoding/json"
	"fmt"
	"hash"

	"github.com/amp-labs/sortedvec/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the set as an array of members in ascending order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	members := make([]T, 0, s.Len())
	for member := range s.Seq() {
		members = append(members, member)
	}

	return json.Marshal(members)
}

// UnmarshalJSON replaces the contents of the set with the decoded members,
// which may arrive in any order. Repeated members are kept once.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var members []T
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	return s.reset(members)
}

// MarshalYAML encodes the set as a sequence of members in ascending order.
func (s *Set[T]) MarshalYAML() (any, error) {
	members := make([]T, 0, s.Len())
	for member := range s.Seq() {
		members = append(members, member)
	}

	return members, nil
}

// UnmarshalYAML replaces the contents of the set with the decoded members.
func (s *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	var members []T
	if err := node.Decode(&members); err != nil {
		return fmt.Errorf("%w: line %d: %w", errors.ErrMalformedField, node.Line, err)
	}

	return s.reset(members)
}

// reset is only called once the whole input has decoded, so a failed decode
// leaves the set unchanged.
func (s *Set[T]) reset(members []T) error {
	if err := s.m.Init(); err != nil {
		return err
	}

	s.m.Clear()
	s.m.Reserve(len(members))

	for _, member := range members {
		s.Insert(member)
	}

	return nil
}

// UpdateHash writes the number of members followed by each member in
// ascending order.
func (s *Set[T]) UpdateHash(h hash.Hash) error {
	return s.m.UpdateHash(h)
}

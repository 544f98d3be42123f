package maps

import (
	"encoding/json"
	"fmt"

	"github.com/amp-labs/sortedvec/errors"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the map as an array of [key, value] pairs in key order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	m.guard.read("MarshalJSON")

	pairs := make([][2]any, 0, m.buf.len())
	for _, field := range m.buf.fields {
		pairs = append(pairs, [2]any{field.key, field.Value})
	}

	return json.Marshal(pairs)
}

// UnmarshalJSON replaces the contents of the map with the decoded pairs.
// Pairs may arrive in any order; when a key repeats, the last pair wins.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if err := m.prepare(); err != nil {
		return err
	}

	m.guard.write("UnmarshalJSON")

	decoded := m.scratch(len(items))

	for i, item := range items {
		var pair []json.RawMessage
		if err := json.Unmarshal(item, &pair); err != nil {
			return fmt.Errorf("%w: element %d: %w", errors.ErrMalformedField, i, err)
		}

		if len(pair) != 2 { //nolint:mnd
			return fmt.Errorf("%w: element %d has %d parts, want [key, value]", errors.ErrMalformedField, i, len(pair))
		}

		var (
			key   K
			value V
		)

		if err := json.Unmarshal(pair[0], &key); err != nil {
			return fmt.Errorf("element %d key: %w", i, err)
		}

		if err := json.Unmarshal(pair[1], &value); err != nil {
			return fmt.Errorf("element %d value: %w", i, err)
		}

		decoded.Insert(key, value)
	}

	m.buf.replace(decoded.buf.fields)

	return nil
}

// scratch returns an empty map with m's ordering. Decoders fill it and only
// swap its fields into m once the whole input has been read, so a malformed
// input leaves m as it was.
func (m *Map[K, V]) scratch(capacity int) *Map[K, V] {
	return &Map[K, V]{
		buf:       buffer[K, V]{fields: make([]Field[K, V], 0, capacity), cmp: m.buf.cmp},
		scanLimit: m.scanLimit,
		keyClone:  m.keyClone,
		ready:     true,
	}
}

type yamlField[K any, V any] struct {
	Key   K `yaml:"key"`
	Value V `yaml:"value"`
}

// MarshalYAML encodes the map as a sequence of {key, value} mappings.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	m.guard.read("MarshalYAML")

	out := make([]yamlField[K, V], 0, m.buf.len())
	for _, field := range m.buf.fields {
		out = append(out, yamlField[K, V]{Key: field.key, Value: field.Value})
	}

	return out, nil
}

// UnmarshalYAML replaces the contents of the map with the decoded fields.
// Fields may arrive in any order; when a key repeats, the last one wins.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if err := m.prepare(); err != nil {
		return err
	}

	m.guard.write("UnmarshalYAML")

	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		m.buf.clear()

		return nil
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a sequence of {key, value}", errors.ErrMalformedField, node.Line)
	}

	decoded := m.scratch(len(node.Content))

	for _, item := range node.Content {
		var field struct {
			Key   *K `yaml:"key"`
			Value V  `yaml:"value"`
		}

		if err := item.Decode(&field); err != nil {
			return fmt.Errorf("%w: line %d: %w", errors.ErrMalformedField, item.Line, err)
		}

		if field.Key == nil {
			return fmt.Errorf("%w: line %d: missing key", errors.ErrMalformedField, item.Line)
		}

		decoded.Insert(*field.Key, field.Value)
	}

	m.buf.replace(decoded.buf.fields)

	return nil
}

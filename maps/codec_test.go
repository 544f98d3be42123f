package maps_test

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/sortedvec/errors"
	"github.com/amp-labs/sortedvec/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	m := mapOf(2, "b", 1, "a")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,"a"],[2,"b"]]`, string(data))

	decoded := maps.New[int, string]()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, maps.Equal(m, decoded))
}

func TestJSONRevalidatesOrder(t *testing.T) {
	t.Parallel()

	var m maps.Map[string, int]

	require.NoError(t, json.Unmarshal([]byte(`[["c",3],["a",1],["c",30],["b",2]]`), &m))
	assert.Equal(t, "{a: 1, b: 2, c: 30}", m.String())
}

func TestJSONInsideStruct(t *testing.T) {
	t.Parallel()

	type doc struct {
		Name   string                `json:"name"`
		Scores *maps.Map[string, int] `json:"scores"`
	}

	var decoded doc
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","scores":[["b",2],["a",1]]}`), &decoded))
	require.NotNil(t, decoded.Scores)
	assert.Equal(t, "{a: 1, b: 2}", decoded.Scores.String())

	data, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","scores":[["a",1],["b",2]]}`, string(data))
}

func TestJSONMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		isErr error
	}{
		{name: "too short", input: `[[1]]`, isErr: errors.ErrMalformedField},
		{name: "too long", input: `[[1,"a",2]]`, isErr: errors.ErrMalformedField},
		{name: "not a pair", input: `[1]`, isErr: errors.ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := maps.New[int, string]()
			require.ErrorIs(t, json.Unmarshal([]byte(tt.input), m), tt.isErr)
		})
	}

	m := maps.New[int, string]()
	require.Error(t, json.Unmarshal([]byte(`[["one","a"]]`), m))
}

func TestJSONNoComparator(t *testing.T) {
	t.Parallel()

	type key struct{ ID int }

	var m maps.Map[key, int]

	err := json.Unmarshal([]byte(`[[{"ID":1},1]]`), &m)
	require.ErrorIs(t, err, errors.ErrNoComparator)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	m := maps.New[string, []int]()
	m.Insert("odd", []int{1, 3})
	m.Insert("even", []int{2})

	data, err := yaml.Marshal(m)
	require.NoError(t, err)

	var generic []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &generic))
	assert.Equal(t, []map[string]any{
		{"key": "even", "value": []any{2}},
		{"key": "odd", "value": []any{1, 3}},
	}, generic)

	var decoded maps.Map[string, []int]
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "{even: [2], odd: [1 3]}", decoded.String())
}

func TestYAMLRevalidatesOrder(t *testing.T) {
	t.Parallel()

	input := `
- key: 9
  value: nine
- key: 1
  value: one
- key: 9
  value: NINE
`

	m := maps.New[int, string]()
	require.NoError(t, yaml.Unmarshal([]byte(input), m))
	assert.Equal(t, "{1: one, 9: NINE}", m.String())
}

func TestYAMLMalformed(t *testing.T) {
	t.Parallel()

	m := maps.New[int, string]()

	require.ErrorIs(t, yaml.Unmarshal([]byte("a: b\n"), m), errors.ErrMalformedField)
	require.ErrorIs(t, yaml.Unmarshal([]byte("- value: x\n"), m), errors.ErrMalformedField)
	require.ErrorIs(t, yaml.Unmarshal([]byte("- 1\n"), m), errors.ErrMalformedField)
}

func TestFailedDecodeKeepsContents(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		m := maps.New[int, string]()
		m.Insert(9, "keep")

		err := json.Unmarshal([]byte(`[[1,"a"],[2,"b"],[3]]`), m)
		require.ErrorIs(t, err, errors.ErrMalformedField)
		assert.Equal(t, "{9: keep}", m.String())

		require.NoError(t, json.Unmarshal([]byte(`[[1,"a"]]`), m))
		assert.Equal(t, "{1: a}", m.String())
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		m := maps.New[int, string]()
		m.Insert(9, "keep")

		err := yaml.Unmarshal([]byte("- key: 1\n  value: a\n- value: b\n"), m)
		require.ErrorIs(t, err, errors.ErrMalformedField)
		assert.Equal(t, "{9: keep}", m.String())
	})
}

package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	t.Parallel()

	pair := NewTuple2("a", 1)

	assert.Equal(t, "a", pair.First())
	assert.Equal(t, 1, pair.Second())

	first, second := pair.Values()
	assert.Equal(t, "a", first)
	assert.Equal(t, 1, second)
}

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	got := Banner("hi", 8, AlignCenter)
	assert.Equal(t, "╒══════╕\n│  hi  │\n└──────┘", got)

	assert.Equal(t, "│hi    │", strings.Split(Banner("hi", 8, AlignLeft), "\n")[1])
	assert.Equal(t, "│    hi│", strings.Split(Banner("hi", 8, AlignRight), "\n")[1])
	assert.Empty(t, Banner("hi", 2, AlignLeft))
	assert.Empty(t, Banner("hi", 8, 42))
}

func TestBannerTruncates(t *testing.T) {
	t.Parallel()

	lines := strings.Split(Banner("sortedvec", 8, AlignLeft), "\n")
	assert.Equal(t, "│sorte…│", lines[1])
}

func TestBannerMultiline(t *testing.T) {
	t.Parallel()

	lines := strings.Split(Banner("a\r\nbb", 6, AlignLeft), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "│bb  │", lines[2])
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "┠───┨\n", Divider(5))
	assert.Equal(t, "\n", Divider(1))
}

func TestHeadingSuppressed(t *testing.T) {
	t.Setenv("SORTEDVEC_NO_BANNER", "true")

	assert.Equal(t, "results\n", Heading("results"))
}

func TestHeadingWidth(t *testing.T) {
	t.Setenv("SORTEDVEC_BANNER_WIDTH", "10")

	lines := strings.Split(strings.TrimSuffix(Heading("ok"), "\n"), "\n")
	assert.Equal(t, "│   ok   │", lines[1])
}

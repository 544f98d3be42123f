// Package cli renders the boxed headings sortedvec-bench prints above its
// result table. SORTEDVEC_BANNER_WIDTH and SORTEDVEC_NO_BANNER control them.
package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/amp-labs/sortedvec/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

// Alignments accepted by Banner. Heading always centers.
const (
	AlignLeft = iota
	AlignCenter
	AlignRight

	bannerPadding  = 2
	dividerPadding = 2
)

// DefaultWidth is the banner width used when none is configured.
const DefaultWidth = 80

// Width returns the banner width from SORTEDVEC_BANNER_WIDTH, or DefaultWidth.
func Width() int {
	return envutil.Int("SORTEDVEC_BANNER_WIDTH", envutil.Default(DefaultWidth)).ValueOrElse(DefaultWidth)
}

// Suppressed reports whether SORTEDVEC_NO_BANNER asks for plain output.
func Suppressed() bool {
	return envutil.Bool("SORTEDVEC_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// Divider returns a horizontal rule of the given width, ending in a newline.
func Divider(width int) string {
	if width < dividerPadding {
		return "\n"
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-dividerPadding) + dividerRight + "\n"
}

// Banner draws a box of the given width around s, one box row per line of s.
// Lines that do not fit are truncated with an ellipsis. An unknown alignment
// or a width too small for the box yields "".
func Banner(s string, width int, alignment int) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	inner := width - bannerPadding

	if inner <= 0 || alignment < AlignLeft || alignment > AlignRight {
		return ""
	}

	parts := make([]string, 0, len(lines)+2) //nolint:mnd
	parts = append(parts, boxTopLeft+strings.Repeat(boxTop, inner)+boxTopRight)

	for _, line := range lines {
		parts = append(parts, boxSide+pad(line, inner, alignment)+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

// Heading renders title as a centered banner of the configured width, or as
// a plain line when banners are suppressed.
func Heading(title string) string {
	if Suppressed() {
		return title + "\n"
	}

	return Banner(title, Width(), AlignCenter) + "\n"
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) string {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func pad(text string, width int, alignment int) string {
	length := countGraphic(text)
	if length > width {
		text = truncateGraphic(text, width-1) + ellipsis
		length = width
	}

	diff := width - length

	switch alignment {
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return fmt.Sprintf("%s%s%s", strings.Repeat(" ", left), text, strings.Repeat(" ", diff-left))
	case AlignRight:
		return strings.Repeat(" ", diff) + text
	default:
		return text + strings.Repeat(" ", diff)
	}
}

// Package components provides ANSI-aware text helpers shared by the
// gallery and detail renderers.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells. ANSI
// escape sequences are ignored; wide characters count as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, preserving ANSI
// sequences before the cut point.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to at most maxWidth visible cells, appending
// tail (e.g. "…") when a cut happens. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// TruncateRunes cuts s to its first max runes, appending tail when a
// cut happens. Unlike Truncate this counts raw characters, not display
// cells, and is not word-aware; it is the card description rule (first
// 80 characters + ellipsis).
func TruncateRunes(s string, max int, tail string) string {
	if max <= 0 {
		return tail
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + tail
}

// PadRight pads s with trailing spaces to exactly width visible cells.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadLeft pads s with leading spaces to exactly width visible cells.
func PadLeft(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return strings.Repeat(" ", width-vis) + s
}

// Wrap word-wraps s at width, respecting ANSI sequences and wide
// characters. Returns the wrapped lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

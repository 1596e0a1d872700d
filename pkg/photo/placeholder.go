package photo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/K4-001/NutriPinoy/pkg/theme"
)

// Placeholder returns a styled block standing in for a photo that
// could not render: missing file, bad decode, or graphics disabled.
// The block fills the same cell budget so the layout stays stable.
func Placeholder(label string, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	pal := theme.Current

	inner := "🍽"
	if label != "" {
		inner = "🍽  " + label
	}
	if lipgloss.Width(inner) > width-2 {
		inner = "🍽"
	}

	// Center the glyph line vertically within the block.
	lines := make([]string, height-2)
	lines[(height-2)/2] = inner

	style := lipgloss.NewStyle().
		Width(width-2).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(pal.Dim)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.Border))

	return style.Render(strings.Join(lines, "\n"))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/K4-001/NutriPinoy/pkg/assets"
	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/theme"
)

const detailPhotoRows = 12

// renderDetailContent builds the scrollable body of the detail pane:
// photo, description, ingredients, the nutrition table in catalog
// order, and health risks when present.
func (m Model) renderDetailContent(key string, d *catalog.Dish) string {
	pal := theme.Current
	width := m.detail.Width
	if width < 20 {
		width = 20
	}

	section := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Accent)).
		Bold(true)
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Foreground)).
		Width(width)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Dim))

	var parts []string

	parts = append(parts, m.renderDetailPhoto(key, d.Name, width))
	parts = append(parts, body.Render(d.Description))
	parts = append(parts, "")

	if len(d.Ingredients) > 0 {
		parts = append(parts, section.Render("Ingredients"))
		for _, ing := range d.Ingredients {
			parts = append(parts, body.Render("  • "+ing))
		}
		parts = append(parts, "")
	}

	if len(d.Nutrition) > 0 {
		parts = append(parts, section.Render("Nutrition"))
		nameW := 0
		for _, f := range d.Nutrition {
			if len(f.Nutrient) > nameW {
				nameW = len(f.Nutrient)
			}
		}
		for _, f := range d.Nutrition {
			line := fmt.Sprintf("  %-*s  %s", nameW, f.Nutrient, f.Value)
			parts = append(parts, body.Render(line))
		}
		parts = append(parts, "")
	}

	if len(d.Risks) > 0 {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Warn))
		parts = append(parts, section.Render("Health notes"))
		for _, r := range d.Risks {
			parts = append(parts, warn.Render("  ! "+r))
		}
		parts = append(parts, "")
	}

	parts = append(parts, dim.Render("esc back · ↑/↓ scroll"))
	return strings.Join(parts, "\n")
}

func (m Model) renderDetailPhoto(key, name string, width int) string {
	path := assets.Resolve(key, m.cfg.Photo.ImageDir)
	if m.photos != nil && m.photos.Enabled() {
		out, err := m.photos.RenderFile(path, width, detailPhotoRows)
		if err == nil {
			return out
		}
		m.logger.Debug("detail photo render failed, using placeholder", "key", key, "error", err)
	}
	return placeholderBlock(name, width, detailPhotoRows)
}

func (m Model) viewDetail() string {
	pal := theme.Current

	d, ok := m.collection.Get(m.detailKey)
	if !ok {
		// The pane key should always resolve; treat a miss as closed.
		return m.viewGallery()
	}

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Title)).
		Bold(true).
		Render(d.Name)

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", renderBadge(d))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.BorderFocus)).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left, header, frame.Render(m.detail.View()))
}

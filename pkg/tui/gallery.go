package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/K4-001/NutriPinoy/pkg/assets"
	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/components"
	"github.com/K4-001/NutriPinoy/pkg/nutrition"
	"github.com/K4-001/NutriPinoy/pkg/photo"
	"github.com/K4-001/NutriPinoy/pkg/theme"
)

const (
	cardWidth       = 34          // outer width including border
	cardPhotoRows   = 7           // cell rows reserved for the photo
	descriptionMax  = 80          // card description truncation, in runes
	descriptionTail = "..."
)

func cardZoneID(key string) string {
	return "card:" + key
}

// galleryColumns derives how many cards fit per row at the current
// terminal width. Always at least one.
func (m Model) galleryColumns() int {
	cols := m.width / (cardWidth + 1)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m Model) viewGallery() string {
	pal := theme.Current
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if len(m.view) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Dim)).
			Padding(1, 2).
			Render("No dishes match. Adjust the search or press c to change category.")
		b.WriteString(empty)
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderCards())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	pal := theme.Current
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Title)).
		Bold(true).
		Render("NutriPinoy")

	count := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dim)).
		Render(fmt.Sprintf("%d/%d dishes", len(m.view), m.collection.Len()))

	cat := m.renderCategoryPill()

	var search string
	if m.searching {
		search = m.search.View()
	} else if q := m.search.Value(); q != "" {
		search = lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.SearchPrompt)).
			Render("/" + q)
	}

	parts := []string{title, count, cat}
	if search != "" {
		parts = append(parts, search)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "  "))
}

// renderCategoryPill shows the active category filter. "all" renders
// dim; a live filter uses its badge color so it is obvious the gallery
// is narrowed.
func (m Model) renderCategoryPill() string {
	pal := theme.Current
	if m.category == nutrition.CategoryAll {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(pal.Dim)).
			Render("cal:all")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.BadgeText)).
		Background(lipgloss.Color(pal.BadgeColor(string(m.category)))).
		Padding(0, 1).
		Render("cal:" + string(m.category))
}

func (m Model) renderCards() string {
	cols := m.galleryColumns()

	var rows []string
	var row []string
	for i, key := range m.view {
		d, ok := m.collection.Get(key)
		if !ok {
			continue
		}
		row = append(row, m.renderCard(key, d, i == m.selected))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCard(key string, d *catalog.Dish, selected bool) string {
	pal := theme.Current
	// Border takes 2 cells, padding another 2; text lives in what is left.
	contentW := cardWidth - 4

	borderColor := pal.Border
	if selected {
		borderColor = pal.BorderFocus
	}

	var sections []string

	sections = append(sections, m.renderCardPhoto(key, d.Name, contentW))

	name := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Title)).
		Bold(true).
		Render(components.TruncateWithTail(d.Name, contentW, "…"))
	sections = append(sections, name)

	desc := components.TruncateRunes(d.Description, descriptionMax, descriptionTail)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Foreground)).
		Width(contentW)
	sections = append(sections, descStyle.Render(desc))

	sections = append(sections, renderBadge(d))

	card := lipgloss.NewStyle().
		Width(cardWidth - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Render(strings.Join(sections, "\n"))

	return zone.Mark(cardZoneID(key), card)
}

// renderCardPhoto renders the dish photo or, when the image cannot be
// produced for any reason, the placeholder block. Failures are logged
// once per render but never break the card.
func (m Model) renderCardPhoto(key, name string, width int) string {
	path := assets.Resolve(key, m.cfg.Photo.ImageDir)
	if m.photos != nil && m.photos.Enabled() {
		out, err := m.photos.RenderFile(path, width, cardPhotoRows)
		if err == nil {
			return out
		}
		m.logger.Debug("photo render failed, using placeholder", "key", key, "error", err)
	}
	return placeholderBlock(name, width, cardPhotoRows)
}

// placeholderBlock delegates to the photo package's styled stand-in.
// Indirected so tests can pin the output.
var placeholderBlock = photo.Placeholder

func renderBadge(d *catalog.Dish) string {
	pal := theme.Current
	cat := nutrition.DishCategory(d)
	kcal := nutrition.CalorieValue(d)

	label := fmt.Sprintf(" %s · %d kcal ", cat, kcal)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.BadgeText)).
		Background(lipgloss.Color(pal.BadgeColor(string(cat)))).
		Render(label)
}

func (m Model) renderStatusBar() string {
	pal := theme.Current
	hints := helpText(m.searching)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.HelpDesc)).
		Render(components.PadRight(components.Truncate(hints, m.width), m.width))
}

func (m Model) viewLoading() string {
	pal := theme.Current
	msg := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Loading)).
		Render(fmt.Sprintf("%s Loading dishes from %s...", m.spin.View(), m.src.Name()))
	return lipgloss.NewStyle().Padding(1, 2).Render(msg)
}

func (m Model) viewFailed() string {
	pal := theme.Current
	head := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Error)).
		Bold(true).
		Render("Could not load the dish catalog")

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Foreground)).
		Width(max(20, m.width-8)).
		Render(m.loadErr.Error())

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.Dim)).
		Render("Press q to quit.")

	pane := lipgloss.JoinVertical(lipgloss.Left, head, "", body, "", hint)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.Error)).
		Padding(1, 2).
		Render(pane)
}

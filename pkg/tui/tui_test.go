package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/config"
	"github.com/K4-001/NutriPinoy/pkg/filter"
	"github.com/K4-001/NutriPinoy/pkg/nutrition"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

// stubSource satisfies source.Source without any I/O.
type stubSource struct {
	collection *catalog.Collection
	err        error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context) (*catalog.Collection, error) {
	return s.collection, s.err
}

func testCatalog(t *testing.T) *catalog.Collection {
	t.Helper()
	c := catalog.New()
	add := func(key, name, desc, kcal string) {
		err := c.Add(key, &catalog.Dish{
			Name:        name,
			Description: desc,
			Nutrition: []catalog.NutritionFact{
				{Nutrient: "Calories", Value: kcal},
			},
		})
		if err != nil {
			t.Fatalf("add %s: %v", key, err)
		}
	}
	add("adobo", "Chicken Adobo", "Chicken braised in soy sauce, vinegar, and garlic.", "350 kcal")
	add("sinigang", "Sinigang na Baboy", "Sour tamarind pork soup with vegetables.", "250 kcal")
	add("lechon-kawali", "Lechon Kawali", "Crispy deep-fried pork belly.", "470 kcal")
	add("tinola", "Tinolang Manok", "Ginger chicken soup with green papaya.", "220 kcal")
	return c
}

func newTestModel(t *testing.T, src *stubSource) Model {
	t.Helper()
	cfg := *config.DefaultConfig()
	cfg.Photo.Enabled = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := New(cfg, src, nil, logger)
	m.width = 120
	m.height = 40
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func readyModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, &stubSource{collection: testCatalog(t)})
	return step(t, m, catalogLoadedMsg{collection: testCatalog(t)})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestLoadFailureIsTerminal(t *testing.T) {
	m := newTestModel(t, &stubSource{err: errors.New("endpoint down")})

	m = step(t, m, catalogLoadedMsg{err: errors.New("endpoint down")})
	if !m.Failed() {
		t.Fatal("model should be in failed state")
	}

	// No key resurrects a failed load.
	for _, k := range []string{"r", "c", "/"} {
		m = step(t, m, keyMsg(k))
		if !m.Failed() {
			t.Fatalf("key %q moved model out of failed state", k)
		}
	}

	out := m.View()
	if !strings.Contains(out, "endpoint down") {
		t.Error("failed view should include the load error")
	}
	if !strings.Contains(out, "q to quit") {
		t.Error("failed view should tell the user how to exit")
	}
}

func TestLoadSuccessShowsFullGallery(t *testing.T) {
	m := readyModel(t)

	if !m.Ready() {
		t.Fatal("model should be ready")
	}
	keys := m.ViewKeys()
	want := []string{"adobo", "sinigang", "lechon-kawali", "tinola"}
	if len(keys) != len(want) {
		t.Fatalf("view has %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("view[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	out := m.View()
	for _, name := range []string{"Chicken Adobo", "Sinigang na Baboy", "Lechon Kawali", "Tinolang Manok"} {
		if !strings.Contains(out, name) {
			t.Errorf("gallery missing dish %q", name)
		}
	}
}

func TestEmptyViewShowsEmptyState(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("/"))
	for _, r := range "zzz" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m = step(t, m, filter.FireMsg{Gen: m.deb.Gen()})

	if len(m.ViewKeys()) != 0 {
		t.Fatalf("view should be empty, got %v", m.ViewKeys())
	}
	if !strings.Contains(m.View(), "No dishes match") {
		t.Error("empty view should render the empty-state indicator")
	}
}

func TestStaleDebounceFireIsDropped(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("/"))
	for _, r := range "sini" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	gen := m.deb.Gen()
	if gen != 4 {
		t.Fatalf("generation = %d after 4 keystrokes, want 4", gen)
	}

	// Timers armed by the first three keystrokes arrive stale and must
	// not refilter.
	for stale := 1; stale < gen; stale++ {
		m = step(t, m, filter.FireMsg{Gen: stale})
		if len(m.ViewKeys()) != 4 {
			t.Fatalf("stale generation %d refiltered the view", stale)
		}
	}

	// The live generation recomputes.
	m = step(t, m, filter.FireMsg{Gen: gen})
	keys := m.ViewKeys()
	if len(keys) != 1 || keys[0] != "sinigang" {
		t.Errorf("view after current fire = %v, want [sinigang]", keys)
	}
}

func TestCategoryCycleIsImmediate(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("c"))
	if m.Category() != nutrition.CategoryLow {
		t.Fatalf("category = %q, want low", m.Category())
	}
	keys := m.ViewKeys()
	// low = under 300: sinigang (250) and tinola (220), catalog order.
	if len(keys) != 2 || keys[0] != "sinigang" || keys[1] != "tinola" {
		t.Errorf("low-category view = %v", keys)
	}

	m = step(t, m, keyMsg("c"))
	if m.Category() != nutrition.CategoryMedium {
		t.Fatalf("category = %q, want medium", m.Category())
	}
	keys = m.ViewKeys()
	if len(keys) != 1 || keys[0] != "adobo" {
		t.Errorf("medium-category view = %v", keys)
	}
}

func TestSearchAndCategoryCompose(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("/"))
	for _, r := range "chicken" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m = step(t, m, filter.FireMsg{Gen: m.deb.Gen()})
	m = step(t, m, keyMsg("esc")) // leave search mode, clearing the query

	if len(m.ViewKeys()) != 4 {
		t.Fatalf("esc should clear the query, view = %v", m.ViewKeys())
	}
}

func TestSearchEnterKeepsQuery(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("/"))
	for _, r := range "chicken" {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m = step(t, m, keyMsg("enter"))

	if m.Searching() {
		t.Error("enter should leave search mode")
	}
	keys := m.ViewKeys()
	// "chicken" appears in adobo's and tinola's text.
	if len(keys) != 2 || keys[0] != "adobo" || keys[1] != "tinola" {
		t.Errorf("view = %v, want [adobo tinola]", keys)
	}
}

func TestDishSelectionOpensDetail(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, dishSelectedMsg{key: "lechon-kawali"})
	if m.DetailKey() != "lechon-kawali" {
		t.Fatalf("DetailKey = %q", m.DetailKey())
	}
	if m.Selected() != 2 {
		t.Errorf("selection not synced to opened dish, got %d", m.Selected())
	}

	out := m.View()
	if !strings.Contains(out, "Lechon Kawali") {
		t.Error("detail view missing dish name")
	}
	if !strings.Contains(out, "470") {
		t.Error("detail view missing calorie value")
	}

	m = step(t, m, keyMsg("esc"))
	if m.DetailKey() != "" {
		t.Error("esc should close the detail pane")
	}
}

func TestUnknownSelectionIsNonFatal(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, dishSelectedMsg{key: "balut"})
	if m.DetailKey() != "" {
		t.Error("unknown key must not open the detail pane")
	}
	if !m.Ready() {
		t.Error("unknown key must not change state")
	}
}

func TestGallerySelectionMovement(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("l"))
	if m.Selected() != 1 {
		t.Fatalf("Selected = %d after right, want 1", m.Selected())
	}
	m = step(t, m, keyMsg("h"))
	if m.Selected() != 0 {
		t.Fatalf("Selected = %d after left, want 0", m.Selected())
	}
	// Moving past the start stays put.
	m = step(t, m, keyMsg("h"))
	if m.Selected() != 0 {
		t.Errorf("Selected = %d, movement should clamp", m.Selected())
	}
}

func TestEnterOpensSelectedCard(t *testing.T) {
	m := readyModel(t)

	m = step(t, m, keyMsg("l"))
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	if cmd != nil {
		if msg := cmd(); msg != nil {
			m = step(t, m, msg)
		}
	}
	if m.DetailKey() != "sinigang" {
		t.Errorf("DetailKey = %q, want sinigang", m.DetailKey())
	}
}

// Package tui implements the interactive dish gallery: a searchable,
// filterable card grid with a per-dish nutrition detail pane. The model
// follows the Elm architecture; all state transitions happen in Update.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/config"
	"github.com/K4-001/NutriPinoy/pkg/filter"
	"github.com/K4-001/NutriPinoy/pkg/nutrition"
	"github.com/K4-001/NutriPinoy/pkg/photo"
	"github.com/K4-001/NutriPinoy/pkg/source"
)

// state is the top-level application phase. Loading resolves exactly
// once, into ready or failed; both are terminal for the load itself.
type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

// Model is the root bubbletea model.
type Model struct {
	cfg    config.Config
	logger *slog.Logger
	src    source.Source
	photos *photo.Renderer

	st      state
	loadErr error

	collection *catalog.Collection
	view       []string // filtered keys, catalog order
	selected   int      // index into view
	detailKey  string   // non-empty while the detail pane is open

	search    textinput.Model
	searching bool
	category  nutrition.Category
	deb       *filter.Debouncer

	spin   spinner.Model
	detail viewport.Model

	width  int
	height int
}

// New assembles the root model. The catalog load starts from Init.
func New(cfg config.Config, src source.Source, photos *photo.Renderer, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "search dishes"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		cfg:      cfg,
		logger:   logger,
		src:      src,
		photos:   photos,
		st:       stateLoading,
		search:   ti,
		category: nutrition.CategoryAll,
		deb:      filter.NewDebouncer(cfg.Filter.SearchDebounce.Duration),
		spin:     sp,
		detail:   viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCatalog())
}

// loadCatalog fetches the catalog off the event loop. The fetch runs
// once; its outcome is final.
func (m Model) loadCatalog() tea.Cmd {
	src := m.src
	timeout := m.cfg.Source.FetchTimeout.Duration
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		c, err := src.Fetch(ctx)
		return catalogLoadedMsg{collection: c, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 6
		return m, nil

	case spinner.TickMsg:
		if m.st != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		return m.onCatalogLoaded(msg)

	case filter.FireMsg:
		if !m.deb.Current(msg) {
			// A newer keystroke superseded this timer.
			return m, nil
		}
		m.refilter()
		return m, nil

	case dishSelectedMsg:
		return m.onDishSelected(msg.key)

	case tea.MouseMsg:
		return m.onMouse(msg)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.st = stateFailed
		m.loadErr = msg.err
		m.logger.Error("catalog load failed", "source", m.src.Name(), "error", msg.err)
		return m, nil
	}

	m.st = stateReady
	m.collection = msg.collection
	m.refilter()
	m.logger.Info("catalog loaded", "source", m.src.Name(), "dishes", m.collection.Len())
	return m, nil
}

// refilter recomputes the visible keys from the live query text and
// category, clamping the selection into the new view.
func (m *Model) refilter() {
	if m.collection == nil {
		m.view = nil
		return
	}
	m.view = filter.Apply(m.collection, m.search.Value(), m.category)
	if m.selected >= len(m.view) {
		m.selected = len(m.view) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) onDishSelected(key string) (tea.Model, tea.Cmd) {
	if m.collection == nil {
		return m, nil
	}
	d, ok := m.collection.Get(key)
	if !ok {
		// A stale click or programming error; log and carry on.
		m.logger.Warn("selected dish not in catalog", "key", key)
		return m, nil
	}

	m.detailKey = key
	m.detail.SetContent(m.renderDetailContent(key, d))
	m.detail.GotoTop()

	// Keep the gallery selection in sync so closing the pane lands on
	// the same card.
	for i, k := range m.view {
		if k == key {
			m.selected = i
			break
		}
	}
	return m, nil
}

func (m Model) onMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.st != stateReady {
		return m, nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.detailKey != "" {
		return m, nil
	}
	for _, key := range m.view {
		if zone.Get(cardZoneID(key)).InBounds(msg) {
			return m.onDishSelected(key)
		}
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits, whatever mode we are in.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.st != stateReady {
		// Loading and failed screens only react to quit keys.
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.searching {
		return m.onSearchKey(msg)
	}
	if m.detailKey != "" {
		return m.onDetailKey(msg)
	}
	return m.onGalleryKey(msg)
}

// onSearchKey routes keystrokes to the search input. Every text change
// re-arms the debouncer; the view refilters only after the quiet
// period.
func (m Model) onSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refilter()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.refilter()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		return m, tea.Batch(cmd, m.deb.Trigger())
	}
	return m, cmd
}

func (m Model) onDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "backspace":
		m.detailKey = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) onGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.galleryColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "c":
		// Category changes skip the debouncer: a single keypress is
		// already a deliberate action.
		m.category = m.category.Next()
		m.refilter()
		return m, nil
	case "enter", " ":
		if len(m.view) > 0 {
			return m.onDishSelected(m.view[m.selected])
		}
		return m, nil
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l", "tab":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-cols)
	case "down", "j":
		m.moveSelection(cols)
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = len(m.view) - 1
		if m.selected < 0 {
			m.selected = 0
		}
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if len(m.view) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 || next >= len(m.view) {
		return
	}
	m.selected = next
}

func (m Model) View() string {
	switch m.st {
	case stateLoading:
		return m.viewLoading()
	case stateFailed:
		return m.viewFailed()
	}

	if m.detailKey != "" {
		return zone.Scan(m.viewDetail())
	}
	return zone.Scan(m.viewGallery())
}

// State accessors used by tests.

func (m Model) Ready() bool          { return m.st == stateReady }
func (m Model) Failed() bool         { return m.st == stateFailed }
func (m Model) LoadErr() error       { return m.loadErr }
func (m Model) ViewKeys() []string   { return m.view }
func (m Model) Selected() int        { return m.selected }
func (m Model) DetailKey() string    { return m.detailKey }
func (m Model) Searching() bool      { return m.searching }
func (m Model) Category() nutrition.Category { return m.category }

// helpText is the key hint line under the gallery.
func helpText(searching bool) string {
	if searching {
		return "enter confirm · esc clear · type to search"
	}
	return "/ search · c category · enter open · q quit"
}

// Package theme holds named color palettes for the viewer. A palette
// covers the panes, the calorie category badges, and the status
// indicators; the TUI reads the active palette on every render.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Palette defines the complete color set for the viewer.
type Palette struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string
	Dim        string // de-emphasized text
	Accent     string // highlights, selected card border

	// Pane colors
	Border      string // unselected card and pane borders
	BorderFocus string // selected card / focused pane border
	Title       string // dish names, pane titles

	// Category badge colors
	BadgeLow    string
	BadgeMedium string
	BadgeHigh   string
	BadgeText   string // badge label foreground

	// Status colors
	Error   string // failed-state pane
	Warn    string
	OK      string
	Loading string // spinner

	// Special
	SearchPrompt string
	HelpKey      string
	HelpDesc     string
}

// BadgeColor returns the badge background for a calorie category name
// ("low", "medium", "high"). Unknown names get the dim color.
func (p Palette) BadgeColor(category string) string {
	switch strings.ToLower(category) {
	case "low":
		return p.BadgeLow
	case "medium":
		return p.BadgeMedium
	case "high":
		return p.BadgeHigh
	default:
		return p.Dim
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Palette{}
)

// Current holds the active palette (set via SetCurrent).
var Current Palette

func init() {
	registerBuiltins()
	Current = defaultPalette()
}

// Get returns a named palette, falling back to the default if not found.
func Get(name string) Palette {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := registry[strings.ToLower(name)]; ok {
		return p
	}
	return registry["default"]
}

// Names returns all available palette names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active palette by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a palette to the registry under its lowercase name.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(p.Name)] = p
}

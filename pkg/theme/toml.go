package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlPalette is the TOML-serializable representation of a Palette.
type tomlPalette struct {
	Name    string      `toml:"name"`
	Base    tomlBase    `toml:"base"`
	Pane    tomlPane    `toml:"pane"`
	Badge   tomlBadge   `toml:"badge"`
	Status  tomlStatus  `toml:"status"`
	Special tomlSpecial `toml:"special"`
}

type tomlBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlPane struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlBadge struct {
	Low    string `toml:"low"`
	Medium string `toml:"medium"`
	High   string `toml:"high"`
	Text   string `toml:"text"`
}

type tomlStatus struct {
	Error   string `toml:"error"`
	Warn    string `toml:"warn"`
	OK      string `toml:"ok"`
	Loading string `toml:"loading"`
}

type tomlSpecial struct {
	SearchPrompt string `toml:"search_prompt"`
	HelpKey      string `toml:"help_key"`
	HelpDesc     string `toml:"help_desc"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML palette definition from raw bytes. Every
// color field must be a #RRGGBB hex string; empty fields fall back to
// the default palette's value so partial definitions work.
func LoadFromTOML(data []byte) (Palette, error) {
	var tp tomlPalette
	if err := toml.Unmarshal(data, &tp); err != nil {
		return Palette{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if tp.Name == "" {
		return Palette{}, fmt.Errorf("theme: palette has no name")
	}

	base := defaultPalette()
	p := Palette{
		Name:         tp.Name,
		Background:   pick(tp.Base.Background, base.Background),
		Foreground:   pick(tp.Base.Foreground, base.Foreground),
		Dim:          pick(tp.Base.Dim, base.Dim),
		Accent:       pick(tp.Base.Accent, base.Accent),
		Border:       pick(tp.Pane.Border, base.Border),
		BorderFocus:  pick(tp.Pane.BorderFocus, base.BorderFocus),
		Title:        pick(tp.Pane.Title, base.Title),
		BadgeLow:     pick(tp.Badge.Low, base.BadgeLow),
		BadgeMedium:  pick(tp.Badge.Medium, base.BadgeMedium),
		BadgeHigh:    pick(tp.Badge.High, base.BadgeHigh),
		BadgeText:    pick(tp.Badge.Text, base.BadgeText),
		Error:        pick(tp.Status.Error, base.Error),
		Warn:         pick(tp.Status.Warn, base.Warn),
		OK:           pick(tp.Status.OK, base.OK),
		Loading:      pick(tp.Status.Loading, base.Loading),
		SearchPrompt: pick(tp.Special.SearchPrompt, base.SearchPrompt),
		HelpKey:      pick(tp.Special.HelpKey, base.HelpKey),
		HelpDesc:     pick(tp.Special.HelpDesc, base.HelpDesc),
	}

	if err := validateColors(p); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// LoadDir registers every *.toml palette under dir. Files that fail to
// parse are skipped and reported in the returned error list.
func LoadDir(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []error{fmt.Errorf("theme: read dir %s: %w", dir, err)}
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: read %s: %w", path, err))
			continue
		}
		p, err := LoadFromTOML(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %s: %w", path, err))
			continue
		}
		Register(p)
	}
	return errs
}

func pick(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func validateColors(p Palette) error {
	fields := map[string]string{
		"base.background": p.Background,
		"base.foreground": p.Foreground,
		"base.dim":        p.Dim,
		"base.accent":     p.Accent,
		"pane.border":     p.Border,
		"badge.low":       p.BadgeLow,
		"badge.medium":    p.BadgeMedium,
		"badge.high":      p.BadgeHigh,
	}
	for name, v := range fields {
		if !hexColorRegex.MatchString(v) {
			return fmt.Errorf("theme: %s: %q is not a #RRGGBB color", name, v)
		}
	}
	return nil
}

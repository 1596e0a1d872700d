package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration for the viewer.
type Config struct {
	General GeneralConfig `toml:"general"`
	Source  SourceConfig  `toml:"source"`
	Filter  FilterConfig  `toml:"filter"`
	Photo   PhotoConfig   `toml:"photo"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds logging and cache locations.
type GeneralConfig struct {
	// LogFile receives slog output. The TUI owns the terminal, so logs
	// never go to stderr while it runs.
	LogFile string `toml:"log_file"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	// CacheDir is the root directory for the on-disk catalog cache.
	CacheDir string `toml:"cache_dir"`
}

// SourceConfig selects and parameterizes the catalog backend.
type SourceConfig struct {
	// UseRemote selects the HTTP backend over the local file.
	UseRemote bool `toml:"use_remote"`

	// RemoteEndpoint is the catalog URL queried when UseRemote is set.
	RemoteEndpoint string `toml:"remote_endpoint"`

	// LocalPath is the catalog file read when UseRemote is unset.
	// Extension selects the format: .json, .yaml, or .yml.
	LocalPath string `toml:"local_path"`

	// FetchTimeout bounds the startup fetch. Zero means no timeout;
	// a hung request then leaves the viewer loading indefinitely.
	FetchTimeout Duration `toml:"fetch_timeout"`

	// CacheEnabled wraps the remote backend with the disk cache so a
	// warm cache can serve the catalog when the endpoint is down.
	CacheEnabled bool `toml:"cache_enabled"`

	// CacheTTL is how long a cached remote catalog stays servable.
	CacheTTL Duration `toml:"cache_ttl"`
}

// FilterConfig tunes the search behaviour.
type FilterConfig struct {
	// SearchDebounce is the quiet period after the last keystroke
	// before the gallery refilters. Category changes are immediate.
	SearchDebounce Duration `toml:"search_debounce"`
}

// PhotoConfig controls dish photo rendering.
type PhotoConfig struct {
	// Enabled turns photo rendering off entirely when false; cards and
	// the detail pane then always show the placeholder block.
	Enabled bool `toml:"enabled"`

	// Protocol overrides graphics protocol detection. One of "auto",
	// "kitty", "iterm2", "sixel", "halfblocks", "none".
	Protocol string `toml:"protocol"`

	// ImageDir is prepended to relative asset paths.
	ImageDir string `toml:"image_dir"`

	// MaxCacheEntries bounds the in-process rendered-photo cache.
	MaxCacheEntries int `toml:"max_cache_entries"`
}

// ThemeConfig selects the color palette.
type ThemeConfig struct {
	// Name is a built-in palette name or one registered from Dir.
	Name string `toml:"name"`

	// Dir is scanned for *.toml palette definitions at startup.
	Dir string `toml:"dir"`
}

// knownProtocols are the accepted photo.protocol values.
var knownProtocols = map[string]bool{
	"": true, "auto": true, "kitty": true, "iterm2": true,
	"sixel": true, "halfblocks": true, "none": true,
}

// Validate checks cross-field constraints the TOML decoder cannot.
func (c *Config) Validate() error {
	if c.Source.UseRemote {
		if c.Source.RemoteEndpoint == "" {
			return fmt.Errorf("source.use_remote is set but source.remote_endpoint is empty")
		}
		if !strings.HasPrefix(c.Source.RemoteEndpoint, "http://") &&
			!strings.HasPrefix(c.Source.RemoteEndpoint, "https://") {
			return fmt.Errorf("source.remote_endpoint %q is not an http(s) URL", c.Source.RemoteEndpoint)
		}
	} else if c.Source.LocalPath == "" {
		return fmt.Errorf("source.local_path is empty and source.use_remote is unset")
	}

	if !knownProtocols[c.Photo.Protocol] {
		return fmt.Errorf("photo.protocol %q is not recognized", c.Photo.Protocol)
	}

	switch c.General.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("general.log_level %q is not recognized", c.General.LogLevel)
	}

	return nil
}

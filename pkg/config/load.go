package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/nutripinoy/config.toml
//  2. ~/.config/nutripinoy/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration. The local catalog
// defaults to the data file shipped with the repository, resolved
// relative to the working directory.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	cacheDir := filepath.Join(xdgCacheHome(home), "nutripinoy")

	return &Config{
		General: GeneralConfig{
			LogFile:  filepath.Join(cacheDir, "nutripinoy.log"),
			LogLevel: "info",
			CacheDir: cacheDir,
		},
		Source: SourceConfig{
			UseRemote:    false,
			LocalPath:    filepath.Join("data", "dishes.json"),
			FetchTimeout: Duration{0},
			CacheEnabled: true,
			CacheTTL:     Duration{6 * time.Hour},
		},
		Filter: FilterConfig{
			SearchDebounce: Duration{300 * time.Millisecond},
		},
		Photo: PhotoConfig{
			Enabled:         true,
			Protocol:        "auto",
			MaxCacheEntries: 64,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NUTRIPINOY_ENDPOINT"); v != "" {
		cfg.Source.RemoteEndpoint = v
		cfg.Source.UseRemote = true
	}
	if v := os.Getenv("NUTRIPINOY_CATALOG"); v != "" {
		cfg.Source.LocalPath = v
	}
	if v := os.Getenv("NUTRIPINOY_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("NUTRIPINOY_PROTOCOL"); v != "" {
		cfg.Photo.Protocol = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "nutripinoy", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "nutripinoy", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}

// nutripinoy is an interactive terminal viewer for a Filipino dish
// catalog.
//
// It loads dish records from a local file or a remote endpoint, shows
// them as a searchable, filterable card gallery with photos rendered
// through the best graphics protocol the terminal supports, and opens
// a per-dish nutrition pane on selection.
//
// Usage:
//
//	nutripinoy [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: XDG search)
//	-local string     Load the catalog from this file (.json/.yaml)
//	-remote string    Load the catalog from this HTTP(S) endpoint
//	-theme string     Color palette name
//	-protocol string  Graphics protocol override (auto|kitty|iterm2|sixel|halfblocks|none)
//	-no-photos        Disable photo rendering entirely
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/K4-001/NutriPinoy/pkg/config"
	"github.com/K4-001/NutriPinoy/pkg/photo"
	"github.com/K4-001/NutriPinoy/pkg/source"
	"github.com/K4-001/NutriPinoy/pkg/terminal"
	"github.com/K4-001/NutriPinoy/pkg/theme"
	"github.com/K4-001/NutriPinoy/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		localPath   = flag.String("local", "", "Load the catalog from this file (.json/.yaml)")
		remoteURL   = flag.String("remote", "", "Load the catalog from this HTTP(S) endpoint")
		themeName   = flag.String("theme", "", "Color palette name")
		protocol    = flag.String("protocol", "", "Graphics protocol override (auto|kitty|iterm2|sixel|halfblocks|none)")
		noPhotos    = flag.Bool("no-photos", false, "Disable photo rendering entirely")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("nutripinoy %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration, then let flags win over file and environment.
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *localPath != "" {
		cfg.Source.UseRemote = false
		cfg.Source.LocalPath = *localPath
	}
	if *remoteURL != "" {
		cfg.Source.UseRemote = true
		cfg.Source.RemoteEndpoint = *remoteURL
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *protocol != "" {
		cfg.Photo.Protocol = *protocol
	}
	if *noPhotos {
		cfg.Photo.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so slog output goes to the log file
	// only. Fatal setup errors before the TUI starts still hit stderr.
	logLevel := slog.LevelInfo
	switch cfg.General.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	if *verbose {
		logLevel = slog.LevelDebug
	}
	if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Themes: register user palettes, then activate the configured one.
	if cfg.Theme.Dir != "" {
		for _, loadErr := range theme.LoadDir(cfg.Theme.Dir) {
			logger.Warn("theme load problem", "error", loadErr)
		}
	}
	theme.SetCurrent(cfg.Theme.Name)

	caps := terminal.Detect()
	photos := photo.NewRenderer(caps, cfg.Photo)
	logger.Info("terminal detected",
		"tty", caps.TTY,
		"protocol", photos.Protocol().String(),
		"size", fmt.Sprintf("%dx%d", caps.Size.Cols, caps.Size.Rows),
	)

	src, err := source.New(cfg.Source, cfg.General.CacheDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up catalog source: %v\n", err)
		os.Exit(1)
	}
	logger.Info("catalog source selected", "source", src.Name())

	// Mouse support needs zone tracking initialized before any Mark call.
	zone.NewGlobal()
	defer zone.Close()

	m := tui.New(*cfg, src, photos, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "nutripinoy: %v\n", err)
		os.Exit(1)
	}
}

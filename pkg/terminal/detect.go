// Package terminal detects the capabilities the photo renderer and the
// TUI need: whether stdout is a TTY, the color profile, the graphics
// protocol, and the screen dimensions. Detection is environment-only
// (no query sequences), so it costs nothing at startup.
package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// GraphicsProtocol selects how dish photos are drawn.
type GraphicsProtocol int

const (
	// ProtocolNone disables photo rendering; the placeholder block is
	// always used.
	ProtocolNone GraphicsProtocol = iota
	// ProtocolHalfblocks draws photos with U+2580 half blocks and
	// 24-bit color. Works on any truecolor terminal.
	ProtocolHalfblocks
	// ProtocolKitty uses the Kitty graphics protocol.
	ProtocolKitty
	// ProtocolITerm2 uses the iTerm2 inline images protocol.
	ProtocolITerm2
	// ProtocolSixel uses Sixel graphics.
	ProtocolSixel
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolHalfblocks: "halfblocks",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
}

// String returns the configuration name of the protocol.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "none"
}

// Capabilities is the detection result consumed by pkg/photo and main.
type Capabilities struct {
	TTY      bool
	Profile  termenv.Profile
	Protocol GraphicsProtocol
	Size     Size
}

// Detect inspects the environment and returns the terminal's
// capabilities. A non-TTY stdout yields ProtocolNone regardless of the
// advertised terminal.
func Detect() Capabilities {
	caps := Capabilities{
		TTY:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		Size: GetSize(),
	}
	if !caps.TTY {
		return caps
	}

	caps.Profile = termenv.ColorProfile()
	caps.Protocol = detectProtocol(caps.Profile)
	return caps
}

// SelectProtocol applies a configuration override on top of detection.
// "auto" or "" keeps the detected protocol.
func SelectProtocol(detected GraphicsProtocol, override string) GraphicsProtocol {
	switch strings.ToLower(override) {
	case "", "auto":
		return detected
	case "kitty":
		return ProtocolKitty
	case "iterm2":
		return ProtocolITerm2
	case "sixel":
		return ProtocolSixel
	case "halfblocks":
		return ProtocolHalfblocks
	default:
		return ProtocolNone
	}
}

// detectProtocol picks a graphics protocol from TERM/TERM_PROGRAM.
func detectProtocol(profile termenv.Profile) GraphicsProtocol {
	term := strings.ToLower(os.Getenv("TERM"))
	prog := strings.ToLower(os.Getenv("TERM_PROGRAM"))

	switch {
	case strings.Contains(term, "kitty"), strings.Contains(term, "ghostty"),
		prog == "ghostty", prog == "wezterm":
		return ProtocolKitty
	case prog == "iterm.app":
		return ProtocolITerm2
	case strings.Contains(term, "sixel"), strings.Contains(term, "mlterm"):
		return ProtocolSixel
	}

	if profile == termenv.TrueColor {
		return ProtocolHalfblocks
	}
	return ProtocolNone
}

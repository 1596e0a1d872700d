package terminal

import (
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size holds terminal dimensions in character cells and, where the
// terminal reports them, pixels. Cell pixel dimensions drive photo
// resizing; zero means unknown.
type Size struct {
	Cols   int
	Rows   int
	PixelW int
	PixelH int
	CellW  int
	CellH  int
}

// GetSize returns the current terminal dimensions. Strategies in order:
//  1. TIOCGWINSZ ioctl on stdout, then stderr (cells and pixels)
//  2. x/term GetSize on stdout (cells only)
//  3. COLUMNS/LINES environment variables
//  4. 80x24 fallback
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := sizeFromIoctl(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	if w, h, err := xterm.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return sizeFromEnv()
}

func sizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}

	s := Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}
	if s.Cols > 0 && s.PixelW > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.Rows > 0 && s.PixelH > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

func sizeFromEnv() Size {
	s := Size{Cols: 80, Rows: 24}
	if v, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && v > 0 {
		s.Cols = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINES")); err == nil && v > 0 {
		s.Rows = v
	}
	return s
}

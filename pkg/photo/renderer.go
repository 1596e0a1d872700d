package photo

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	"github.com/K4-001/NutriPinoy/pkg/config"
	"github.com/K4-001/NutriPinoy/pkg/terminal"
)

// Renderer turns image files into terminal escape strings. Protocol
// selection happens once at construction: the config override wins,
// otherwise the detected capability is used.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	caps     terminal.Capabilities
	cache    *renderCache
}

// NewRenderer builds a Renderer from detected capabilities and photo
// configuration. A disabled config pins the protocol to none.
func NewRenderer(caps terminal.Capabilities, cfg config.PhotoConfig) *Renderer {
	proto := terminal.SelectProtocol(caps.Protocol, cfg.Protocol)
	if !cfg.Enabled {
		proto = terminal.ProtocolNone
	}
	return &Renderer{
		protocol: proto,
		caps:     caps,
		cache:    newRenderCache(cfg.MaxCacheEntries),
	}
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Enabled reports whether photos render at all.
func (r *Renderer) Enabled() bool {
	return r.protocol != terminal.ProtocolNone
}

// Stats returns render cache statistics.
func (r *Renderer) Stats() CacheStats {
	return r.cache.stats()
}

// Invalidate drops all cached renders, e.g. after a palette change.
func (r *Renderer) Invalidate() {
	r.cache.invalidate()
}

// RenderFile renders the image at path into a block of at most
// width x height cells. Results are memoized by path and dimensions;
// the caller handles errors by substituting the placeholder.
func (r *Renderer) RenderFile(path string, width, height int) (string, error) {
	if r.protocol == terminal.ProtocolNone {
		return "", fmt.Errorf("photo: rendering disabled")
	}

	key := cacheKey{Path: path, Width: width, Height: height, Protocol: r.protocol.String()}
	if cached, ok := r.cache.get(key); ok {
		return cached, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("photo: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("photo: decode %s: %w", path, err)
	}

	rendered, err := r.Render(img, width, height)
	if err != nil {
		return "", err
	}
	r.cache.put(key, rendered)
	return rendered, nil
}

// Render scales an already-decoded image to the cell budget and encodes
// it with the active protocol. Not cached; prefer RenderFile.
func (r *Renderer) Render(img image.Image, width, height int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("photo: nil image")
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("photo: invalid cell budget %dx%d", width, height)
	}

	resized := r.fitToCells(img, width, height)

	switch r.protocol {
	case terminal.ProtocolKitty:
		return renderTermimg(resized, termimg.Kitty, width, height)
	case terminal.ProtocolITerm2:
		return renderTermimg(resized, termimg.ITerm2, width, height)
	case terminal.ProtocolSixel:
		return renderTermimg(resized, termimg.Sixel, width, height)
	case terminal.ProtocolHalfblocks:
		return renderHalfblocks(resized), nil
	default:
		return "", fmt.Errorf("photo: rendering disabled")
	}
}

// fitToCells downscales img to fit the pixel area implied by the cell
// budget, preserving aspect ratio. Images that already fit pass
// through; nothing is ever upscaled.
func (r *Renderer) fitToCells(img image.Image, widthCells, heightCells int) image.Image {
	cellW := r.caps.Size.CellW
	cellH := r.caps.Size.CellH
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}

	maxW := widthCells * cellW
	maxH := heightCells * cellH

	bounds := img.Bounds()
	if bounds.Dx() <= maxW && bounds.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// renderTermimg delegates Kitty, iTerm2, and Sixel encoding to go-termimg.
func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("photo: termimg wrapper creation failed")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks encodes the image with U+2580 upper half blocks and
// 24-bit color: each cell shows two vertical pixels, top as foreground
// and bottom as background. Works on any truecolor terminal.
func renderHalfblocks(img image.Image) string {
	nrgba := toNRGBA(img)
	bounds := nrgba.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(w * (h/2 + 1) * 30)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)

			bottomVisible := y+1 < h
			var bot = top
			if bottomVisible {
				bot = nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && (!bottomVisible || bot.A == 0):
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case !bottomVisible || bot.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

func toNRGBA(src image.Image) *image.NRGBA {
	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(src)
}

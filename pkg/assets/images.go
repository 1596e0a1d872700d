// Package assets holds the static dish-key to image-path table. The
// table is external asset data, not derived from dish names; unknown
// keys resolve to the placeholder path. A second, independent fallback
// exists in pkg/photo for paths that fail to load at render time.
package assets

import "path/filepath"

// PlaceholderPath is returned for keys absent from the table.
const PlaceholderPath = "assets/images/placeholder.jpg"

// dishImages maps dish keys to their photo files.
var dishImages = map[string]string{
	"adobo":         "assets/images/adobo.jpg",
	"sinigang":      "assets/images/sinigang.jpg",
	"lechon-kawali": "assets/images/lechon-kawali.jpg",
	"kare-kare":     "assets/images/kare-kare.jpg",
	"sisig":         "assets/images/sisig.jpg",
	"lumpia":        "assets/images/lumpia.jpg",
	"pancit-bihon":  "assets/images/pancit-bihon.jpg",
	"tinola":        "assets/images/tinola.jpg",
	"laing":         "assets/images/laing.jpg",
	"bicol-express": "assets/images/bicol-express.jpg",
	"dinuguan":      "assets/images/dinuguan.jpg",
	"halo-halo":     "assets/images/halo-halo.jpg",
	"ensaladang-talong": "assets/images/ensaladang-talong.jpg",
	"arroz-caldo":       "assets/images/arroz-caldo.jpg",
}

// ImagePath resolves a dish key to its photo path. Keys not present in
// the table fall back to PlaceholderPath.
func ImagePath(key string) string {
	if p, ok := dishImages[key]; ok {
		return p
	}
	return PlaceholderPath
}

// Resolve is ImagePath with an optional base directory prepended to
// relative paths.
func Resolve(key, baseDir string) string {
	p := ImagePath(key)
	if baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Known reports whether key has a dedicated (non-placeholder) photo.
func Known(key string) bool {
	_, ok := dishImages[key]
	return ok
}

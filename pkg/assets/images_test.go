package assets

import (
	"path/filepath"
	"testing"
)

func TestImagePathKnownKey(t *testing.T) {
	got := ImagePath("adobo")
	if got != "assets/images/adobo.jpg" {
		t.Errorf("ImagePath(adobo) = %q", got)
	}
	if !Known("adobo") {
		t.Error("Known(adobo) = false")
	}
}

func TestImagePathUnknownKeyFallsBack(t *testing.T) {
	got := ImagePath("nonexistent-key")
	if got != PlaceholderPath {
		t.Errorf("ImagePath(nonexistent-key) = %q, want placeholder %q", got, PlaceholderPath)
	}
	if Known("nonexistent-key") {
		t.Error("Known(nonexistent-key) = true")
	}
}

func TestResolvePrependsBaseDir(t *testing.T) {
	got := Resolve("adobo", "/opt/nutripinoy")
	want := filepath.Join("/opt/nutripinoy", "assets/images/adobo.jpg")
	if got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}

	if got := Resolve("adobo", ""); got != ImagePath("adobo") {
		t.Errorf("Resolve with empty base = %q", got)
	}
}

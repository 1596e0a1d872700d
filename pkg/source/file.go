package source

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
)

// FileSource reads the catalog from a local JSON or YAML file. The
// format is chosen by extension; anything that is not .yaml/.yml is
// treated as JSON.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) (*catalog.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FetchError{URL: s.path, Err: err}
	}
	return decodeByExt(s.path, data)
}

func decodeByExt(path string, data []byte) (*catalog.Collection, error) {
	var (
		c   *catalog.Collection
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = catalog.DecodeYAML(data)
	default:
		c, err = catalog.DecodeJSON(bytes.NewReader(data))
	}
	if err != nil {
		return nil, &FormatError{Resource: path, Err: err}
	}
	// An empty document decodes to an empty collection; the gallery
	// shows its empty state rather than treating that as corruption.
	return c, nil
}

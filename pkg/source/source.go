// Package source loads the dish catalog from a local file or a remote
// endpoint. The active source is picked once from configuration; remote
// fetches can be wrapped with a disk cache so a warm catalog survives
// network failures.
package source

import (
	"context"
	"log/slog"

	"github.com/K4-001/NutriPinoy/pkg/cache"
	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/config"
)

// Source fetches the complete dish catalog. Fetch is called once at
// startup; there is no retry loop above it.
type Source interface {
	// Name identifies the source for logs ("file:data/dishes.json",
	// "remote:https://...").
	Name() string

	// Fetch retrieves and decodes the catalog. Errors are *FetchError
	// or *FormatError depending on where retrieval broke down.
	Fetch(ctx context.Context) (*catalog.Collection, error)
}

// New builds the source selected by cfg: the remote endpoint when
// UseRemote is set, the local file otherwise. Remote sources get the
// disk cache layered on when caching is enabled.
func New(cfg config.SourceConfig, cacheDir string, logger *slog.Logger) (Source, error) {
	if !cfg.UseRemote {
		return NewFileSource(cfg.LocalPath), nil
	}

	remote := NewRemoteSource(cfg.RemoteEndpoint, cfg.FetchTimeout.Duration)
	if !cfg.CacheEnabled {
		return remote, nil
	}

	store, err := cache.NewStore(cacheDir, cfg.CacheTTL.Duration)
	if err != nil {
		// A broken cache dir should not take down startup; fall back
		// to the uncached remote and say so.
		logger.Warn("catalog cache unavailable, fetching uncached",
			"dir", cacheDir, "error", err)
		return remote, nil
	}
	return NewCachedSource(remote, store, cfg.CacheTTL.Duration, logger), nil
}

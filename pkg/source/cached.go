package source

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/K4-001/NutriPinoy/pkg/cache"
	"github.com/K4-001/NutriPinoy/pkg/catalog"
)

// CachedSource wraps a RemoteSource with the disk cache. A fresh cached
// payload is served without touching the network; when the fetch fails
// and a stale payload is still on disk, the stale copy serves instead,
// so a warm cache rides out endpoint outages.
type CachedSource struct {
	remote *RemoteSource
	store  *cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSource(remote *RemoteSource, store *cache.Store, ttl time.Duration, logger *slog.Logger) *CachedSource {
	return &CachedSource{
		remote: remote,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CachedSource) Name() string {
	return s.remote.Name() + " (cached)"
}

func (s *CachedSource) Fetch(ctx context.Context) (*catalog.Collection, error) {
	key := s.remote.endpoint

	var stale *catalog.Collection
	if raw, fresh, ok := s.store.GetStale(key); ok {
		c, err := catalog.DecodeJSON(bytes.NewReader(raw))
		switch {
		case err != nil:
			s.logger.Warn("dropping corrupt cached catalog", "endpoint", key, "error", err)
			s.store.Delete(key)
		case fresh:
			s.logger.Debug("catalog served from cache", "endpoint", key, "dishes", c.Len())
			return c, nil
		default:
			stale = c
		}
	}

	fetched, err := s.remote.fetchRaw(ctx)
	if err != nil {
		if stale != nil {
			// Stale but decodable beats nothing at all.
			s.logger.Warn("fetch failed, serving stale cached catalog",
				"endpoint", key, "error", err)
			return stale, nil
		}
		return nil, err
	}

	c, decErr := catalog.DecodeJSON(bytes.NewReader(fetched))
	if decErr != nil {
		return nil, &FormatError{Resource: key, Err: decErr}
	}

	if putErr := s.store.PutWithTTL(key, fetched, s.ttl); putErr != nil {
		s.logger.Warn("failed to cache catalog", "endpoint", key, "error", putErr)
	}
	return c, nil
}

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
)

// maxCatalogBytes bounds how much of a response body we will read.
// The full catalog is well under a megabyte; anything bigger is wrong.
const maxCatalogBytes = 8 << 20

// RemoteSource fetches the catalog over HTTP. The endpoint must serve
// the JSON catalog document; responses outside 2xx become FetchErrors
// carrying the status code.
type RemoteSource struct {
	endpoint string
	client   *http.Client
}

func NewRemoteSource(endpoint string, timeout time.Duration) *RemoteSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *RemoteSource) Name() string {
	return "remote:" + s.endpoint
}

func (s *RemoteSource) Fetch(ctx context.Context) (*catalog.Collection, error) {
	raw, err := s.fetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	c, err := catalog.DecodeJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &FormatError{Resource: s.endpoint, Err: err}
	}
	return c, nil
}

// fetchRaw performs the HTTP GET and returns the undecoded body. The
// cached source uses it so the disk cache stores the wire payload.
func (s *RemoteSource) fetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: s.endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused, then report the status.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: s.endpoint, Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes+1))
	if err != nil {
		return nil, &FetchError{URL: s.endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(raw) > maxCatalogBytes {
		return nil, &FormatError{Resource: s.endpoint, Err: fmt.Errorf("catalog exceeds %d bytes", maxCatalogBytes)}
	}
	return raw, nil
}

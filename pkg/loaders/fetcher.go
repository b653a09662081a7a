package loaders

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmfajardod/marvin/pkg/artifacts"
)

// Fetcher is the shared HTTP getter behind every loader. When an artifact
// store is configured it serves cached bodies and caches fresh ones; with
// a nil store every call goes to the network.
type Fetcher struct {
	httpClient *http.Client
	cache      *artifacts.Store
	userAgent  string
}

// NewFetcher builds the shared getter. cache may be nil.
func NewFetcher(cache *artifacts.Store, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache,
		userAgent:  userAgent,
	}
}

// Fetch returns the body at url, from cache when possible.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if body, err := f.cache.Get(ctx, url); err == nil {
			return body, nil
		}
		// Misses and cache failures both fall through to the network.
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("loaders: build request for %s: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("loaders: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("loaders: fetch %s: http %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("loaders: read %s: %w", url, err)
	}

	if f.cache != nil {
		_ = f.cache.Put(ctx, url, body)
	}
	return body, nil
}

// Package http provides HTTP implementations of wolref.Fetcher and
// wolref.PayloadFetcher for retrieving publication pages and reference
// payloads from the site.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pbartosik/wolref"
)

// DefaultFetchTimeout is the default per-request timeout. A hung fetch can
// delay a document resolution by at most this long per mnemonic.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wolref.Fetcher at compile time.
var _ wolref.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies from URLs using plain HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the page at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wolref.Errorf(wolref.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wolref.Errorf(wolref.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", wolref.Errorf(wolref.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wolref.Errorf(wolref.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

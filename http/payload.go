package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pbartosik/wolref"
)

// Ensure PayloadFetcher implements wolref.PayloadFetcher at compile time.
var _ wolref.PayloadFetcher = (*PayloadFetcher)(nil)

// PayloadFetcher retrieves publication payloads as JSON. Each request
// carries its own timeout so that one hung reference cannot block a
// document resolution indefinitely.
type PayloadFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// PayloadOption configures a PayloadFetcher.
type PayloadOption func(*PayloadFetcher)

// WithPayloadTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithPayloadTimeout(d time.Duration) PayloadOption {
	return func(f *PayloadFetcher) {
		f.timeout = d
	}
}

// NewPayloadFetcher creates a new JSON PayloadFetcher.
func NewPayloadFetcher(opts ...PayloadOption) *PayloadFetcher {
	f := &PayloadFetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{}

	return f
}

// FetchPayload performs one JSON fetch of the given URL. Network failures
// and non-2xx responses return EUNAVAILABLE; a body that is not valid JSON
// returns EMALFORMED. The decoded payload is returned without shape
// validation.
func (f *PayloadFetcher) FetchPayload(ctx context.Context, url string) (*wolref.Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wolref.Errorf(wolref.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, wolref.Errorf(wolref.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, wolref.Errorf(wolref.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wolref.Errorf(wolref.EUNAVAILABLE, "read %s: %v", url, err)
	}

	var payload wolref.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, wolref.Errorf(wolref.EMALFORMED, "response from %s is not valid JSON: %v", url, err)
	}

	return &payload, nil
}

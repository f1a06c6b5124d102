// Package mock provides function-field mock implementations of wolref
// interfaces for tests.
package mock

import (
	"context"

	"github.com/pbartosik/wolref"
)

var _ wolref.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wolref.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ wolref.PayloadFetcher = (*PayloadFetcher)(nil)

// PayloadFetcher is a mock implementation of wolref.PayloadFetcher.
type PayloadFetcher struct {
	FetchPayloadFn func(ctx context.Context, url string) (*wolref.Payload, error)
}

func (f *PayloadFetcher) FetchPayload(ctx context.Context, url string) (*wolref.Payload, error) {
	return f.FetchPayloadFn(ctx, url)
}

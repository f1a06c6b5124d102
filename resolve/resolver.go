// Package resolve implements the reference resolution engine: a one-hop
// anchor resolver, a document-scoped single-flight deduplicator, and the
// aggregator that compacts recurring references into a shared table.
package resolve

import (
	"context"
	"net/url"

	"github.com/pbartosik/wolref"
)

// Ensure Resolver implements wolref.Resolver at compile time.
var _ wolref.Resolver = (*Resolver)(nil)

// Resolver resolves one anchor to its referenced text: it derives the
// payload URL from the anchor's relative link, performs exactly one fetch,
// validates the payload shape, classifies the publication, and applies the
// matching extraction strategy.
type Resolver struct {
	Payloads  wolref.PayloadFetcher
	Extractor wolref.TextExtractor

	// BaseURL defaults to wolref.DefaultBaseURL when empty.
	BaseURL string

	// RateLimiter, when set, is consulted before each fetch.
	RateLimiter wolref.DomainLimiter
}

// Resolve performs the one-hop resolution of anchor. Structural anchor
// problems return EINVALID; fetch and payload failures return their coded
// errors unchanged. Resolve itself never substitutes sentinel text.
func (r *Resolver) Resolve(ctx context.Context, anchor wolref.AnchorReference) (*wolref.ResolvedReference, error) {
	target, err := anchor.Target(r.BaseURL)
	if err != nil {
		return nil, err
	}

	if r.RateLimiter != nil {
		u, err := url.Parse(target)
		if err != nil {
			return nil, wolref.Errorf(wolref.EINVALID, "invalid target URL %q: %v", target, err)
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, wolref.Errorf(wolref.EUNAVAILABLE, "rate limit wait for %s: %v", u.Host, err)
		}
	}

	payload, err := r.Payloads.FetchPayload(ctx, target)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	item := payload.Items[0]
	kind := wolref.ClassifyPublication(item.ArticleClasses)

	text, err := r.Extractor.Extract(kind, item.Content)
	if err != nil {
		return nil, err
	}

	return &wolref.ResolvedReference{
		Mnemonic: anchor.Label,
		Text:     text,
	}, nil
}

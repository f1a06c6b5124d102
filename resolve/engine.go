package resolve

import (
	"context"

	"github.com/pbartosik/wolref"
)

// Ensure Engine implements wolref.DocumentResolver at compile time.
var _ wolref.DocumentResolver = (*Engine)(nil)

// Engine combines the deduplicator and aggregator into the document-scoped
// resolution entry point shared by the article and Bible-index extractors.
type Engine struct {
	Resolver wolref.Resolver

	// Concurrency limits concurrent fetches; see Deduplicator.
	Concurrency int
}

// ResolveDocument resolves all anchors in sections and returns the
// compacted output. Per-reference fetch failures appear as sentinel text
// in the result; only structurally invalid input returns an error.
func (e *Engine) ResolveDocument(ctx context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error) {
	dedup := &Deduplicator{
		Resolver:    e.Resolver,
		Concurrency: e.Concurrency,
	}

	tracked, err := dedup.ResolveAll(ctx, sections)
	if err != nil {
		return nil, err
	}

	return Aggregate(sections, tracked), nil
}

package mock

import (
	"context"

	"github.com/pbartosik/wolref"
)

var _ wolref.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of wolref.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, anchor wolref.AnchorReference) (*wolref.ResolvedReference, error)
}

func (r *Resolver) Resolve(ctx context.Context, anchor wolref.AnchorReference) (*wolref.ResolvedReference, error) {
	return r.ResolveFn(ctx, anchor)
}

var _ wolref.DocumentResolver = (*DocumentResolver)(nil)

// DocumentResolver is a mock implementation of wolref.DocumentResolver.
type DocumentResolver struct {
	ResolveDocumentFn func(ctx context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error)
}

func (r *DocumentResolver) ResolveDocument(ctx context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error) {
	return r.ResolveDocumentFn(ctx, sections)
}

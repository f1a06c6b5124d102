// Package slog provides logging decorators for wolref interfaces.
// Core packages never log; observability is layered on here.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pbartosik/wolref"
)

// Ensure LoggingResolver implements wolref.Resolver at compile time.
var _ wolref.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with per-anchor debug logging.
type LoggingResolver struct {
	next   wolref.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next wolref.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, anchor wolref.AnchorReference) (*wolref.ResolvedReference, error) {
	begin := time.Now()
	resolved, err := r.next.Resolve(ctx, anchor)
	if err != nil {
		r.logger.Warn("reference resolution failed",
			"mnemonic", anchor.Label,
			"code", wolref.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Debug("reference resolved",
		"mnemonic", anchor.Label,
		"chars", len(resolved.Text),
		"duration", time.Since(begin),
	)
	return resolved, nil
}

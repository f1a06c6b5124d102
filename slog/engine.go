package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pbartosik/wolref"
)

// Ensure LoggingDocumentResolver implements wolref.DocumentResolver.
var _ wolref.DocumentResolver = (*LoggingDocumentResolver)(nil)

// LoggingDocumentResolver wraps a DocumentResolver with per-run logging.
// Each run gets a generated ID so the per-anchor log lines of concurrent
// document resolutions can be told apart.
type LoggingDocumentResolver struct {
	next   wolref.DocumentResolver
	logger *slog.Logger
}

// NewLoggingDocumentResolver creates a new LoggingDocumentResolver.
func NewLoggingDocumentResolver(next wolref.DocumentResolver, logger *slog.Logger) *LoggingDocumentResolver {
	return &LoggingDocumentResolver{next: next, logger: logger}
}

// ResolveDocument delegates to the wrapped resolver and logs run totals.
func (r *LoggingDocumentResolver) ResolveDocument(ctx context.Context, sections []wolref.Section) (*wolref.DocumentReferences, error) {
	runID := uuid.NewString()

	anchors := 0
	for _, section := range sections {
		anchors += len(section.Anchors)
	}

	begin := time.Now()
	refs, err := r.next.ResolveDocument(ctx, sections)
	if err != nil {
		r.logger.Error("document resolution failed",
			"run", runID,
			"sections", len(sections),
			"anchors", anchors,
			"code", wolref.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	r.logger.Info("document resolved",
		"run", runID,
		"sections", len(sections),
		"anchors", anchors,
		"shared", len(refs.Shared),
		"duration", time.Since(begin),
	)
	return refs, nil
}

package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pbartosik/wolref"
	"github.com/pbartosik/wolref/mock"
	wolslog "github.com/pbartosik/wolref/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LoggingResolver implements wolref.Resolver at compile time.
var _ wolref.Resolver = (*wolslog.LoggingResolver)(nil)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		next := &mock.Resolver{
			ResolveFn: func(_ context.Context, a wolref.AnchorReference) (*wolref.ResolvedReference, error) {
				return &wolref.ResolvedReference{Mnemonic: a.Label, Text: "t"}, nil
			},
		}

		var buf bytes.Buffer
		r := wolslog.NewLoggingResolver(next, testLogger(&buf))

		resolved, err := r.Resolve(context.Background(), wolref.AnchorReference{Label: "Ps 83:18", Href: "/en/x"})
		require.NoError(t, err)
		assert.Equal(t, "Ps 83:18", resolved.Mnemonic)
		assert.Contains(t, buf.String(), "reference resolved")
		assert.Contains(t, buf.String(), "Ps 83:18")
	})

	t.Run("delegates and logs failure with code", func(t *testing.T) {
		t.Parallel()

		next := &mock.Resolver{
			ResolveFn: func(context.Context, wolref.AnchorReference) (*wolref.ResolvedReference, error) {
				return nil, wolref.Errorf(wolref.EUNAVAILABLE, "fetch failed")
			},
		}

		var buf bytes.Buffer
		r := wolslog.NewLoggingResolver(next, testLogger(&buf))

		_, err := r.Resolve(context.Background(), wolref.AnchorReference{Label: "Ps", Href: "/en/x"})
		assert.Equal(t, wolref.EUNAVAILABLE, wolref.ErrorCode(err))
		assert.Contains(t, buf.String(), "reference resolution failed")
		assert.Contains(t, buf.String(), wolref.EUNAVAILABLE)
	})
}

package resolve_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/pbartosik/wolref"
	"github.com/pbartosik/wolref/mock"
	"github.com/pbartosik/wolref/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Engine implements wolref.DocumentResolver at compile time.
var _ wolref.DocumentResolver = (*resolve.Engine)(nil)

func TestEngine_ResolveDocument(t *testing.T) {
	t.Parallel()

	t.Run("shared mnemonics across sections become pointers", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		e := &resolve.Engine{Resolver: countingResolver(&calls)}

		sections := []wolref.Section{
			{Title: "one", Anchors: []wolref.AnchorReference{anchor("A"), anchor("B")}},
			{Title: "two", Anchors: []wolref.AnchorReference{anchor("B"), anchor("A")}},
		}

		out, err := e.ResolveDocument(context.Background(), sections)
		require.NoError(t, err)

		assert.Equal(t, int64(2), calls.Load())

		require.Len(t, out.Sections, 2)
		assert.Equal(t, []wolref.ReferenceEntry{
			{Mnemonic: "A", Text: wolref.SharedReferencePointer("A")},
			{Mnemonic: "B", Text: wolref.SharedReferencePointer("B")},
		}, out.Sections[0].References)
		assert.Equal(t, []wolref.ReferenceEntry{
			{Mnemonic: "B", Text: wolref.SharedReferencePointer("B")},
			{Mnemonic: "A", Text: wolref.SharedReferencePointer("A")},
		}, out.Sections[1].References)

		assert.Equal(t, map[string]string{"A": "text:A", "B": "text:B"}, out.Shared)
	})

	t.Run("single-occurrence mnemonics stay inline", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		e := &resolve.Engine{Resolver: countingResolver(&calls)}

		out, err := e.ResolveDocument(context.Background(), []wolref.Section{
			{Anchors: []wolref.AnchorReference{anchor("A"), anchor("B")}},
		})
		require.NoError(t, err)

		assert.Equal(t, []wolref.ReferenceEntry{
			{Mnemonic: "A", Text: "text:A"},
			{Mnemonic: "B", Text: "text:B"},
		}, out.Sections[0].References)
		assert.Empty(t, out.Shared)
	})

	t.Run("failed mnemonic shows sentinel at its occurrence", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, a wolref.AnchorReference) (*wolref.ResolvedReference, error) {
				if a.Label == "B" {
					return nil, wolref.Errorf(wolref.EUNAVAILABLE, "fetch failed")
				}
				return &wolref.ResolvedReference{Mnemonic: a.Label, Text: "text:" + a.Label}, nil
			},
		}
		e := &resolve.Engine{Resolver: resolver}

		out, err := e.ResolveDocument(context.Background(), []wolref.Section{
			{Anchors: []wolref.AnchorReference{anchor("A"), anchor("B")}},
		})
		require.NoError(t, err)

		assert.Equal(t, "text:A", out.Sections[0].References[0].Text)
		assert.Equal(t, wolref.UnableToExtract, out.Sections[0].References[1].Text)
	})

	t.Run("resolution is idempotent for identical inputs", func(t *testing.T) {
		t.Parallel()

		sections := []wolref.Section{
			{Title: "one", Anchors: []wolref.AnchorReference{anchor("A"), anchor("B"), anchor("A")}},
			{Title: "two", Anchors: []wolref.AnchorReference{anchor("C")}},
		}

		run := func() []byte {
			var calls atomic.Int64
			e := &resolve.Engine{Resolver: countingResolver(&calls), Concurrency: 3}
			out, err := e.ResolveDocument(context.Background(), sections)
			require.NoError(t, err)
			b, err := json.Marshal(out)
			require.NoError(t, err)
			return b
		}

		assert.Equal(t, run(), run())
	})

	t.Run("invalid input surfaces as error, not sentinel", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		e := &resolve.Engine{Resolver: countingResolver(&calls)}

		_, err := e.ResolveDocument(context.Background(), []wolref.Section{
			{Anchors: []wolref.AnchorReference{{Label: "A", Href: "x"}}},
		})
		assert.Equal(t, wolref.EINVALID, wolref.ErrorCode(err))
	})
}

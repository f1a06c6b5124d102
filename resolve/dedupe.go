package resolve

import (
	"context"

	"github.com/pbartosik/wolref"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the fetch fan-out limit used when none is set.
const DefaultConcurrency = 10

// Tracked is the completed tracking state for one distinct mnemonic within
// a document: the resolved (or sentinel) text and how many times the
// mnemonic occurred across all sections.
type Tracked struct {
	Mnemonic string
	Text     string
	Count    int
}

// Deduplicator resolves every anchor in a document's sections while
// issuing at most one resolver call per distinct mnemonic. All tracking
// state is scoped to a single ResolveAll call; nothing is cached across
// documents.
type Deduplicator struct {
	Resolver wolref.Resolver

	// Concurrency limits concurrent resolver calls.
	// Defaults to DefaultConcurrency when <= 0.
	Concurrency int
}

// ResolveAll walks every section's anchors in order, counting occurrences
// per mnemonic, then resolves each distinct mnemonic exactly once with a
// concurrent fan-out and an all-complete barrier. A failed resolution sets
// the entry's text to the wolref.UnableToExtract sentinel; it does not
// cancel or fail the other fetches.
//
// Occurrence counting completes synchronously before any fetch starts, so
// counts are deterministic and independent of fetch completion order.
// Every anchor is validated during the walk; an invalid anchor returns
// EINVALID before any network work.
func (d *Deduplicator) ResolveAll(ctx context.Context, sections []wolref.Section) (map[string]*Tracked, error) {
	entries := make(map[string]*Tracked)

	// First-seen anchor per distinct mnemonic, in sighting order.
	var distinct []wolref.AnchorReference

	for _, section := range sections {
		for _, anchor := range section.Anchors {
			if err := anchor.Validate(); err != nil {
				return nil, err
			}

			entry, ok := entries[anchor.Label]
			if !ok {
				entry = &Tracked{Mnemonic: anchor.Label}
				entries[anchor.Label] = entry
				distinct = append(distinct, anchor)
			}
			entry.Count++
		}
	}

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, anchor := range distinct {
		entry := entries[anchor.Label]
		g.Go(func() error {
			resolved, err := d.Resolver.Resolve(gctx, anchor)
			if err != nil {
				entry.Text = wolref.UnableToExtract
				return nil
			}
			entry.Text = resolved.Text
			return nil
		})
	}

	// Workers never return errors; failures are captured as sentinel text.
	_ = g.Wait()

	return entries, nil
}

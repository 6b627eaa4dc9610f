// Package walk reproduces a linear commit log by following parent pointers
// backward from a resolved head id.
package walk

import (
	"context"
	"fmt"

	"github.com/flarebyte/seshat-annals/internal/commit"
	"github.com/flarebyte/seshat-annals/internal/object"
)

// VisitFunc receives each emitted record in walk order.
type VisitFunc func(rec *commit.Record) error

// Options tune the walk without changing its sequential, fail-fast nature.
type Options struct {
	// IncludeHead also emits the head commit before its ancestors. The
	// default walk emits ancestors only: for a chain A→B→C starting at A,
	// the visitor sees B then C.
	IncludeHead bool
	// MaxCount caps the number of emitted records; 0 means unlimited.
	MaxCount int
}

// Walk fetches, parses and normalizes one commit per step, starting at head
// and following each record's parent field until a root commit is reached.
// Exactly one fetch happens per step; there is no memoization and no cycle
// detection, so a malformed object graph with a cycle would not terminate.
func Walk(ctx context.Context, fetcher object.Fetcher, head string, opts Options, visit VisitFunc) error {
	count := 0
	emit := func(rec *commit.Record) (bool, error) {
		if err := visit(rec); err != nil {
			return false, err
		}
		count++
		return opts.MaxCount == 0 || count < opts.MaxCount, nil
	}

	rec, err := fetchRecord(ctx, fetcher, head)
	if err != nil {
		return err
	}
	if opts.IncludeHead {
		if cont, err := emit(rec); !cont {
			return err
		}
	}
	for rec.Has(commit.FieldParent) {
		rec, err = fetchRecord(ctx, fetcher, rec.Parent())
		if err != nil {
			return err
		}
		if cont, err := emit(rec); !cont {
			return err
		}
	}
	return nil
}

// fetchRecord turns one object id into a finalized, normalized record tagged
// with the id it was requested under.
func fetchRecord(ctx context.Context, fetcher object.Fetcher, id string) (*commit.Record, error) {
	raw, err := fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, err := commit.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", id, err)
	}
	if err := commit.Normalize(rec); err != nil {
		return nil, fmt.Errorf("commit %s: %w", id, err)
	}
	rec.SetCommit(id)
	return rec, nil
}

// Resolve fetches a single commit without walking, for one-shot views.
func Resolve(ctx context.Context, fetcher object.Fetcher, id string) (*commit.Record, error) {
	return fetchRecord(ctx, fetcher, id)
}

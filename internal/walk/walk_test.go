package walk

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/flarebyte/seshat-annals/internal/commit"
)

// mapFetcher serves raw commit text from memory and counts fetches.
type mapFetcher struct {
	objects map[string]string
	fetches int
}

func (f *mapFetcher) Fetch(_ context.Context, id string) ([]byte, error) {
	f.fetches++
	raw, ok := f.objects[id]
	if !ok {
		return nil, fmt.Errorf("fetch %s: no such object", id)
	}
	return []byte(raw), nil
}

func rawCommit(parent, message string) string {
	s := "tree 0ea3ee5e56e3123de49422ac3315b1cee3d74910\n"
	if parent != "" {
		s += "parent " + parent + "\n"
	}
	s += "author Jane Doe <jane@x.com> 1465164241 -0700\n" +
		"committer Jane Doe <jane@x.com> 1465164241 -0700\n" +
		"\n" + message
	return s
}

func chainFetcher() *mapFetcher {
	return &mapFetcher{objects: map[string]string{
		"aaa": rawCommit("bbb", "commit a"),
		"bbb": rawCommit("ccc", "commit b"),
		"ccc": rawCommit("", "commit c"),
	}}
}

func collect(t *testing.T, fetcher *mapFetcher, head string, opts Options) []string {
	t.Helper()
	var ids []string
	err := Walk(context.Background(), fetcher, head, opts, func(rec *commit.Record) error {
		ids = append(ids, rec.Commit())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return ids
}

func TestWalkEmitsAncestorsOnly(t *testing.T) {
	fetcher := chainFetcher()
	ids := collect(t, fetcher, "aaa", Options{})
	if len(ids) != 2 || ids[0] != "bbb" || ids[1] != "ccc" {
		t.Fatalf("emitted %v, want [bbb ccc]", ids)
	}
	if fetcher.fetches != 3 {
		t.Fatalf("fetches = %d, want one per visited commit", fetcher.fetches)
	}
}

func TestWalkIncludeHead(t *testing.T) {
	ids := collect(t, chainFetcher(), "aaa", Options{IncludeHead: true})
	if len(ids) != 3 || ids[0] != "aaa" || ids[1] != "bbb" || ids[2] != "ccc" {
		t.Fatalf("emitted %v, want [aaa bbb ccc]", ids)
	}
}

func TestWalkRootCommitEmitsNothing(t *testing.T) {
	ids := collect(t, chainFetcher(), "ccc", Options{})
	if len(ids) != 0 {
		t.Fatalf("emitted %v, want none for a root head", ids)
	}
}

func TestWalkMaxCount(t *testing.T) {
	ids := collect(t, chainFetcher(), "aaa", Options{MaxCount: 1})
	if len(ids) != 1 || ids[0] != "bbb" {
		t.Fatalf("emitted %v, want [bbb]", ids)
	}
}

func TestWalkFetchFailureAborts(t *testing.T) {
	fetcher := &mapFetcher{objects: map[string]string{
		"aaa": rawCommit("gone", "commit a"),
	}}
	err := Walk(context.Background(), fetcher, "aaa", Options{}, func(*commit.Record) error {
		t.Fatalf("nothing should be emitted")
		return nil
	})
	if err == nil {
		t.Fatalf("expected fetch failure")
	}
}

func TestWalkMalformedAborts(t *testing.T) {
	fetcher := &mapFetcher{objects: map[string]string{
		"aaa": rawCommit("bbb", "commit a"),
		"bbb": "treeonly",
	}}
	err := Walk(context.Background(), fetcher, "aaa", Options{}, func(*commit.Record) error {
		return nil
	})
	if !errors.Is(err, commit.ErrMalformed) {
		t.Fatalf("Walk error = %v, want ErrMalformed", err)
	}
}

func TestWalkVisitErrorStops(t *testing.T) {
	fetcher := chainFetcher()
	sentinel := errors.New("stop")
	err := Walk(context.Background(), fetcher, "aaa", Options{}, func(*commit.Record) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Walk error = %v, want visitor error", err)
	}
	if fetcher.fetches != 2 {
		t.Fatalf("fetches = %d, want walk stopped after first emission", fetcher.fetches)
	}
}

func TestResolveTagsRecord(t *testing.T) {
	rec, err := Resolve(context.Background(), chainFetcher(), "bbb")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Commit() != "bbb" {
		t.Fatalf("commit = %q", rec.Commit())
	}
	if rec.Author() != "Jane Doe <jane@x.com>" {
		t.Fatalf("author not normalized: %q", rec.Author())
	}
}

// Package object fetches the raw decompressed text of commit objects. The
// parser never touches compression or pack encoding; everything behind the
// Fetcher interface is an external collaborator.
package object

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Fetcher returns the raw text of the commit object named by id.
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// Backend names accepted by New.
const (
	BackendAuto  = "auto"
	BackendLoose = "loose"
	BackendGoGit = "gogit"
	BackendCLI   = "cli"
)

// New builds a fetcher for the given backend reading from gitDir. The auto
// backend reads loose objects and falls back to the gogit backend for
// objects that only exist packed.
func New(backend, gitDir string) (Fetcher, error) {
	switch backend {
	case BackendAuto, "":
		return &autoFetcher{loose: NewLoose(gitDir), gitDir: gitDir}, nil
	case BackendLoose:
		return NewLoose(gitDir), nil
	case BackendGoGit:
		return NewGoGit(gitDir)
	case BackendCLI:
		return NewCLI(gitDir), nil
	default:
		return nil, fmt.Errorf("unknown object backend %q", backend)
	}
}

type autoFetcher struct {
	loose  *LooseFetcher
	gitDir string
	packed Fetcher
}

func (f *autoFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	b, err := f.loose.Fetch(ctx, id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if f.packed == nil {
		packed, err := NewGoGit(f.gitDir)
		if err != nil {
			return nil, err
		}
		f.packed = packed
	}
	return f.packed.Fetch(ctx, id)
}

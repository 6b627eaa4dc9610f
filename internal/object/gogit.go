package object

import (
	"context"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitFetcher serves raw commit text through go-git's object storage, which
// also resolves objects living in packfiles.
type GoGitFetcher struct {
	repo *gogit.Repository
}

// NewGoGit opens the repository whose metadata directory is gitDir.
func NewGoGit(gitDir string) (*GoGitFetcher, error) {
	repo, err := gogit.PlainOpen(gitDir)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", gitDir, err)
	}
	return &GoGitFetcher{repo: repo}, nil
}

func (f *GoGitFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	obj, err := f.repo.Storer.EncodedObject(plumbing.CommitObject, plumbing.NewHash(id))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	r, err := obj.Reader()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer func() { _ = r.Close() }()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	return b, nil
}

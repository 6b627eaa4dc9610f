package object

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const commitType = "commit"

// LooseFetcher reads zlib-compressed loose objects from
// <gitDir>/objects/<xx>/<rest>.
type LooseFetcher struct {
	gitDir string
}

// NewLoose returns a loose-object fetcher rooted at gitDir.
func NewLoose(gitDir string) *LooseFetcher {
	return &LooseFetcher{gitDir: gitDir}
}

func (f *LooseFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(id) < 40 {
		return nil, fmt.Errorf("invalid object id %q", id)
	}
	file, err := os.Open(filepath.Join(f.gitDir, "objects", id[:2], id[2:]))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer func() { _ = file.Close() }()
	zr, err := zlib.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer func() { _ = zr.Close() }()
	obj, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	return commitPayload(id, obj)
}

// commitPayload strips the "<type> <size>\x00" object header and rejects
// anything that is not a commit.
func commitPayload(id string, obj []byte) ([]byte, error) {
	n := bytes.IndexByte(obj, 0)
	if n < 0 {
		return nil, fmt.Errorf("fetch %s: invalid object header", id)
	}
	head := string(obj[:n])
	if !bytes.HasPrefix(obj, []byte(commitType+" ")) {
		return nil, fmt.Errorf("fetch %s: object is %q, not a commit", id, head)
	}
	return obj[n+1:], nil
}

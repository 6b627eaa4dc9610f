// Package testutil builds synthetic repository fixtures for tests: a .git
// tree with a head reference and zlib-compressed loose commit objects.
package testutil

import (
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Chain ids used by RepoWithChain, head first.
const (
	IDHead   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	IDMiddle = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	IDRoot   = "cccccccccccccccccccccccccccccccccccccccc"
)

// WriteFile writes content at path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteLooseCommit stores payload as a zlib loose commit object under gitDir.
func WriteLooseCommit(t *testing.T, gitDir, id, payload string) {
	t.Helper()
	dir := filepath.Join(gitDir, "objects", id[:2])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	f, err := os.Create(filepath.Join(dir, id[2:]))
	if err != nil {
		t.Fatalf("create object: %v", err)
	}
	zw := zlib.NewWriter(f)
	if _, err := fmt.Fprintf(zw, "commit %d\x00%s", len(payload), payload); err != nil {
		t.Fatalf("compress object: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zlib: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close object: %v", err)
	}
}

// RawCommit renders minimal commit object text with the given parent
// (empty for a root commit) and message.
func RawCommit(parent, message string) string {
	s := "tree 0ea3ee5e56e3123de49422ac3315b1cee3d74910\n"
	if parent != "" {
		s += "parent " + parent + "\n"
	}
	s += "author Jane Doe <jane@x.com> 1465164241 -0700\n" +
		"committer Jane Doe <jane@x.com> 1465164241 -0700\n" +
		"\n" + message + "\n"
	return s
}

// RepoWithChain builds a repository at root with HEAD on refs/heads/main and
// a three-commit chain IDHead→IDMiddle→IDRoot stored as loose objects.
func RepoWithChain(t *testing.T, root string) {
	t.Helper()
	gitDir := filepath.Join(root, ".git")
	WriteFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/main\n")
	WriteFile(t, filepath.Join(gitDir, "refs", "heads", "main"), IDHead+"\n")
	WriteLooseCommit(t, gitDir, IDHead, RawCommit(IDMiddle, "head commit"))
	WriteLooseCommit(t, gitDir, IDMiddle, RawCommit(IDRoot, "middle commit"))
	WriteLooseCommit(t, gitDir, IDRoot, RawCommit("", "root commit"))
}

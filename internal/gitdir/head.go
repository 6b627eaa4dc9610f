package gitdir

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	headFile  = "HEAD"
	refPrefix = "ref: "
)

// ReadHead returns the stripped content of the head file: either a symbolic
// "ref: refs/heads/..." line or a detached object id.
func ReadHead(gitDir string) (string, error) {
	b, err := os.ReadFile(filepath.Join(gitDir, headFile))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ResolveHead resolves the head reference all the way to a commit id.
func ResolveHead(gitDir string) (string, error) {
	head, err := ReadHead(gitDir)
	if err != nil {
		return "", err
	}
	ref, ok := strings.CutPrefix(head, refPrefix)
	if !ok {
		// Detached: the content is already an object id.
		return head, nil
	}
	return resolveRef(gitDir, strings.TrimSpace(ref))
}

// resolveRef reads the branch-tip file for ref, falling back to packed-refs
// when the loose file does not exist.
func resolveRef(gitDir, ref string) (string, error) {
	refPath := filepath.Join(gitDir, filepath.FromSlash(ref))
	if b, err := os.ReadFile(refPath); err == nil {
		return strings.TrimSpace(string(b)), nil
	}
	id, err := packedRef(gitDir, ref)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("cannot resolve ref %q", ref)
	}
	return id, nil
}

func packedRef(gitDir, ref string) (string, error) {
	f, err := os.Open(filepath.Join(gitDir, "packed-refs"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	defer func() { _ = f.Close() }()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "^") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 2 && parts[1] == ref {
			return parts[0], nil
		}
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return "", nil
}

package gitdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MetadataDir is the repository metadata entry searched for during location.
const MetadataDir = ".git"

// NotRepositoryError is returned when the upward search reaches the
// filesystem root without finding repository metadata. It carries git's own
// distinguished exit status for this diagnostic.
type NotRepositoryError struct{}

func (NotRepositoryError) Error() string {
	return "fatal: not a git repository (or any of the parent directories): .git"
}

// ExitCode returns 128, matching the host tool.
func (NotRepositoryError) ExitCode() int { return 128 }

// ErrNotRepository is the comparable instance for errors.Is checks.
var ErrNotRepository = NotRepositoryError{}

// Find walks from start upward and returns the absolute path of the
// repository metadata directory. A `.git` regular file redirects to the
// linked worktree's gitdir.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, MetadataDir)
		st, err := os.Stat(candidate)
		if err == nil {
			if st.IsDir() {
				return candidate, nil
			}
			return redirectedGitDir(dir, candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotRepository
		}
		dir = parent
	}
}

// FindFrom locates the metadata root starting at dir, defaulting to the
// process's current directory when dir is empty.
func FindFrom(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = cwd
	}
	return Find(dir)
}

func redirectedGitDir(dir, gitFile string) (string, error) {
	b, err := os.ReadFile(gitFile)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(b))
	target, ok := strings.CutPrefix(s, "gitdir:")
	if !ok {
		return "", fmt.Errorf("invalid %s file at %s", MetadataDir, gitFile)
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Clean(filepath.Join(dir, target))
	}
	st, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	if !st.IsDir() {
		return "", errors.New("gitdir redirection does not name a directory")
	}
	return target, nil
}

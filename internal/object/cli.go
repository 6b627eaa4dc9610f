package object

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CLIFetcher shells out to `git cat-file -p`, the way the history walk was
// first prototyped. Useful when the installed git understands repository
// extensions the native backends do not.
type CLIFetcher struct {
	dir string
}

// NewCLI returns a subprocess-backed fetcher running git inside dir.
func NewCLI(dir string) *CLIFetcher {
	return &CLIFetcher{dir: dir}
}

func (f *CLIFetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", "cat-file", "-p", id)
	cmd.Dir = f.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("fetch %s: %s", id, msg)
	}
	return stdout.Bytes(), nil
}

// Package git reads and updates a repository by running the git binary.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotRepository indicates the path is not inside a git work tree.
var ErrNotRepository = errors.New("not a git repository")

// Repository is a git work tree.
type Repository struct {
	path string
}

// Open checks that path is inside a work tree and returns its top level.
func Open(path string) (*Repository, error) {
	out, err := run(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotRepository, path, err)
	}
	return &Repository{path: strings.TrimSpace(out)}, nil
}

// Path returns the work tree root.
func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) git(args ...string) (string, error) {
	return run(r.path, args...)
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}

// lines splits command output into non-empty trimmed lines.
func lines(out string) []string {
	var result []string
	for line := range strings.SplitSeq(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}

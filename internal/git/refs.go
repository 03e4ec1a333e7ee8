package git

import (
	"fmt"
	"strings"
)

// LocalBranches returns local branch short names in ref order.
func (r *Repository) LocalBranches() ([]string, error) {
	out, err := r.git("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("list local branches: %w", err)
	}
	return lines(out), nil
}

// RemoteBranches returns remote-tracking branch short names, skipping the
// symbolic <remote>/HEAD entries.
func (r *Repository) RemoteBranches() ([]string, error) {
	out, err := r.git("for-each-ref", "--format=%(refname:short)", "refs/remotes")
	if err != nil {
		return nil, fmt.Errorf("list remote branches: %w", err)
	}
	var result []string
	for _, name := range lines(out) {
		if strings.HasSuffix(name, "/HEAD") || !strings.Contains(name, "/") {
			continue
		}
		result = append(result, name)
	}
	return result, nil
}

// AllBranches returns local branches followed by remote branches.
func (r *Repository) AllBranches() ([]string, error) {
	local, err := r.LocalBranches()
	if err != nil {
		return nil, err
	}
	remote, err := r.RemoteBranches()
	if err != nil {
		return nil, err
	}
	return append(local, remote...), nil
}

// Tags returns tag names, newest first.
func (r *Repository) Tags() ([]string, error) {
	out, err := r.git("for-each-ref", "--sort=-creatordate", "--format=%(refname:short)", "refs/tags")
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return lines(out), nil
}

// Checkout switches the work tree to a branch, remote branch or tag.
func (r *Repository) Checkout(ref string) error {
	_, err := r.git("checkout", "--quiet", ref)
	return err
}

// DeleteBranch deletes a fully merged local branch.
func (r *Repository) DeleteBranch(name string) error {
	_, err := r.git("branch", "--delete", name)
	return err
}

// Merge merges a branch into HEAD without opening an editor.
func (r *Repository) Merge(ref string) error {
	_, err := r.git("merge", "--no-edit", ref)
	return err
}

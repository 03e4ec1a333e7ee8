package git

import (
	"fmt"

	"github.com/llehouerou/gitools/internal/keymap"
)

// Candidates returns what each command can act on.
func (r *Repository) Candidates(cmd keymap.Command) ([]string, error) {
	switch cmd {
	case keymap.CommandBranchCheckout, keymap.CommandBranchMerge:
		return r.AllBranches()
	case keymap.CommandBranchDelete:
		return r.LocalBranches()
	case keymap.CommandTagCheckout:
		return r.Tags()
	}
	return nil, fmt.Errorf("no candidates for %q", cmd)
}

// Execute runs cmd against the chosen ref.
func (r *Repository) Execute(cmd keymap.Command, choice string) error {
	switch cmd {
	case keymap.CommandBranchCheckout, keymap.CommandTagCheckout:
		return r.Checkout(choice)
	case keymap.CommandBranchDelete:
		return r.DeleteBranch(choice)
	case keymap.CommandBranchMerge:
		return r.Merge(choice)
	}
	return fmt.Errorf("cannot execute %q", cmd)
}

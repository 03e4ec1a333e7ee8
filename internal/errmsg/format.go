// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/gitools/internal/keymap"
)

// Op represents an operation that can fail.
type Op string

const (
	// Repository
	OpRepoOpen   Op = "open repository"
	OpHeaderRead Op = "read repository state"
	OpStatusRead Op = "read working tree status"

	// Candidate sources
	OpListBranches Op = "list branches"
	OpListTags     Op = "list tags"

	// Commands
	OpBranchCheckout Op = "checkout branch"
	OpBranchDelete   Op = "delete branch"
	OpBranchMerge    Op = "merge branch"
	OpTagCheckout    Op = "checkout tag"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// ForCommand returns the operation a command performs.
func ForCommand(cmd keymap.Command) Op {
	switch cmd {
	case keymap.CommandBranchCheckout:
		return OpBranchCheckout
	case keymap.CommandBranchDelete:
		return OpBranchDelete
	case keymap.CommandBranchMerge:
		return OpBranchMerge
	case keymap.CommandTagCheckout:
		return OpTagCheckout
	}
	return Op(cmd)
}

// SourceFor returns the operation that loads a command's candidates.
func SourceFor(cmd keymap.Command) Op {
	if cmd == keymap.CommandTagCheckout {
		return OpListTags
	}
	return OpListBranches
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming what the operation acted on.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

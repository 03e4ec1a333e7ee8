package keymap

import "fmt"

// Command is a leaf command of the keymap tree. The set is closed: every
// value the tree can hold is listed below.
type Command string

const (
	CommandBranchCheckout Command = "branch_checkout"
	CommandBranchDelete   Command = "branch_delete"
	CommandBranchMerge    Command = "branch_merge"
	CommandTagCheckout    Command = "tag_checkout"
)

// Commands lists every known command in display order.
var Commands = []Command{
	CommandBranchCheckout,
	CommandBranchDelete,
	CommandBranchMerge,
	CommandTagCheckout,
}

// ParseCommand validates a command name coming from configuration.
func ParseCommand(s string) (Command, error) {
	for _, c := range Commands {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown command %q", s)
}

// Prompt returns the placeholder shown in the palette query box.
func (c Command) Prompt() string {
	switch c {
	case CommandBranchCheckout:
		return "Checkout branch..."
	case CommandBranchDelete:
		return "Delete branch..."
	case CommandBranchMerge:
		return "Merge branch..."
	case CommandTagCheckout:
		return "Checkout tag..."
	}
	return "Search..."
}

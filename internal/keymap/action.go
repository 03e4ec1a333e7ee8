// Package keymap defines the two-level command tree and the host key bindings.
package keymap

// Action represents a host-level key action, resolved before the command tree
// sees the key.
type Action string

const (
	ActionQuit Action = "quit"

	// Menu actions
	ActionShowMenu Action = "show_menu"
	ActionCancel   Action = "cancel"
	ActionBack     Action = "back"

	// Palette actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionCommit   Action = "commit"
	ActionClose    Action = "close"
)

package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "menu", "palette"
}

// Bindings contains all host key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit application", "global"},

	// Menu
	{ActionShowMenu, []string{" "}, "Show command menu", "menu"},
	{ActionCancel, []string{"esc"}, "Hide menu", "menu"},
	{ActionBack, []string{"backspace"}, "Previous level", "menu"},

	// Palette
	{ActionMoveDown, []string{"ctrl+j", "down"}, "Next match", "palette"},
	{ActionMoveUp, []string{"ctrl+k", "up"}, "Previous match", "palette"},
	{ActionCommit, []string{"enter"}, "Run command on match", "palette"},
	{ActionClose, []string{"esc"}, "Close palette", "palette"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyLabel returns the display form of a key string.
func KeyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

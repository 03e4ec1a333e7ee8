package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered box used by the cheat sheet and the
// fuzzybar. The focused panel is the one receiving keys.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

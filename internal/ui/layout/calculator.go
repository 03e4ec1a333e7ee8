// Package layout provides pure functions for UI dimension calculations.
package layout

// MaxPanelWidth caps the width of the cheat sheet and palette panels so
// rows stay readable on wide terminals.
const MaxPanelWidth = 100

// StatusHeight is the height of the status line.
const StatusHeight = 1

// ContentHeight calculates the height left for the panel area between the
// header and the status line.
func ContentHeight(windowHeight, headerHeight int) int {
	return max(windowHeight-headerHeight-StatusHeight, 0)
}

// SplitWidth divides a width between two side-by-side panels.
func SplitWidth(width int) (left, right int) {
	left = width / 2
	return left, width - left
}

// PanelWidth returns the width of the centered panel for a terminal width.
func PanelWidth(windowWidth int) int {
	return min(windowWidth, MaxPanelWidth)
}

// Package ui provides shared UI constants.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderSize is the space a panel border consumes on each axis.
	BorderSize = 2

	// BorderWidth is the horizontal space consumed by a panel border and
	// its one-column padding on each side.
	BorderWidth = 4

	// MinWidth is the narrowest terminal the panels render in.
	MinWidth = 20
)

// Package styles holds the color theme and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accent colors
	Primary   lipgloss.Color // Blue - menu keys, active row marker
	Secondary lipgloss.Color // Green - menu descriptions
	Accent    lipgloss.Color // Cyan - current branch

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgCursor lipgloss.Color // Active match highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color // Yellow - tags

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style // Menu key
	Desc    lipgloss.Style // Menu description
	Cursor  lipgloss.Style // Active match
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// Solarized palette.
var defaultTheme = Theme{
	Primary:   lipgloss.Color("#268bd2"),
	Secondary: lipgloss.Color("#859900"),
	Accent:    lipgloss.Color("#2aa198"),

	FgBase:   lipgloss.Color("#93a1a1"),
	FgMuted:  lipgloss.Color("#657b83"),
	FgSubtle: lipgloss.Color("#586e75"),

	BgCursor: lipgloss.Color("#073642"),

	Border:      lipgloss.Color("#586e75"),
	BorderFocus: lipgloss.Color("#268bd2"),

	Success: lipgloss.Color("#859900"),
	Error:   lipgloss.Color("#dc322f"),
	Warning: lipgloss.Color("#b58900"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Desc: lipgloss.NewStyle().Foreground(t.Secondary),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase).
			Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

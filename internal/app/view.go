// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/cheatsheet"
	"github.com/llehouerou/gitools/internal/ui/fuzzybar"
	"github.com/llehouerou/gitools/internal/ui/headerbar"
	"github.com/llehouerou/gitools/internal/ui/helpbindings"
	"github.com/llehouerou/gitools/internal/ui/layout"
	"github.com/llehouerou/gitools/internal/ui/render"
	"github.com/llehouerou/gitools/internal/ui/statuspanel"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width < ui.MinWidth {
		return ""
	}

	panelWidth := layout.PanelWidth(m.Width)

	var body string
	switch {
	case m.Engine.Open():
		body = m.Fuzzybar.View(fuzzybar.Frame{
			Title:     m.Engine.Title(),
			Selection: m.Engine.Selection(),
			Total:     m.Engine.CandidateCount(),
			Hint:      m.hint(keymap.ActionCommit, keymap.ActionClose),
			Width:     panelWidth,
		})
	case !m.Engine.Menu().Hidden():
		body = cheatsheet.Render(m.Engine.MenuTitle(), m.Engine.MenuEntries(), panelWidth)
	default:
		left, right := layout.SplitWidth(panelWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			statuspanel.Render(m.Status, left),
			helpbindings.Render([]string{"global", "menu"}, right),
		)
	}
	if m.Height > 0 {
		body = lipgloss.NewStyle().Height(layout.ContentHeight(m.Height, headerbar.Height)).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerbar.Render(m.Header, m.Width),
		body,
		m.statusLine(),
	)
}

func (m Model) statusLine() string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.Fit(m.ErrorMsg, m.Width))
	case m.StatusMsg != "":
		return s.Success.Render(render.Fit(m.StatusMsg, m.Width))
	}

	if m.Engine.Open() {
		return s.Subtle.Render(render.Fit(m.hint(keymap.ActionMoveDown, keymap.ActionMoveUp), m.Width))
	}
	return s.Subtle.Render(render.Fit(m.hint(keymap.ActionShowMenu, keymap.ActionBack, keymap.ActionQuit), m.Width))
}

// hint lists the first key of each action with its name.
func (m Model) hint(actions ...keymap.Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		keys := m.paletteKeys.KeysFor(a)
		if len(keys) == 0 {
			keys = m.menuKeys.KeysFor(a)
		}
		if len(keys) == 0 {
			continue
		}
		parts = append(parts, keymap.KeyLabel(keys[0])+" "+strings.ReplaceAll(string(a), "_", " "))
	}
	return strings.Join(parts, " · ")
}

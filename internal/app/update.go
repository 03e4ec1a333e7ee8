// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gitools/internal/app/handler"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		r := handler.Chain(msg,
			m.handleQuitKeys,
			m.handlePaletteKeys,
			m.handleMenuKeys,
		)
		return m, r.Cmd
	}

	// Cursor blink and other input messages.
	if m.Engine.Open() {
		return m, m.Fuzzybar.Update(msg)
	}
	return m, nil
}

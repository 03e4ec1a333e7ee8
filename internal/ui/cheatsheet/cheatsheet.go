// Package cheatsheet renders the visible level of the command menu.
package cheatsheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

// gap separates entries on the same row.
const gap = "   "

// Render lays out entries as "key -> name" cells, wrapping rows to width.
// It returns an empty string when there is nothing to show.
func Render(title string, entries []keymap.Entry, width int) string {
	if len(entries) == 0 || width < ui.MinWidth {
		return ""
	}

	s := styles.T().S()
	inner := width - ui.BorderWidth

	var rows []string
	var row strings.Builder
	rowWidth := 0
	for _, e := range entries {
		cell := s.Key.Render(string(e.Key)) + s.Desc.Render(" -> "+e.Name)
		w := lipgloss.Width(cell)

		if rowWidth > 0 && rowWidth+len(gap)+w > inner {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		if rowWidth > 0 {
			row.WriteString(gap)
			rowWidth += len(gap)
		}
		row.WriteString(cell)
		rowWidth += w
	}
	rows = append(rows, row.String())

	content := s.Title.Render(title) + "\n" + strings.Join(rows, "\n")
	return styles.PanelStyle(true).Width(width - ui.BorderSize).Render(content)
}

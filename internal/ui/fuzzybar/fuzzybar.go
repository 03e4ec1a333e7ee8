// Package fuzzybar renders the palette: a query box above the filtered
// candidates and a footer with the match count.
package fuzzybar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/cursor"
	"github.com/llehouerou/gitools/internal/ui/render"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

const (
	prompt      = "> "
	marker      = "> "
	charLimit   = 256
	noMatchText = "No matches"
)

// Frame is everything the palette view needs besides the query box.
type Frame struct {
	Title     string
	Selection cursor.Selection
	Total     int    // candidates before filtering
	Hint      string // key hints shown in the footer
	Width     int
}

// Model owns the query input.
type Model struct {
	input textinput.Model
}

// New creates a closed fuzzybar.
func New() Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Open clears the query, sets the placeholder and focuses the input.
func (m *Model) Open(placeholder string) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

// Close blurs and clears the input.
func (m *Model) Close() {
	m.input.Blur()
	m.input.Reset()
}

// Focused reports whether the input accepts keys.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current query.
func (m Model) Value() string {
	return m.input.Value()
}

// Update forwards a message to the query input.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the palette panel.
func (m *Model) View(f Frame) string {
	if f.Width < ui.MinWidth {
		return ""
	}
	s := styles.T().S()
	inner := f.Width - ui.BorderWidth
	m.input.Width = max(inner-len(prompt)-1, 1)

	lines := make([]string, 0, cursor.VisibleRows+4)
	lines = append(lines, s.Title.Render(render.Fit(f.Title, inner)), m.input.View())
	lines = append(lines, s.Subtle.Render(strings.Repeat("─", inner)))
	lines = append(lines, rows(f.Selection, inner)...)
	lines = append(lines, footer(f, inner))

	return styles.PanelStyle(true).Width(f.Width - ui.BorderSize).Render(strings.Join(lines, "\n"))
}

// rows renders the viewport window, always VisibleRows lines tall.
func rows(sel cursor.Selection, width int) []string {
	s := styles.T().S()
	out := make([]string, 0, cursor.VisibleRows)

	if sel.Len() == 0 {
		out = append(out, s.Muted.Render(render.Fit(noMatchText, width)))
	}

	items := sel.Items()
	start, end := sel.VisibleRange()
	for i := start; i < end; i++ {
		item := items[i]
		if item.Active {
			out = append(out, s.Cursor.Render(marker+render.Fit(item.Text, width-len(marker))))
			continue
		}
		out = append(out, s.Base.Render(strings.Repeat(" ", len(marker))+render.Fit(item.Text, width-len(marker))))
	}

	for len(out) < cursor.VisibleRows {
		out = append(out, "")
	}
	return out
}

func footer(f Frame, width int) string {
	count := humanize.Comma(int64(f.Selection.Len())) + " of " + humanize.Comma(int64(f.Total))
	return styles.T().S().Muted.Render(render.Row(count, f.Hint, width))
}

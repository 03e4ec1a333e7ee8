// Package statuspanel renders the working tree summary: untracked,
// unstaged and staged files, and stash entries.
package statuspanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/gitools/internal/git"
	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/render"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

// MaxEntries is how many paths a section lists before summarizing the rest.
const MaxEntries = 10

const (
	kindWidth = 11 // "typechange" plus a space
	cleanText = "Working tree clean"
)

// Render returns the status panel for the given width.
func Render(st git.Status, width int) string {
	if width < ui.MinWidth {
		return ""
	}
	inner := width - ui.BorderWidth
	s := styles.T().S()

	var sections []string
	if st.Clean() {
		sections = append(sections, s.Success.Render(cleanText))
	}

	if len(st.Untracked) > 0 {
		rows := make([]string, 0, len(st.Untracked))
		for _, p := range st.Untracked {
			rows = append(rows, s.Base.Render(render.Fit(p, inner)))
		}
		sections = append(sections, section("Untracked files", rows, inner))
	}
	if len(st.Unstaged) > 0 {
		sections = append(sections, section("Unstaged files", changeRows(st.Unstaged, s.Warning, inner), inner))
	}
	if len(st.Staged) > 0 {
		sections = append(sections, section("Staged files", changeRows(st.Staged, s.Success, inner), inner))
	}
	if len(st.Stashed) > 0 {
		rows := make([]string, 0, len(st.Stashed))
		for _, e := range st.Stashed {
			rows = append(rows, s.Muted.Render(render.Fit(e, inner)))
		}
		sections = append(sections, section("Stashes", rows, inner))
	}

	return styles.PanelStyle(false).Width(width - ui.BorderSize).Render(strings.Join(sections, "\n\n"))
}

func changeRows(changes []git.Change, kindStyle lipgloss.Style, width int) []string {
	rows := make([]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, kindStyle.Render(render.Fit(c.Kind, kindWidth))+
			styles.T().S().Base.Render(render.Fit(c.Path, width-kindWidth)))
	}
	return rows
}

// section renders a heading and at most MaxEntries rows.
func section(title string, rows []string, width int) string {
	t := styles.T()
	heading := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(render.Fit(title+" ("+humanize.Comma(int64(len(rows)))+")", width))

	shown := rows
	if len(rows) > MaxEntries {
		shown = append(rows[:MaxEntries:MaxEntries],
			t.S().Subtle.Render(render.Fit("… and "+humanize.Comma(int64(len(rows)-MaxEntries))+" more", width)))
	}
	return heading + "\n" + strings.Join(shown, "\n")
}

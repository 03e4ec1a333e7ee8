// Package headerbar renders the repository summary shown at the top.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gitools/internal/git"
	"github.com/llehouerou/gitools/internal/icons"
	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

// Height is the fixed height of the header (head, remote, tag rows).
const Height = 3

const labelWidth = 8

// Render returns the header for the given width.
func Render(h git.Header, width int) string {
	if width < ui.MinWidth {
		return ""
	}

	t := styles.T()
	label := lipgloss.NewStyle().Foreground(t.FgMuted).Width(labelWidth)

	rows := []string{
		row(label.Render("Head:"), lipgloss.NewStyle().Foreground(t.Accent).Render(icons.FormatBranch(h.Head)), h.HeadSubject),
		row(label.Render("Remote:"), lipgloss.NewStyle().Foreground(t.Success).Render(icons.FormatRemote(h.Upstream)), h.UpstreamSubject),
		row(label.Render("Tag:"), lipgloss.NewStyle().Foreground(t.Warning).Render(icons.FormatTag(h.Tag)), ""),
	}

	for i, r := range rows {
		rows[i] = lipgloss.NewStyle().MaxWidth(width).Render(r)
	}
	return strings.Join(rows, "\n")
}

func row(label, name, subject string) string {
	if subject == "" {
		return label + name
	}
	return label + name + "  " + styles.T().S().Muted.Render(firstLine(subject))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// Package helpbindings renders the key reference shown while no menu is open.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/ui"
	"github.com/llehouerou/gitools/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"menu",
	"palette",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":  "Global",
	"menu":    "Command Menu",
	"palette": "Palette",
}

// Render lists the bindings of the given contexts grouped by context, in a
// panel of the given width.
func Render(contexts []string, width int) string {
	if width < ui.MinWidth {
		return ""
	}

	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			bindings = append(bindings, keymap.ByContext(ctx)...)
		}
	}
	if len(bindings) == 0 {
		return ""
	}

	return styles.PanelStyle(false).Width(width - ui.BorderSize).Render(buildContent(bindings))
}

func buildContent(bindings []keymap.Binding) string {
	t := styles.T()
	keyStyle := t.S().Key
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	separatorStyle := t.S().Subtle

	// Find max key width for alignment
	maxKeyWidth := 0
	for _, b := range bindings {
		maxKeyWidth = max(maxKeyWidth, len(keyString(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := keyString(b)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-len(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func keyString(b keymap.Binding) string {
	labels := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		labels = append(labels, keymap.KeyLabel(k))
	}
	return strings.Join(labels, ", ")
}

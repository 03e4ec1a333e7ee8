package cheatsheet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/ui/testutil"
)

var entries = []keymap.Entry{
	{Key: 'b', Name: "Branch"},
	{Key: 't', Name: "Tag"},
}

func TestRender(t *testing.T) {
	out := Render("Commands", entries, 60)

	assert.True(t, testutil.ContainsLine(out, "Commands"))
	line := testutil.FindLine(out, "b -> Branch")
	assert.Contains(t, line, "t -> Tag", "entries share a row when they fit")
}

func TestRender_Wraps(t *testing.T) {
	many := make([]keymap.Entry, 0, 10)
	for i := range 10 {
		many = append(many, keymap.Entry{Key: byte('a' + i), Name: strings.Repeat("x", 8)})
	}

	out := Render("Commands", many, 30)
	first := testutil.LineIndex(out, "a -> ")
	last := testutil.LineIndex(out, "j -> ")
	assert.Greater(t, last, first)

	for line := range strings.SplitSeq(testutil.StripANSI(out), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30, "line %q", line)
	}
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render("Commands", nil, 60))
	assert.Empty(t, Render("Commands", entries, 5))
}

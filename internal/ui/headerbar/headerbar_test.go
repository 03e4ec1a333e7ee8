package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/gitools/internal/git"
	"github.com/llehouerou/gitools/internal/icons"
	"github.com/llehouerou/gitools/internal/ui/testutil"
)

var header = git.Header{
	Head:            "main",
	HeadSubject:     "Add palette\n\nlong body",
	Upstream:        "origin/main",
	UpstreamSubject: "Initial commit",
	Tag:             "v1.2.0",
}

func TestRender(t *testing.T) {
	out := Render(header, 80)

	if got := testutil.CountLines(out); got != Height {
		t.Errorf("lines = %d, want %d", got, Height)
	}

	head := testutil.FindLine(out, "Head:")
	if head == "" || !strings.Contains(head, "main") || !strings.Contains(head, "Add palette") {
		t.Errorf("head row = %q", head)
	}
	if strings.Contains(testutil.StripANSI(out), "long body") {
		t.Error("only the first line of a subject is shown")
	}
	if !testutil.ContainsLine(out, "origin/main  Initial commit") {
		t.Errorf("remote row missing, got:\n%s", testutil.StripANSI(out))
	}
	if !testutil.ContainsLine(out, "v1.2.0") {
		t.Error("tag row missing")
	}
}

func TestRender_Placeholders(t *testing.T) {
	out := Render(git.Header{Head: "abc1234", Upstream: git.NoUpstream, UpstreamSubject: "-", Tag: git.NoTags}, 80)

	if !testutil.ContainsLine(out, git.NoUpstream) || !testutil.ContainsLine(out, git.NoTags) {
		t.Errorf("placeholders missing, got:\n%s", testutil.StripANSI(out))
	}
}

func TestRender_Icons(t *testing.T) {
	icons.Init("unicode")
	defer icons.Init("none")

	out := Render(header, 80)
	if !testutil.ContainsLine(out, icons.FormatBranch("main")) {
		t.Errorf("branch icon missing, got:\n%s", testutil.StripANSI(out))
	}
	if !testutil.ContainsLine(out, icons.FormatTag("v1.2.0")) {
		t.Errorf("tag icon missing, got:\n%s", testutil.StripANSI(out))
	}
}

func TestRender_Truncates(t *testing.T) {
	out := Render(header, 24)
	for i := range Height {
		line := testutil.FindLine(out, []string{"Head:", "Remote:", "Tag:"}[i])
		if w := len([]rune(line)); w > 24 {
			t.Errorf("row %d is %d cells wide, want <= 24: %q", i, w, line)
		}
	}
	if Render(header, 5) != "" {
		t.Error("expected empty header when too narrow")
	}
}


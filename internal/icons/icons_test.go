//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		style  string
		format func(string) string
		name   string
		want   string
	}{
		{"none", FormatBranch, "main", "main"},
		{"nerd", FormatBranch, "main", "\ue725 main"},
		{"unicode", FormatBranch, "main", "⎇ main"},
		{"none", FormatRemote, "origin/main", "origin/main"},
		{"nerd", FormatRemote, "origin/main", "\uf0c2 origin/main"},
		{"unicode", FormatRemote, "origin/main", "☁ origin/main"},
		{"none", FormatTag, "v1.0.0", "v1.0.0"},
		{"nerd", FormatTag, "v1.0.0", "\uf02b v1.0.0"},
		{"unicode", FormatTag, "v1.0.0", "⚑ v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := tt.format(tt.name); got != tt.want {
				t.Errorf("format(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	Init("none")
}

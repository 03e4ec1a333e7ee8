package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Branch string
	Remote string
	Tag    string
}

var (
	nerdIcons = Icons{
		Branch: "\ue725 ", // nf-dev-git_branch
		Remote: "\uf0c2 ", // nf-fa-cloud
		Tag:    "\uf02b ", // nf-fa-tag
	}

	unicodeIcons = Icons{
		Branch: "⎇ ",
		Remote: "☁ ",
		Tag:    "⚑ ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatBranch prefixes a branch name or commit with the branch icon.
func FormatBranch(name string) string {
	return current.Branch + name
}

// FormatRemote prefixes an upstream name with the remote icon.
func FormatRemote(name string) string {
	return current.Remote + name
}

// FormatTag prefixes a tag name with the tag icon.
func FormatTag(name string) string {
	return current.Tag + name
}

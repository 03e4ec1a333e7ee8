//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"

	"github.com/llehouerou/gitools/internal/keymap"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpBranchCheckout,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpBranchCheckout,
			err:      errors.New("local changes would be overwritten"),
			expected: "Failed to checkout branch: local changes would be overwritten",
		},
		{
			name:     "source operation",
			op:       OpListTags,
			err:      errors.New("not a git repository"),
			expected: "Failed to list tags: not a git repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		err      error
		expected string
	}{
		{"nil error", "b1", nil, ""},
		{"with context", "b1", errors.New("not fully merged"), "Failed to delete branch 'b1': not fully merged"},
		{"empty context", "", errors.New("not fully merged"), "Failed to delete branch: not fully merged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(OpBranchDelete, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestForCommand(t *testing.T) {
	for _, cmd := range keymap.Commands {
		if op := ForCommand(cmd); op == Op(cmd) {
			t.Errorf("ForCommand(%q) has no operation", cmd)
		}
	}
	if op := ForCommand("custom"); op != "custom" {
		t.Errorf("ForCommand(custom) = %q", op)
	}
}

func TestSourceFor(t *testing.T) {
	if op := SourceFor(keymap.CommandTagCheckout); op != OpListTags {
		t.Errorf("SourceFor(tag_checkout) = %q", op)
	}
	if op := SourceFor(keymap.CommandBranchDelete); op != OpListBranches {
		t.Errorf("SourceFor(branch_delete) = %q", op)
	}
}

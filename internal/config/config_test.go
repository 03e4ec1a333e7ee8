//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/gitools/internal/keymap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.NotEmpty(t, paths)

	// Last path should be local config.toml
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(paths[0])))
}

func TestLoadFile_Keymap(t *testing.T) {
	path := writeConfig(t, `
icons = "nerd"

[[keymap]]
key = "b"
name = "Branch"

  [[keymap.next]]
  key = "c"
  name = "Checkout"
  command = "branch_checkout"

  [[keymap.next]]
  key = "x"
  name = "Delete"
  command = "branch_delete"

[[keymap]]
key = "t"
name = "Tag"

  [[keymap.next]]
  key = "c"
  name = "Checkout"
  command = "tag_checkout"
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nerd", cfg.Icons)
	require.Len(t, cfg.Keymap, 2)
	assert.Equal(t, "Branch", cfg.Keymap[0].Name)
	require.Len(t, cfg.Keymap[0].Next, 2)
	assert.Equal(t, "branch_delete", cfg.Keymap[0].Next[1].Command)

	tree, err := cfg.Tree()
	require.NoError(t, err)

	leaf, ok := tree.Leaf('b', 'x')
	require.True(t, ok)
	assert.Equal(t, keymap.CommandBranchDelete, leaf.Command)
	leaf, ok = tree.Leaf('t', 'c')
	require.True(t, ok)
	assert.Equal(t, keymap.CommandTagCheckout, leaf.Command)
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Keymap)

	tree, err := cfg.Tree()
	require.NoError(t, err)
	_, ok := tree.Leaf('b', 'c')
	assert.True(t, ok, "default keymap is used")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = LoadFile(writeConfig(t, "[[keymap]\nkey ="))
	require.Error(t, err)
}

func TestTree_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		keymap []NodeConfig
	}{
		{
			name:   "multi-character root key",
			keymap: []NodeConfig{{Key: "br", Name: "Branch", Next: []LeafConfig{{"c", "Checkout", "branch_checkout"}}}},
		},
		{
			name:   "empty leaf key",
			keymap: []NodeConfig{{Key: "b", Name: "Branch", Next: []LeafConfig{{"", "Checkout", "branch_checkout"}}}},
		},
		{
			name:   "space key",
			keymap: []NodeConfig{{Key: " ", Name: "Branch", Next: []LeafConfig{{"c", "Checkout", "branch_checkout"}}}},
		},
		{
			name:   "unknown command",
			keymap: []NodeConfig{{Key: "b", Name: "Branch", Next: []LeafConfig{{"c", "Checkout", "rebase"}}}},
		},
		{
			name: "duplicate root key",
			keymap: []NodeConfig{
				{Key: "b", Name: "Branch", Next: []LeafConfig{{"c", "Checkout", "branch_checkout"}}},
				{Key: "b", Name: "Again", Next: []LeafConfig{{"c", "Checkout", "branch_checkout"}}},
			},
		},
		{
			name:   "no leaves",
			keymap: []NodeConfig{{Key: "b", Name: "Branch"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Keymap: tt.keymap}
			_, err := cfg.Tree()
			assert.ErrorIs(t, err, keymap.ErrInvalidTree)
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input   string
		want    byte
		wantErr bool
	}{
		{"b", 'b', false},
		{"B", 'B', false},
		{"?", '?', false},
		{"", 0, true},
		{"ab", 0, true},
		{" ", 0, true},
		{"\t", 0, true},
		{"é", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

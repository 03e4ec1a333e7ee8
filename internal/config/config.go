package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/gitools/internal/keymap"
)

const appName = "gitools"

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Keymap is the two-level command menu. Empty means keymap.Default.
	Keymap []NodeConfig `koanf:"keymap"`
}

// NodeConfig is a first-level menu entry.
type NodeConfig struct {
	Key  string       `koanf:"key"`  // single byte, e.g. "b"
	Name string       `koanf:"name"` // shown in the cheat sheet
	Next []LeafConfig `koanf:"next"`
}

// LeafConfig is a second-level menu entry.
type LeafConfig struct {
	Key     string `koanf:"key"`
	Name    string `koanf:"name"`
	Command string `koanf:"command"` // e.g. "branch_checkout"
}

// Load reads every existing config file, later files overriding earlier ones.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	return unmarshal(k)
}

// LoadFile reads a single config file.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/gitools/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// Tree validates the configured keymap and builds the command tree.
func (c *Config) Tree() (*keymap.Tree, error) {
	if len(c.Keymap) == 0 {
		return keymap.NewTree(keymap.Default)
	}

	nodes := make([]keymap.Node, 0, len(c.Keymap))
	for _, nc := range c.Keymap {
		key, err := parseKey(nc.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: keymap %q: %w", keymap.ErrInvalidTree, nc.Name, err)
		}

		node := keymap.Node{Key: key, Name: nc.Name}
		for _, lc := range nc.Next {
			lkey, err := parseKey(lc.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: keymap %q > %q: %w", keymap.ErrInvalidTree, nc.Name, lc.Name, err)
			}
			cmd, err := keymap.ParseCommand(lc.Command)
			if err != nil {
				return nil, fmt.Errorf("%w: keymap %q > %q: %w", keymap.ErrInvalidTree, nc.Name, lc.Name, err)
			}
			node.Children = append(node.Children, keymap.Leaf{Key: lkey, Name: lc.Name, Command: cmd})
		}
		nodes = append(nodes, node)
	}

	return keymap.NewTree(nodes)
}

// parseKey accepts exactly one printable, non-space byte.
func parseKey(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("key %q must be a single character", s)
	}
	if s[0] <= ' ' || s[0] > '~' {
		return 0, fmt.Errorf("key %q must be printable", s)
	}
	return s[0], nil
}

// LogFile returns the path of the log file, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

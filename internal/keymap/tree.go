package keymap

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTree is wrapped by every NewTree validation failure.
var ErrInvalidTree = errors.New("invalid keymap")

// Leaf is a second-level entry. Only leaves carry commands.
type Leaf struct {
	Key     byte
	Name    string
	Command Command
}

// Node is a first-level entry grouping leaves under one key.
type Node struct {
	Key      byte
	Name     string
	Children []Leaf
}

// Entry is a key and display name, used to list a menu level.
type Entry struct {
	Key  byte
	Name string
}

// Tree is the immutable two-level keymap.
type Tree struct {
	root   map[byte]node
	sorted []Entry
}

type node struct {
	name     string
	children map[byte]Leaf
	sorted   []Entry
}

// NewTree validates nodes and builds the lookup tree. Keys must be unique
// within each level, every node must have at least one leaf and every leaf
// must carry a known command.
func NewTree(nodes []Node) (*Tree, error) {
	t := &Tree{root: make(map[byte]node, len(nodes))}

	for _, n := range nodes {
		if _, dup := t.root[n.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidTree, n.Key)
		}
		if len(n.Children) == 0 {
			return nil, fmt.Errorf("%w: %q (%s) has no commands", ErrInvalidTree, n.Key, n.Name)
		}

		nd := node{name: n.Name, children: make(map[byte]Leaf, len(n.Children))}
		for _, l := range n.Children {
			if _, dup := nd.children[l.Key]; dup {
				return nil, fmt.Errorf("%w: duplicate key %q under %q", ErrInvalidTree, l.Key, n.Key)
			}
			if _, err := ParseCommand(string(l.Command)); err != nil {
				return nil, fmt.Errorf("%w: %q %q: %w", ErrInvalidTree, n.Key, l.Key, err)
			}
			nd.children[l.Key] = l
			nd.sorted = append(nd.sorted, Entry{Key: l.Key, Name: l.Name})
		}
		sortEntries(nd.sorted)

		t.root[n.Key] = nd
		t.sorted = append(t.sorted, Entry{Key: n.Key, Name: n.Name})
	}
	sortEntries(t.sorted)

	return t, nil
}

// HasRoot reports whether key is a first-level entry.
func (t *Tree) HasRoot(key byte) bool {
	_, ok := t.root[key]
	return ok
}

// Leaf looks up the leaf reached by parent then key.
func (t *Tree) Leaf(parent, key byte) (Leaf, bool) {
	n, ok := t.root[parent]
	if !ok {
		return Leaf{}, false
	}
	l, ok := n.children[key]
	return l, ok
}

// RootEntries lists the first level in key order.
func (t *Tree) RootEntries() []Entry {
	return t.sorted
}

// ChildEntries lists the leaves under parent in key order, or nil.
func (t *Tree) ChildEntries(parent byte) []Entry {
	return t.root[parent].sorted
}

// Name returns the display name of a first-level entry.
func (t *Tree) Name(key byte) string {
	return t.root[key].name
}

func sortEntries(e []Entry) {
	slices.SortFunc(e, func(a, b Entry) int { return int(a.Key) - int(b.Key) })
}

package dispatch

import "github.com/llehouerou/gitools/internal/keymap"

// Result is emitted when a character reaches a leaf.
type Result struct {
	Command keymap.Command
	Name    string
}

// Dispatcher resolves events against a keymap tree.
type Dispatcher struct {
	tree *keymap.Tree
}

// New creates a dispatcher over a validated tree.
func New(tree *keymap.Tree) Dispatcher {
	return Dispatcher{tree: tree}
}

// Dispatch applies ev to s and returns the next state. fired is true when a
// leaf was reached, in which case res holds the command and the menu is
// hidden. Events with no transition return s unchanged.
//
// A character that matches a leaf is consumed by the leaf: the root map is
// not re-tested in the same step. Only when no leaf matches does a root hit
// switch to that entry's sub-menu.
func (d Dispatcher) Dispatch(s State, ev Event) (next State, res Result, fired bool) {
	switch ev.Kind {
	case KindShowMenu:
		s.hidden = false
		return s, Result{}, false

	case KindCancel:
		if s.hidden {
			return s, Result{}, false
		}
		s = s.atLevel1()
		s.hidden = true
		return s, Result{}, false

	case KindBack:
		if s.hidden {
			return s, Result{}, false
		}
		if s.level == Level2 {
			return s.atLevel1(), Result{}, false
		}
		s.hidden = true
		return s, Result{}, false

	case KindCharacter:
		if s.hidden {
			return s, Result{}, false
		}
		if parent, ok := s.Parent(); ok {
			if leaf, ok := d.tree.Leaf(parent, ev.Char); ok {
				s.hidden = true
				return s, Result{Command: leaf.Command, Name: leaf.Name}, true
			}
		}
		if d.tree.HasRoot(ev.Char) {
			return s.atLevel2(ev.Char), Result{}, false
		}
	}

	return s, Result{}, false
}

// Reset returns s hidden at Level1.
func (d Dispatcher) Reset(s State) State {
	s = s.atLevel1()
	s.hidden = true
	return s
}

// Entries lists the entries of the level s is at, or nil while hidden.
func (d Dispatcher) Entries(s State) []keymap.Entry {
	if s.hidden {
		return nil
	}
	if parent, ok := s.Parent(); ok {
		return d.tree.ChildEntries(parent)
	}
	return d.tree.RootEntries()
}

// Title returns the heading for the level s is at.
func (d Dispatcher) Title(s State) string {
	if parent, ok := s.Parent(); ok {
		return d.tree.Name(parent)
	}
	return "Commands"
}

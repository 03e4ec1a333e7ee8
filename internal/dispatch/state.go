// Package dispatch walks the two-level keymap tree in response to menu events.
//
// The machine is a pure function over an explicit State value: callers hold
// the state and pass it into every Dispatch call.
package dispatch

import "fmt"

// Level is the depth of the menu currently shown.
type Level int

const (
	Level1 Level = iota + 1
	Level2
)

// State is the menu state. The zero value is not valid; use Initial.
type State struct {
	hidden bool
	level  Level
	parent byte // set only at Level2
}

// Initial returns the hidden menu at Level1.
func Initial() State {
	return State{hidden: true, level: Level1}
}

// Hidden reports whether the menu is hidden.
func (s State) Hidden() bool { return s.hidden }

// Level returns the current level, kept while hidden.
func (s State) Level() Level { return s.level }

// Parent returns the selected first-level key when at Level2.
func (s State) Parent() (byte, bool) {
	if s.level != Level2 {
		return 0, false
	}
	return s.parent, true
}

func (s State) String() string {
	var lvl string
	switch s.level {
	case Level2:
		lvl = fmt.Sprintf("Level2(%q)", s.parent)
	default:
		lvl = "Level1"
	}
	if s.hidden {
		return "Hidden/" + lvl
	}
	return lvl
}

func (s State) atLevel1() State {
	s.level = Level1
	s.parent = 0
	return s
}

func (s State) atLevel2(parent byte) State {
	s.level = Level2
	s.parent = parent
	return s
}

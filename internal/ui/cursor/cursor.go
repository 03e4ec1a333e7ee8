// Package cursor tracks the single active match of a filtered list and keeps
// it inside a fixed-height viewport.
package cursor

import (
	"errors"
	"slices"

	"github.com/llehouerou/gitools/internal/search"
)

// Scroll thresholds, tuned to VisibleRows.
const (
	// VisibleRows is the number of match rows the viewport shows.
	VisibleRows = 8

	// AdvanceThreshold is the active index from which moving down scrolls
	// the viewport one row down.
	AdvanceThreshold = 8

	// RetreatThreshold is the active index up to which moving up scrolls
	// the viewport one row up.
	RetreatThreshold = 12
)

// ErrNotReady is returned by operations that need an active item when the
// filtered list is empty.
var ErrNotReady = errors.New("no active item")

// Scroll is the viewport request produced by a move.
type Scroll int

const (
	ScrollNone Scroll = iota
	ScrollDown
	ScrollUp
)

// Selection owns the filtered matches, the active index and the viewport.
// While the list is non-empty exactly one match is active and its index is
// Active().
type Selection struct {
	items    []search.Match
	active   int
	offset   int  // first visible row
	scrolled bool // a downward scroll moved the viewport since the last reset
}

// New creates an empty selection.
func New() Selection {
	return Selection{}
}

// SetItems adopts a fresh filter result. The filter marks its first match
// active, so the cursor returns to index 0 and the viewport to the top.
func (s *Selection) SetItems(items []search.Match) {
	s.items = items
	s.active = 0
	s.offset = 0
	s.scrolled = false
}

// Items returns a copy of the current matches.
func (s Selection) Items() []search.Match {
	return slices.Clone(s.items)
}

// Clone returns a selection that shares no state with s. Moving the clone
// leaves s untouched.
func (s Selection) Clone() Selection {
	s.items = slices.Clone(s.items)
	return s
}

// Len returns the number of matches.
func (s Selection) Len() int {
	return len(s.items)
}

// Active returns the active index. Meaningless when Len() is 0.
func (s Selection) Active() int {
	return s.active
}

// Scrolled reports whether the viewport has been scrolled.
func (s Selection) Scrolled() bool {
	return s.scrolled
}

// Offset returns the first visible row.
func (s Selection) Offset() int {
	return s.offset
}

// MoveDown activates the next match. It is a no-op on the last match or an
// empty list.
func (s *Selection) MoveDown() Scroll {
	if len(s.items) == 0 || s.active+1 == len(s.items) {
		return ScrollNone
	}
	s.activate(s.active + 1)

	if s.active < AdvanceThreshold {
		return ScrollNone
	}
	if moved := s.scroll(1); !s.scrolled {
		s.scrolled = moved
	}
	return ScrollDown
}

// MoveUp activates the previous match. It is a no-op on the first match or
// an empty list.
func (s *Selection) MoveUp() Scroll {
	if len(s.items) == 0 || s.active == 0 {
		return ScrollNone
	}
	s.activate(s.active - 1)

	if s.active > RetreatThreshold {
		return ScrollNone
	}
	s.scrolled = s.scroll(-1)
	return ScrollUp
}

// Reset activates the first match and scrolls back to the top.
func (s *Selection) Reset() error {
	if len(s.items) == 0 {
		return ErrNotReady
	}
	s.activate(0)
	s.offset = 0
	s.scrolled = false
	return nil
}

// Commit returns the active match's text.
func (s Selection) Commit() (string, error) {
	if len(s.items) == 0 {
		return "", ErrNotReady
	}
	return s.items[s.active].Text, nil
}

// VisibleRange returns the range of visible indices [start, end).
func (s Selection) VisibleRange() (start, end int) {
	if len(s.items) == 0 {
		return 0, 0
	}
	return s.offset, min(s.offset+VisibleRows, len(s.items))
}

func (s *Selection) activate(i int) {
	s.items[s.active].Active = false
	s.items[i].Active = true
	s.active = i
}

// scroll moves the viewport by delta rows and reports whether it moved.
func (s *Selection) scroll(delta int) bool {
	next := clamp(s.offset+delta, max(len(s.items)-VisibleRows, 0))
	moved := next != s.offset
	s.offset = next
	return moved
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Package palette is the command palette engine: key samples are debounced,
// walked through the keymap menu, and a reached command opens a filtered,
// cursor-tracked candidate list whose active item is committed to an executor.
//
// Every method runs to completion on the caller's goroutine. The engine is
// not safe for concurrent use.
package palette

import (
	"fmt"

	"github.com/llehouerou/gitools/internal/debounce"
	"github.com/llehouerou/gitools/internal/dispatch"
	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/search"
	"github.com/llehouerou/gitools/internal/ui/cursor"
)

// Source provides the candidates for a command. It may return none.
type Source interface {
	Candidates(cmd keymap.Command) ([]string, error)
}

// Executor runs a command against the chosen candidate.
type Executor interface {
	Execute(cmd keymap.Command, choice string) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func(cmd keymap.Command) ([]string, error)

// Candidates implements Source.
func (f SourceFunc) Candidates(cmd keymap.Command) ([]string, error) { return f(cmd) }

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(cmd keymap.Command, choice string) error

// Execute implements Executor.
func (f ExecutorFunc) Execute(cmd keymap.Command, choice string) error { return f(cmd, choice) }

// Config holds the engine's collaborators.
type Config struct {
	Tree     *keymap.Tree
	Source   Source
	Executor Executor

	// Keys maps a sampled key id to the menu event its press produces.
	// The debouncer is sized to len(Keys).
	Keys []dispatch.Event
}

// Outcome describes what a handled event did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeMenu            // menu state changed
	OutcomeOpened          // a command was reached and the palette opened
)

// SourceError reports that a command's candidates could not be loaded.
type SourceError struct {
	Command keymap.Command
	Err     error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load candidates for %s: %v", e.Command, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Choice is a committed selection.
type Choice struct {
	Command keymap.Command
	Text    string
}

// Engine is the command palette state.
type Engine struct {
	dispatcher dispatch.Dispatcher
	menu       dispatch.State
	shaper     *debounce.Shaper
	keys       []dispatch.Event
	source     Source
	executor   Executor

	open       bool
	command    keymap.Command
	title      string
	candidates []string
	query      string
	selection  cursor.Selection
}

// New creates an engine with a hidden menu and a closed palette.
func New(cfg Config) *Engine {
	return &Engine{
		dispatcher: dispatch.New(cfg.Tree),
		menu:       dispatch.Initial(),
		shaper:     debounce.New(len(cfg.Keys)),
		keys:       cfg.Keys,
		source:     cfg.Source,
		executor:   cfg.Executor,
		selection:  cursor.New(),
	}
}

// Sample feeds one raw key reading from a polled input such as a keypad
// scan; terminal hosts deliver whole key events and call Handle instead.
// A debounced press is handled as the key's menu event; everything else is
// ignored.
func (e *Engine) Sample(key int, pressed bool) (Outcome, error) {
	if e.shaper.Sample(key, pressed) != debounce.EdgePress {
		return OutcomeIgnored, nil
	}
	return e.Handle(e.keys[key])
}

// Handle applies a menu event. Menu events are ignored while the palette is
// open. When the event reaches a leaf, the command's candidates are loaded
// and the palette opens with an empty query. If loading fails the palette
// stays closed and the menu is reset.
func (e *Engine) Handle(ev dispatch.Event) (Outcome, error) {
	if e.open {
		return OutcomeIgnored, nil
	}

	prev := e.menu
	next, res, fired := e.dispatcher.Dispatch(e.menu, ev)
	e.menu = next
	if !fired {
		if next == prev {
			return OutcomeIgnored, nil
		}
		return OutcomeMenu, nil
	}

	candidates, err := e.source.Candidates(res.Command)
	if err != nil {
		e.menu = e.dispatcher.Reset(e.menu)
		return OutcomeMenu, &SourceError{Command: res.Command, Err: err}
	}

	e.open = true
	e.command = res.Command
	e.title = res.Name
	e.candidates = candidates
	e.SetQuery("")
	return OutcomeOpened, nil
}

// SetQuery re-filters the candidates. It does nothing while closed.
func (e *Engine) SetQuery(q string) {
	if !e.open {
		return
	}
	e.query = q
	e.selection.SetItems(search.Filter(e.candidates, q))
}

// MoveDown activates the next match.
func (e *Engine) MoveDown() cursor.Scroll {
	return e.selection.MoveDown()
}

// MoveUp activates the previous match.
func (e *Engine) MoveUp() cursor.Scroll {
	return e.selection.MoveUp()
}

// Commit hands the active match to the executor, then closes the palette.
// With no match it returns cursor.ErrNotReady and the palette stays open.
// An executor failure is returned alongside the choice; the palette is
// closed either way.
func (e *Engine) Commit() (Choice, error) {
	if !e.open {
		return Choice{}, cursor.ErrNotReady
	}
	text, err := e.selection.Commit()
	if err != nil {
		return Choice{}, err
	}

	choice := Choice{Command: e.command, Text: text}
	execErr := e.executor.Execute(choice.Command, choice.Text)
	e.Close()

	if execErr != nil {
		return choice, fmt.Errorf("%s %q: %w", choice.Command, choice.Text, execErr)
	}
	return choice, nil
}

// Close dismisses the palette and resets the menu to its first level.
func (e *Engine) Close() {
	e.open = false
	e.command = ""
	e.title = ""
	e.candidates = nil
	e.query = ""
	e.selection.SetItems(nil)
	e.menu = e.dispatcher.Reset(e.menu)
}

// Open reports whether the palette is showing.
func (e *Engine) Open() bool { return e.open }

// Menu returns the menu state.
func (e *Engine) Menu() dispatch.State { return e.menu }

// MenuEntries lists the entries of the visible menu level.
func (e *Engine) MenuEntries() []keymap.Entry { return e.dispatcher.Entries(e.menu) }

// MenuTitle returns the heading of the current menu level.
func (e *Engine) MenuTitle() string { return e.dispatcher.Title(e.menu) }

// Command returns the command the palette was opened for.
func (e *Engine) Command() keymap.Command { return e.command }

// Title returns the display name of the command the palette was opened for.
func (e *Engine) Title() string { return e.title }

// Query returns the current query.
func (e *Engine) Query() string { return e.query }

// CandidateCount returns how many candidates the source provided.
func (e *Engine) CandidateCount() int { return len(e.candidates) }

// Selection returns a copy of the current matches and cursor. Moving the
// copy does not move the engine's cursor.
func (e *Engine) Selection() cursor.Selection { return e.selection.Clone() }

// internal/app/handlers.go
package app

import (
	"errors"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gitools/internal/app/handler"
	"github.com/llehouerou/gitools/internal/dispatch"
	"github.com/llehouerou/gitools/internal/errmsg"
	"github.com/llehouerou/gitools/internal/keymap"
	"github.com/llehouerou/gitools/internal/palette"
	"github.com/llehouerou/gitools/internal/ui/cursor"
)

// handleQuitKeys handles ctrl+c.
func (m *Model) handleQuitKeys(msg tea.KeyMsg) handler.Result {
	if m.menuKeys.Resolve(msg.String()) != keymap.ActionQuit {
		return handler.NotHandled
	}
	return handler.Handled(tea.Quit)
}

// handlePaletteKeys handles movement, commit and close while the palette is
// open. Any other key edits the query.
func (m *Model) handlePaletteKeys(msg tea.KeyMsg) handler.Result {
	if !m.Engine.Open() {
		return handler.NotHandled
	}

	switch m.paletteKeys.Resolve(msg.String()) {
	case keymap.ActionMoveDown:
		m.Engine.MoveDown()
		return handler.HandledNoCmd
	case keymap.ActionMoveUp:
		m.Engine.MoveUp()
		return handler.HandledNoCmd
	case keymap.ActionCommit:
		m.commit()
		return handler.HandledNoCmd
	case keymap.ActionClose:
		m.Engine.Close()
		m.Fuzzybar.Close()
		return handler.HandledNoCmd
	}

	prev := m.Fuzzybar.Value()
	cmd := m.Fuzzybar.Update(msg)
	if q := m.Fuzzybar.Value(); q != prev {
		m.Engine.SetQuery(q)
	}
	return handler.Handled(cmd)
}

// handleMenuKeys turns keys into menu events while the palette is closed.
func (m *Model) handleMenuKeys(msg tea.KeyMsg) handler.Result {
	ev, ok := m.menuEvent(msg)
	if !ok {
		return handler.NotHandled
	}
	if ev.Kind == dispatch.KindShowMenu {
		m.ErrorMsg = ""
		m.StatusMsg = ""
	}

	out, err := m.Engine.Handle(ev)
	if err != nil {
		var srcErr *palette.SourceError
		if errors.As(err, &srcErr) {
			m.ErrorMsg = errmsg.Format(errmsg.SourceFor(srcErr.Command), srcErr.Err)
		} else {
			m.ErrorMsg = err.Error()
		}
		m.logger.Error("load candidates failed", "err", err)
		return handler.HandledNoCmd
	}

	if out == palette.OutcomeOpened {
		m.logger.Debug("palette opened",
			"command", m.Engine.Command(),
			"candidates", m.Engine.CandidateCount())
		return handler.Handled(m.Fuzzybar.Open(m.Engine.Command().Prompt()))
	}
	return handler.HandledNoCmd
}

func (m *Model) menuEvent(msg tea.KeyMsg) (dispatch.Event, bool) {
	switch m.menuKeys.Resolve(msg.String()) {
	case keymap.ActionShowMenu:
		return dispatch.ShowMenu(), true
	case keymap.ActionCancel:
		return dispatch.Cancel(), true
	case keymap.ActionBack:
		return dispatch.Back(), true
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] < utf8.RuneSelf {
		return dispatch.Character(byte(msg.Runes[0])), true
	}
	return dispatch.Event{}, false
}

// commit runs the command on the active match and refreshes the header and
// status.
func (m *Model) commit() {
	title := m.Engine.Title()
	choice, err := m.Engine.Commit()
	if errors.Is(err, cursor.ErrNotReady) {
		return
	}
	m.Fuzzybar.Close()

	if err != nil {
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}
		m.ErrorMsg = errmsg.FormatWith(errmsg.ForCommand(choice.Command), choice.Text, cause)
		m.StatusMsg = ""
		m.logger.Error("command failed",
			"command", choice.Command,
			"choice", choice.Text,
			"err", err)
	} else {
		m.ErrorMsg = ""
		m.StatusMsg = title + " " + choice.Text
		m.logger.Info("command done", "command", choice.Command, "choice", choice.Text)
	}

	m.refreshRepo()
}

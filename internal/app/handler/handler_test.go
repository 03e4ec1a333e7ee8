package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandled(t *testing.T) {
	r := Handled(tea.Quit)
	if !r.Handled {
		t.Error("Handled(cmd).Handled should be true")
	}
	if r.Cmd == nil {
		t.Error("Handled(cmd).Cmd should be set")
	}
}

func TestChain_StopsAtFirstHandler(t *testing.T) {
	var calls []string
	record := func(name string, r Result) Handler {
		return func(tea.KeyMsg) Result {
			calls = append(calls, name)
			return r
		}
	}

	r := Chain(tea.KeyMsg{Type: tea.KeyEnter},
		record("first", NotHandled),
		record("second", HandledNoCmd),
		record("third", HandledNoCmd),
	)

	if !r.Handled {
		t.Error("chain should report handled")
	}
	if len(calls) != 2 || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestChain_NoneHandled(t *testing.T) {
	r := Chain(tea.KeyMsg{Type: tea.KeyEnter},
		func(tea.KeyMsg) Result { return NotHandled },
	)
	if r.Handled {
		t.Error("chain should report not handled")
	}
}

// Package handler provides a result type and chain function for key handlers.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// HandledNoCmd is returned by handlers that consume the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a key message.
type Handler func(msg tea.KeyMsg) Result

// Chain offers msg to each handler in order until one handles it.
func Chain(msg tea.KeyMsg, handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return r
		}
	}
	return NotHandled
}

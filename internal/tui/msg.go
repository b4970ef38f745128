package tui

import "github.com/runoshun/git-todo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStateChanged carries the view after a use case ran.
type MsgStateChanged struct {
	View domain.View
}

func (MsgStateChanged) sealed() {}

// MsgTaskSubmitted is sent after the new-task field was submitted.
type MsgTaskSubmitted struct {
	View       domain.View
	Dispatched bool // False when the submit was ignored (empty text)
}

func (MsgTaskSubmitted) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

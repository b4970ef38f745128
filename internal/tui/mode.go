// Package tui provides the terminal user interface for git-todo.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // List navigation
	ModeInput              // New-task field focused
	ModeEdit               // Editing the selected task's text
	ModeHelp               // Full key help
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeEdit:
		return "edit"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInput, ModeEdit:
		return true
	case ModeNormal, ModeHelp:
		return false
	}
	return false
}

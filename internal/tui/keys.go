package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task actions
	New            key.Binding // Focus the new-task field
	Toggle         key.Binding // Toggle selected task
	ToggleAll      key.Binding // Mark all completed / all active
	Edit           key.Binding // Edit selected task
	Delete         key.Binding // Remove selected task
	ClearCompleted key.Binding // Remove completed tasks

	// Filters
	NextFilter      key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding

	// General
	Help   key.Binding
	Quit   key.Binding
	Escape key.Binding // Leave input, cancel edit
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n", "i"),
			key.WithHelp("n", "new task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		ToggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle all"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear completed"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "f"),
			key.WithHelp("tab", "next filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		FilterActive: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "active"),
		),
		FilterCompleted: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "completed"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Toggle, k.Edit, k.Delete, k.NextFilter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                              // Navigation
		{k.New, k.Toggle, k.ToggleAll, k.Edit},      // Task actions
		{k.Delete, k.ClearCompleted},                // Removal
		{k.NextFilter, k.FilterAll, k.FilterActive}, // Filters
		{k.FilterCompleted, k.Help, k.Quit, k.Escape},
	}
}

// normalBindings returns every binding active in normal mode.
func (k KeyMap) normalBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.New, k.Toggle, k.ToggleAll, k.Edit, k.Delete,
		k.ClearCompleted, k.NextFilter, k.FilterAll, k.FilterActive,
		k.FilterCompleted, k.Help, k.Quit,
	}
}

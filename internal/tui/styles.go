package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Text       lipgloss.Color
	Selected   lipgloss.Color
	Background lipgloss.Color
}{
	Primary:    lipgloss.Color("#B83F45"), // TodoMVC red
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Text:       lipgloss.Color("#DFE6E9"), // Light gray
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	// New-task field
	InputPrompt lipgloss.Style
	Placeholder lipgloss.Style
	ToggleAll   lipgloss.Style

	// Task rows
	Cursor           lipgloss.Style
	Checkbox         lipgloss.Style
	CheckboxDone     lipgloss.Style
	TaskText         lipgloss.Style
	TaskTextDone     lipgloss.Style
	TaskTextSelected lipgloss.Style
	Empty            lipgloss.Style

	// Footer
	Count          lipgloss.Style
	FilterNormal   lipgloss.Style
	FilterSelected lipgloss.Style
	ClearCompleted lipgloss.Style

	// Help
	Help lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		ToggleAll: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		TaskText: lipgloss.NewStyle().
			Foreground(Colors.Text),

		TaskTextDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskTextSelected: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Count: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FilterNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		FilterSelected: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Padding(0, 1).
			Underline(true),

		ClearCompleted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// TaskTextStyle returns the style for a task's text.
func (s Styles) TaskTextStyle(task taskRow) lipgloss.Style {
	switch {
	case task.selected:
		style := s.TaskTextSelected
		if task.task.Completed {
			style = style.Strikethrough(true)
		}
		return style
	case task.task.Completed:
		return s.TaskTextDone
	default:
		return s.TaskText
	}
}

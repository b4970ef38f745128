package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/git-todo/internal/app"
	"github.com/runoshun/git-todo/internal/domain"
	"github.com/runoshun/git-todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	view      domain.View
	submitKey string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	newInput  textinput.Model
	editInput textinput.Model

	// Numeric state (smaller types last)
	mode      Mode
	width     int
	height    int
	cursor    int
	offset    int
	editingID int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "What needs to be done?"
	ni.Prompt = "❯ "
	ni.CharLimit = 500

	ei := textinput.New()
	ei.Prompt = "✎ "
	ei.CharLimit = 500

	m := &Model{
		container: c,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		newInput:  ni,
		editInput: ei,
		submitKey: c.SubmitTaskUseCase().SubmitKey(),
		view:      domain.SelectView(c.Store.State()),
	}
	m.newInput.PromptStyle = m.styles.InputPrompt
	m.editInput.PromptStyle = m.styles.InputPrompt
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadView()
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Visible) {
		return domain.Task{}, false
	}
	return m.view.Visible[m.cursor], true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// setView replaces the displayed view and keeps the cursor in range.
// Commands finish in any order; a view older than the one shown is dropped.
func (m *Model) setView(v domain.View) {
	if v.Version < m.view.Version {
		return
	}
	m.view = v
	if m.cursor >= len(v.Visible) {
		m.cursor = len(v.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// listHeight returns how many task rows fit on screen.
func (m *Model) listHeight() int {
	// Padding, header, input, toggle-all, footer, help and spacing.
	const chrome = 11
	if m.height <= chrome {
		return 1
	}
	return m.height - chrome
}

// ensureCursorVisible scrolls the list so the cursor row is shown.
func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// loadView returns a command that reads the current view.
func (m *Model) loadView() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// submitTask returns a command that submits the new-task field.
func (m *Model) submitTask(keyName, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SubmitTaskUseCase().Execute(context.Background(), usecase.SubmitTaskInput{
			Key:  keyName,
			Text: text,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskSubmitted{View: out.View, Dispatched: out.Dispatched}
	}
}

// toggleTask returns a command that toggles a task.
func (m *Model) toggleTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// toggleAll returns a command that runs the toggle-all control.
func (m *Model) toggleAll() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleAllUseCase().Execute(context.Background(), usecase.ToggleAllInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// editTask returns a command that commits an edit.
func (m *Model) editTask(taskID int, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EditTaskUseCase().Execute(context.Background(), usecase.EditTaskInput{
			TaskID: taskID,
			Text:   text,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// removeTask returns a command that removes a task.
func (m *Model) removeTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RemoveTaskUseCase().Execute(context.Background(), usecase.RemoveTaskInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// clearCompleted returns a command that removes completed tasks.
func (m *Model) clearCompleted() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearCompletedUseCase().Execute(context.Background(), usecase.ClearCompletedInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

// changeFilter returns a command that changes the visibility filter.
func (m *Model) changeFilter(f domain.VisibilityFilter) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ChangeFilterUseCase().Execute(context.Background(), usecase.ChangeFilterInput{Filter: f})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateChanged{View: out.View}
	}
}

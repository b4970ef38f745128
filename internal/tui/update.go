package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/git-todo/internal/domain"
)

// errorDisplayDuration is how long an error stays visible without a key press.
const errorDisplayDuration = 5 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inputWidth := msg.Width - 10
		if inputWidth < 10 {
			inputWidth = 10
		}
		m.newInput.Width = inputWidth
		m.editInput.Width = inputWidth
		m.ensureCursorVisible()
		return m, nil

	case MsgStateChanged:
		m.setView(msg.View)
		return m, nil

	case MsgTaskSubmitted:
		m.setView(msg.View)
		if msg.Dispatched {
			m.newInput.Reset()
		}
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
			return MsgClearError{}
		})

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeEdit:
		return m.handleEditMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Visible)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInput
		m.newInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.ToggleAll):
		if m.view.IsEmpty() {
			return m, nil
		}
		return m, m.toggleAll()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.mode = ModeEdit
		m.editingID = task.ID
		m.editInput.SetValue(task.Text)
		m.editInput.CursorEnd()
		m.editInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.removeTask(task.ID)

	case key.Matches(msg, m.keys.ClearCompleted):
		if m.view.CompletedCount == 0 {
			return m, nil
		}
		return m, m.clearCompleted()

	case key.Matches(msg, m.keys.NextFilter):
		return m, m.changeFilter(m.view.Filter.Next())

	case key.Matches(msg, m.keys.FilterAll):
		return m, m.changeFilter(domain.FilterAll)

	case key.Matches(msg, m.keys.FilterActive):
		return m, m.changeFilter(domain.FilterActive)

	case key.Matches(msg, m.keys.FilterCompleted):
		return m, m.changeFilter(domain.FilterCompleted)

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleInputMode handles keys while the new-task field is focused.
// Only the configured submit key is translated into an action.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.newInput.Blur()
		return m, nil

	case msg.String() == m.submitKey:
		return m, m.submitTask(msg.String(), m.newInput.Value())
	}

	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	return m, cmd
}

// handleEditMode handles keys while a task is being edited.
// The submit key commits the edit; escape discards it.
func (m *Model) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.editInput.Blur()
		m.editInput.Reset()
		m.editingID = 0
		return m, nil

	case msg.String() == m.submitKey:
		id, text := m.editingID, m.editInput.Value()
		m.mode = ModeNormal
		m.editInput.Blur()
		m.editInput.Reset()
		m.editingID = 0
		return m, m.editTask(id, text)
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/git-todo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeEdit:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the header, new-task field, task list and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("todos"))
	b.WriteString("\n")

	b.WriteString(m.viewNewTaskInput())
	b.WriteString("\n")

	// The toggle-all control only exists while there are tasks.
	if !m.view.IsEmpty() {
		b.WriteString(m.viewToggleAll())
		b.WriteString("\n")
		b.WriteString(m.viewTaskList())
		b.WriteString("\n")
		b.WriteString(m.viewFooter())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

// viewNewTaskInput renders the new-task field.
func (m *Model) viewNewTaskInput() string {
	if m.mode == ModeInput {
		return m.newInput.View()
	}
	if m.newInput.Value() != "" {
		return m.styles.InputPrompt.Render(m.newInput.Prompt) + m.newInput.Value()
	}
	return m.styles.InputPrompt.Render(m.newInput.Prompt) + m.styles.Placeholder.Render(m.newInput.Placeholder)
}

// viewToggleAll renders the toggle-all control with its next effect.
func (m *Model) viewToggleAll() string {
	mark := "[ ]"
	label := "mark all as complete"
	if m.view.AllCompleted {
		mark = "[x]"
		label = "mark all as active"
	}
	return m.styles.ToggleAll.Render(mark + " " + label + " (" + m.keys.ToggleAll.Help().Key + ")")
}

// viewTaskList renders the visible tasks, scrolled to keep the cursor shown.
func (m *Model) viewTaskList() string {
	if len(m.view.Visible) == 0 {
		return m.styles.Empty.Render("No " + strings.ToLower(m.view.Filter.Display()) + " tasks")
	}

	width := m.width - 4 // App padding
	end := m.offset + m.listHeight()
	if end > len(m.view.Visible) {
		end = len(m.view.Visible)
	}

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		task := m.view.Visible[i]
		if m.mode == ModeEdit && task.ID == m.editingID {
			rows = append(rows, "  "+m.editInput.View())
			continue
		}
		rows = append(rows, renderTaskRow(m.styles, taskRow{task: task, selected: i == m.cursor}, width))
	}
	return strings.Join(rows, "\n")
}

// viewFooter renders the items-left count, filter links and clear control.
func (m *Model) viewFooter() string {
	parts := []string{m.styles.Count.Render(m.view.ItemsLeftLabel())}

	filters := make([]string, 0, len(domain.AllFilters()))
	for _, f := range domain.AllFilters() {
		style := m.styles.FilterNormal
		if f == m.view.Filter {
			style = m.styles.FilterSelected
		}
		filters = append(filters, style.Render(f.Display()))
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, filters...))

	if m.view.CompletedCount > 0 {
		parts = append(parts, m.styles.ClearCompleted.Render("Clear completed ("+m.keys.ClearCompleted.Help().Key+")"))
	}

	return strings.Join(parts, "  ")
}

// viewHelp renders the full keybinding reference.
func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Keybindings"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Count.Render("In the new-task field, " + m.submitKey + " adds the task and esc leaves the field."))
	return m.styles.Help.Render(b.String())
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/git-todo/internal/app"
	"github.com/runoshun/git-todo/internal/domain"
	"github.com/runoshun/git-todo/internal/testutil"
)

// newTestModel creates a sized, loaded Model over a recording dispatcher.
func newTestModel(t *testing.T, cfg *domain.Config, tasks ...domain.Task) (*Model, *testutil.MockDispatcher) {
	t.Helper()

	disp := testutil.NewMockDispatcherWithTasks(tasks...)
	c := app.NewWithDeps(app.Config{WorkDir: t.TempDir()}, cfg, disp, nil)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	run(t, m, m.Init())
	return m, disp
}

// run executes cmd synchronously and feeds its message back into m.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	m.Update(cmd())
}

// press sends a key to m and returns the resulting command.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func seedTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "walk dog", Completed: true},
		{ID: 3, Text: "write report"},
	}
}

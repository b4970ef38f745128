package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-todo/internal/domain"
)

func TestInit_LoadsView(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)

	assert.Equal(t, 3, m.view.Total)
	assert.Len(t, m.view.Visible, 3)
	assert.Empty(t, disp.Dispatched())
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 110, m.newInput.Width)
}

func TestUpdate_SubmitNewTask(t *testing.T) {
	m, disp := newTestModel(t, nil)

	assert.Nil(t, press(m, "n"))
	require.Equal(t, ModeInput, m.Mode())

	m.newInput.SetValue("  buy milk  ")
	run(t, m, press(m, "enter"))

	assert.Equal(t, []domain.Action{domain.AddTask{Text: "buy milk"}}, disp.Dispatched())
	assert.Equal(t, 1, m.view.Total)
	assert.Equal(t, "buy milk", m.view.Visible[0].Text)
	assert.Empty(t, m.newInput.Value(), "input should be cleared after submit")
	assert.Equal(t, ModeInput, m.Mode(), "field keeps focus for the next task")
}

func TestUpdate_SubmitBlankTextIsIgnored(t *testing.T) {
	m, disp := newTestModel(t, nil)
	press(m, "n")

	m.newInput.SetValue("   ")
	run(t, m, press(m, "enter"))

	assert.Empty(t, disp.Dispatched())
	assert.Equal(t, "   ", m.newInput.Value())
	assert.True(t, m.view.IsEmpty())
}

func TestUpdate_CustomSubmitKey(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.UI.SubmitKey = "ctrl+s"
	m, disp := newTestModel(t, cfg)
	press(m, "n")
	m.newInput.SetValue("report")

	press(m, "enter")
	assert.Empty(t, disp.Dispatched(), "enter is not the submit key")

	run(t, m, press(m, "ctrl+s"))
	assert.Equal(t, []domain.Action{domain.AddTask{Text: "report"}}, disp.Dispatched())
}

func TestUpdate_InputModeEscape(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, "n")

	assert.Nil(t, press(m, "esc"))
	assert.Equal(t, ModeNormal, m.Mode())
	assert.False(t, m.newInput.Focused())
}

func TestUpdate_InputModeDoesNotQuitOnQ(t *testing.T) {
	m, _ := newTestModel(t, nil)
	press(m, "n")

	press(m, "q")

	assert.Equal(t, ModeInput, m.Mode())
	assert.Equal(t, "q", m.newInput.Value())
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel(t, nil, seedTasks()...)

	press(m, "k")
	assert.Equal(t, 0, m.cursor, "cursor stays at top")

	press(m, "j")
	press(m, "j")
	press(m, "j")
	assert.Equal(t, 2, m.cursor, "cursor stays at bottom")

	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, 3, task.ID)
}

func TestUpdate_ToggleTask(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)
	press(m, "j")

	run(t, m, press(m, "space"))

	assert.Equal(t, []domain.Action{domain.ToggleTask{ID: 2}}, disp.Dispatched())
	assert.False(t, m.view.Visible[1].Completed)
	assert.Equal(t, 3, m.view.ActiveCount)
}

func TestUpdate_ToggleAll(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)

	run(t, m, press(m, "a"))
	assert.True(t, m.view.AllCompleted)

	run(t, m, press(m, "a"))
	assert.Equal(t, 0, m.view.CompletedCount)

	assert.Equal(t, []domain.Action{
		domain.ToggleAllTasks{Completed: true},
		domain.ToggleAllTasks{Completed: false},
	}, disp.Dispatched())
}

func TestUpdate_OutOfOrderResultsKeepNewestView(t *testing.T) {
	m, _ := newTestModel(t, nil, seedTasks()...)

	first := press(m, "a")
	second := press(m, "a")
	require.NotNil(t, first)
	require.NotNil(t, second)
	older, newer := first(), second()

	m.Update(newer)
	m.Update(older)

	assert.Equal(t, uint64(2), m.view.Version)
	assert.Equal(t, 0, m.view.CompletedCount)
	assert.False(t, m.view.AllCompleted)
}

func TestUpdate_ToggleAllHiddenWhenEmpty(t *testing.T) {
	m, disp := newTestModel(t, nil)

	assert.Nil(t, press(m, "a"))
	assert.Empty(t, disp.Dispatched())
}

func TestUpdate_EditTask(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)

	assert.Nil(t, press(m, "e"))
	require.Equal(t, ModeEdit, m.Mode())
	assert.Equal(t, 1, m.editingID)
	assert.Equal(t, "buy milk", m.editInput.Value())

	m.editInput.SetValue("buy oat milk ")
	run(t, m, press(m, "enter"))

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, []domain.Action{domain.EditTask{ID: 1, Text: "buy oat milk"}}, disp.Dispatched())
	assert.Equal(t, "buy oat milk", m.view.Visible[0].Text)
}

func TestUpdate_EditTaskEmptyRemoves(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)
	press(m, "e")

	m.editInput.SetValue("")
	run(t, m, press(m, "enter"))

	assert.Equal(t, []domain.Action{domain.RemoveTask{ID: 1}}, disp.Dispatched())
	assert.Equal(t, 2, m.view.Total)
}

func TestUpdate_EditTaskEscapeCancels(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)
	press(m, "e")
	m.editInput.SetValue("changed")

	assert.Nil(t, press(m, "esc"))

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Zero(t, m.editingID)
	assert.Empty(t, disp.Dispatched())
	assert.Equal(t, "buy milk", m.view.Visible[0].Text)
}

func TestUpdate_RemoveTaskClampsCursor(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)
	press(m, "j")
	press(m, "j")

	run(t, m, press(m, "d"))

	assert.Equal(t, []domain.Action{domain.RemoveTask{ID: 3}}, disp.Dispatched())
	assert.Equal(t, 1, m.cursor)
}

func TestUpdate_ClearCompleted(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)

	run(t, m, press(m, "C"))
	assert.Equal(t, []domain.Action{domain.RemoveCompletedTasks{}}, disp.Dispatched())
	assert.Equal(t, 2, m.view.Total)

	assert.Nil(t, press(m, "C"), "nothing left to clear")
}

func TestUpdate_Filters(t *testing.T) {
	m, disp := newTestModel(t, nil, seedTasks()...)
	press(m, "j")
	press(m, "j")

	run(t, m, press(m, "tab"))
	assert.Equal(t, domain.FilterActive, m.view.Filter)
	assert.Len(t, m.view.Visible, 2)
	assert.Equal(t, 1, m.cursor)

	run(t, m, press(m, "3"))
	assert.Equal(t, domain.FilterCompleted, m.view.Filter)
	assert.Len(t, m.view.Visible, 1)
	assert.Equal(t, 0, m.cursor)

	run(t, m, press(m, "1"))
	assert.Equal(t, domain.FilterAll, m.view.Filter)

	assert.Equal(t, []domain.Action{
		domain.ChangeFilter{Filter: domain.FilterActive},
		domain.ChangeFilter{Filter: domain.FilterCompleted},
		domain.ChangeFilter{Filter: domain.FilterAll},
	}, disp.Dispatched())
}

func TestUpdate_ActionsOnEmptyListAreNoops(t *testing.T) {
	m, disp := newTestModel(t, nil)

	for _, k := range []string{"space", "e", "d", "C", "j", "k"} {
		assert.Nil(t, press(m, k), k)
	}
	assert.Empty(t, disp.Dispatched())
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestUpdate_HelpMode(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "?")
	assert.Equal(t, ModeHelp, m.Mode())

	press(m, "?")
	assert.Equal(t, ModeNormal, m.Mode())

	press(m, "?")
	press(m, "esc")
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestUpdate_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  string
		mode Mode
	}{
		{name: "q in normal mode", key: "q", mode: ModeNormal},
		{name: "ctrl+c in normal mode", key: "ctrl+c", mode: ModeNormal},
		{name: "ctrl+c in input mode", key: "ctrl+c", mode: ModeInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, nil)
			m.mode = tt.mode

			cmd := press(m, tt.key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestUpdate_Errors(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(MsgError{Err: errors.New("boom")})
	require.Error(t, m.err)
	assert.NotNil(t, cmd, "error schedules its own removal")

	m.Update(MsgClearError{})
	assert.NoError(t, m.err)

	m.Update(MsgError{Err: errors.New("boom")})
	press(m, "j")
	assert.NoError(t, m.err, "any key clears the error")
}

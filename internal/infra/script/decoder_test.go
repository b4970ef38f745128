package script

import (
	"testing"

	"github.com/runoshun/git-todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Parse_AllActionTypes(t *testing.T) {
	content := `
actions:
  - {type: add, text: buy milk}
  - {type: toggle, id: 1}
  - {type: toggle_all, completed: true}
  - {type: edit, id: 1, text: buy oat milk}
  - {type: remove, id: 2}
  - {type: clear_completed}
  - {type: filter, filter: active}
  - type: set
    tasks:
      - {id: 5, text: seeded, completed: true}
`
	actions, err := NewDecoder().Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []domain.Action{
		domain.AddTask{Text: "buy milk"},
		domain.ToggleTask{ID: 1},
		domain.ToggleAllTasks{Completed: true},
		domain.EditTask{ID: 1, Text: "buy oat milk"},
		domain.RemoveTask{ID: 2},
		domain.RemoveCompletedTasks{},
		domain.ChangeFilter{Filter: domain.FilterActive},
		domain.SetTasks{Tasks: domain.TaskList{{ID: 5, Text: "seeded", Completed: true}}},
	}, actions)
}

func TestDecoder_Parse_JSON(t *testing.T) {
	content := `{"actions": [{"type": "add", "text": "a"}, {"type": "toggle_all", "completed": false}]}`

	actions, err := NewDecoder().Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []domain.Action{
		domain.AddTask{Text: "a"},
		domain.ToggleAllTasks{Completed: false},
	}, actions)
}

func TestDecoder_Parse_EmptyTextIsKept(t *testing.T) {
	actions, err := NewDecoder().Parse([]byte(`actions: [{type: add, text: ""}]`))
	require.NoError(t, err)

	assert.Equal(t, []domain.Action{domain.AddTask{Text: ""}}, actions)
}

func TestDecoder_Parse_Errors(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		content  string
		contains string
	}{
		{name: "empty document", content: "", wantErr: domain.ErrEmptyScript},
		{name: "no actions", content: "actions: []", wantErr: domain.ErrEmptyScript},
		{name: "malformed yaml", content: "actions: [", wantErr: domain.ErrInvalidScript},
		{name: "unknown top-level key", content: "steps: []", wantErr: domain.ErrInvalidScript},
		{name: "unknown step key", content: "actions: [{type: add, text: a, priority: 1}]", wantErr: domain.ErrInvalidScript},
		{
			name:     "unknown type",
			content:  "actions: [{type: add, text: a}, {type: undo}]",
			wantErr:  domain.ErrUnknownAction,
			contains: "step 2",
		},
		{name: "missing type", content: "actions: [{id: 1}]", wantErr: domain.ErrInvalidScript, contains: "step 1"},
		{name: "add without text", content: "actions: [{type: add}]", wantErr: domain.ErrInvalidScript},
		{name: "toggle without id", content: "actions: [{type: toggle}]", wantErr: domain.ErrInvalidScript},
		{name: "edit without text", content: "actions: [{type: edit, id: 1}]", wantErr: domain.ErrInvalidScript},
		{name: "remove without id", content: "actions: [{type: remove}]", wantErr: domain.ErrInvalidScript},
		{name: "toggle_all without completed", content: "actions: [{type: toggle_all}]", wantErr: domain.ErrInvalidScript},
		{name: "filter without value", content: "actions: [{type: filter}]", wantErr: domain.ErrInvalidScript},
		{
			name:     "invalid filter",
			content:  "actions: [{type: add, text: a}, {type: add, text: b}, {type: filter, filter: done}]",
			wantErr:  domain.ErrInvalidFilter,
			contains: "step 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

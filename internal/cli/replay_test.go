package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/git-todo/internal/domain"
)

const replayScript = `
actions:
  - {type: add, text: buy milk}
  - {type: add, text: walk dog}
  - {type: add, text: write report}
  - {type: toggle, id: 2}
  - {type: edit, id: 3, text: write the report}
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayCommand_PrintsTable(t *testing.T) {
	c := newTestContainer(t)

	out, _, err := execute(newReplayCommand(c), writeScript(t, replayScript))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, []string{"ID", "STATUS", "TEXT"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "active", "buy", "milk"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "completed", "walk", "dog"}, strings.Fields(lines[2]))
	assert.Contains(t, lines[3], "write the report")
	assert.Contains(t, out, "2 items left (filter: all, 1 completed)")
}

func TestReplayCommand_FilterFlag(t *testing.T) {
	c := newTestContainer(t)

	out, _, err := execute(newReplayCommand(c), writeScript(t, replayScript), "--filter", "completed")

	require.NoError(t, err)
	assert.Contains(t, out, "walk dog")
	assert.NotContains(t, out, "buy milk")
	assert.Contains(t, out, "filter: completed")
}

func TestReplayCommand_JSON(t *testing.T) {
	c := newTestContainer(t)

	out, _, err := execute(newReplayCommand(c), writeScript(t, replayScript), "--json", "--filter", "active")
	require.NoError(t, err)

	var got struct {
		Filter         string          `json:"filter"`
		Tasks          domain.TaskList `json:"tasks"`
		Total          int             `json:"total"`
		ActiveCount    int             `json:"active_count"`
		CompletedCount int             `json:"completed_count"`
		NextID         int             `json:"next_id"`
		AllCompleted   bool            `json:"all_completed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "active", got.Filter)
	assert.Equal(t, domain.TaskList{
		{ID: 1, Text: "buy milk"},
		{ID: 3, Text: "write the report"},
	}, got.Tasks)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 2, got.ActiveCount)
	assert.Equal(t, 1, got.CompletedCount)
	assert.Equal(t, 4, got.NextID)
	assert.False(t, got.AllCompleted)
}

func TestReplayCommand_JSONEmptyList(t *testing.T) {
	c := newTestContainer(t)

	out, _, err := execute(newReplayCommand(c), writeScript(t, "actions: [{type: clear_completed}]"), "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"tasks": []`)
	assert.Contains(t, out, `"all_completed": true`)
}

func TestReplayCommand_Stdin(t *testing.T) {
	c := newTestContainer(t)
	cmd := newReplayCommand(c)
	cmd.SetIn(strings.NewReader(`{"actions": [{"type": "add", "text": "from stdin"}]}`))

	out, _, err := execute(cmd, "-")

	require.NoError(t, err)
	assert.Contains(t, out, "from stdin")
	assert.Contains(t, out, "1 item left")
}

func TestReplayCommand_Errors(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		args     func(t *testing.T) []string
		contains string
	}{
		{
			name:    "invalid filter flag",
			args:    func(t *testing.T) []string { return []string{writeScript(t, replayScript), "--filter", "done"} },
			wantErr: domain.ErrInvalidFilter,
		},
		{
			name:    "unknown action",
			args:    func(t *testing.T) []string { return []string{writeScript(t, "actions: [{type: undo}]")} },
			wantErr: domain.ErrUnknownAction,
		},
		{
			name:    "empty script",
			args:    func(t *testing.T) []string { return []string{writeScript(t, "")} },
			wantErr: domain.ErrEmptyScript,
		},
		{
			name:     "missing file",
			args:     func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.yaml")} },
			wantErr:  os.ErrNotExist,
			contains: "read script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContainer(t)

			_, _, err := execute(newReplayCommand(c), tt.args(t)...)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			assert.Empty(t, c.Store.State().Tasks.Tasks, "nothing is dispatched on error")
		})
	}
}

func TestReplayCommand_RequiresFile(t *testing.T) {
	c := newTestContainer(t)

	_, _, err := execute(newReplayCommand(c))

	assert.Error(t, err)
}

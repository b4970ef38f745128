package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/runoshun/git-todo/internal/domain"
)

// taskRow is one rendered line of the task list.
type taskRow struct {
	task     domain.Task
	selected bool
}

// rowPrefixWidth is the width of the cursor and checkbox columns: "> [x] ".
const rowPrefixWidth = 6

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncateText shortens s to fit width display cells, marking the cut with "...".
func truncateText(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// renderTaskRow renders a task as a single line no wider than width.
func renderTaskRow(styles Styles, row taskRow, width int) string {
	indicator := " "
	if row.selected {
		indicator = styles.Cursor.Render(">")
	}

	checkbox := styles.Checkbox.Render("[ ]")
	if row.task.Completed {
		checkbox = styles.CheckboxDone.Render("[x]")
	}

	text := truncateText(escapeNewlines(row.task.Text), width-rowPrefixWidth)
	return indicator + " " + checkbox + " " + styles.TaskTextStyle(row).Render(text)
}

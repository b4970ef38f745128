package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/git-todo/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	Text   string // New text, untrimmed
	TaskID int    // Task ID to edit
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	View    domain.View
	Removed bool // True when empty text removed the task instead
}

// EditTask commits an edit of a task's text.
// Committing empty text removes the task.
type EditTask struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.Dispatcher, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches EditTask with the trimmed text, or RemoveTask when the
// trimmed text is empty. An unknown ID is a silent no-op.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	text := strings.TrimSpace(in.Text)

	var exists bool
	state := uc.store.DispatchFunc(func(s domain.AppState) domain.Action {
		_, exists = s.Tasks.Tasks.Find(in.TaskID)
		if text == "" {
			return domain.RemoveTask{ID: in.TaskID}
		}
		return domain.EditTask{ID: in.TaskID, Text: text}
	})

	if text == "" {
		if exists {
			uc.logger.Info(in.TaskID, "task", "removed task (empty edit)")
		}
		return &EditTaskOutput{View: domain.SelectView(state), Removed: true}, nil
	}

	if exists {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("renamed to %q", text))
	}
	return &EditTaskOutput{View: domain.SelectView(state)}, nil
}

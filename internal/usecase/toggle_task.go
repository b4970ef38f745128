package usecase

import (
	"context"

	"github.com/runoshun/git-todo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskID int
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	View domain.View
}

// ToggleTask flips the completion flag of one task.
type ToggleTask struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.Dispatcher, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches ToggleTask. An unknown ID is a silent no-op.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	state := uc.store.Dispatch(domain.ToggleTask{ID: in.TaskID})

	if task, ok := state.Tasks.Tasks.Find(in.TaskID); ok {
		if task.Completed {
			uc.logger.Info(task.ID, "task", "marked completed")
		} else {
			uc.logger.Info(task.ID, "task", "marked active")
		}
	}

	return &ToggleTaskOutput{View: domain.SelectView(state)}, nil
}

package usecase

import (
	"context"

	"github.com/runoshun/git-todo/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID int
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	View domain.View
}

// RemoveTask is the use case for removing a task.
type RemoveTask struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(store domain.Dispatcher, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches RemoveTask. An unknown ID is a silent no-op.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	var exists bool
	state := uc.store.DispatchFunc(func(s domain.AppState) domain.Action {
		_, exists = s.Tasks.Tasks.Find(in.TaskID)
		return domain.RemoveTask{ID: in.TaskID}
	})

	if exists {
		uc.logger.Info(in.TaskID, "task", "removed task")
	}

	return &RemoveTaskOutput{View: domain.SelectView(state)}, nil
}

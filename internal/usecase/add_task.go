package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/git-todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text (trimmed before use)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	View domain.View
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task with already-submitted text.
type AddTask struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.Dispatcher, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		logger: logger,
	}
}

// Execute adds a task with the trimmed text.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	state := uc.store.Dispatch(domain.AddTask{Text: text})
	task := lastTask(state)
	uc.logger.Info(task.ID, "task", fmt.Sprintf("created task %q", task.Text))

	return &AddTaskOutput{
		View: domain.SelectView(state),
		Task: task,
	}, nil
}

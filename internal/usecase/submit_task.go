// Package usecase contains the application use cases.
// Each use case translates one user intent into store actions.
package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/git-todo/internal/domain"
)

// SubmitTaskInput contains the raw input of a new-task field.
type SubmitTaskInput struct {
	Key  string // Key that triggered the submit (e.g. "enter")
	Text string // Current field text, untrimmed
}

// SubmitTaskOutput contains the result of submitting the new-task field.
// Fields are ordered to minimize memory padding.
type SubmitTaskOutput struct {
	View       domain.View
	Task       domain.Task // Created task (zero if not dispatched)
	Dispatched bool        // Whether an AddTask action was dispatched
}

// SubmitTask turns a key press in the new-task field into an AddTask action.
type SubmitTask struct {
	store     domain.Dispatcher
	add       *AddTask
	submitKey string
}

// NewSubmitTask creates a new SubmitTask use case.
// An empty submitKey falls back to domain.DefaultSubmitKey.
func NewSubmitTask(store domain.Dispatcher, logger domain.Logger, submitKey string) *SubmitTask {
	if submitKey == "" {
		submitKey = domain.DefaultSubmitKey
	}
	return &SubmitTask{
		store:     store,
		add:       NewAddTask(store, logger),
		submitKey: submitKey,
	}
}

// SubmitKey returns the key that submits the field.
func (uc *SubmitTask) SubmitKey() string {
	return uc.submitKey
}

// Execute dispatches AddTask with the trimmed text when the key is the
// submit key and the trimmed text is non-empty. Otherwise nothing happens.
func (uc *SubmitTask) Execute(ctx context.Context, in SubmitTaskInput) (*SubmitTaskOutput, error) {
	if in.Key != uc.submitKey || strings.TrimSpace(in.Text) == "" {
		return &SubmitTaskOutput{View: domain.SelectView(uc.store.State())}, nil
	}

	out, err := uc.add.Execute(ctx, AddTaskInput{Text: in.Text})
	if err != nil {
		return nil, err
	}

	return &SubmitTaskOutput{
		View:       out.View,
		Task:       out.Task,
		Dispatched: true,
	}, nil
}

// lastTask returns the most recently appended task of state.
func lastTask(state domain.AppState) domain.Task {
	tasks := state.Tasks.Tasks
	if len(tasks) == 0 {
		return domain.Task{}
	}
	return tasks[len(tasks)-1]
}

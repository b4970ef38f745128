package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-todo/internal/domain"
)

// ToggleAllInput contains the parameters for the toggle-all control.
type ToggleAllInput struct{}

// ToggleAllOutput contains the result of toggling all tasks.
type ToggleAllOutput struct {
	View      domain.View
	Completed bool // Value written to every task
}

// ToggleAll marks every task completed, or every task active when all
// are already completed.
type ToggleAll struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewToggleAll creates a new ToggleAll use case.
func NewToggleAll(store domain.Dispatcher, logger domain.Logger) *ToggleAll {
	return &ToggleAll{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches ToggleAllTasks with the negated aggregate of the whole
// list, regardless of the active filter.
func (uc *ToggleAll) Execute(_ context.Context, _ ToggleAllInput) (*ToggleAllOutput, error) {
	var completed bool
	state := uc.store.DispatchFunc(func(s domain.AppState) domain.Action {
		completed = !domain.AllCompleted(s.Tasks.Tasks)
		return domain.ToggleAllTasks{Completed: completed}
	})

	if n := len(state.Tasks.Tasks); n > 0 {
		uc.logger.Info(0, "task", fmt.Sprintf("set completed=%t on %d tasks", completed, n))
	}

	return &ToggleAllOutput{
		View:      domain.SelectView(state),
		Completed: completed,
	}, nil
}

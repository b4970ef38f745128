package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-todo/internal/domain"
)

// ClearCompletedInput contains the parameters for clearing completed tasks.
type ClearCompletedInput struct{}

// ClearCompletedOutput contains the result of clearing completed tasks.
type ClearCompletedOutput struct {
	View    domain.View
	Removed int // Number of tasks removed
}

// ClearCompleted removes every completed task.
type ClearCompleted struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(store domain.Dispatcher, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches RemoveCompletedTasks.
func (uc *ClearCompleted) Execute(_ context.Context, _ ClearCompletedInput) (*ClearCompletedOutput, error) {
	var cleared []int
	state := uc.store.DispatchFunc(func(s domain.AppState) domain.Action {
		cleared = domain.FilterTasks(s.Tasks.Tasks, domain.FilterCompleted).IDs()
		return domain.RemoveCompletedTasks{}
	})

	if len(cleared) > 0 {
		uc.logger.Info(0, "task", fmt.Sprintf("cleared %d completed tasks %v", len(cleared), cleared))
	}

	return &ClearCompletedOutput{
		View:    domain.SelectView(state),
		Removed: len(cleared),
	}, nil
}

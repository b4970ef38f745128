package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.VisibilityFilter // Overrides the store filter when set
}

// ListTasksOutput contains the derived view.
type ListTasksOutput struct {
	View domain.View
}

// ListTasks is the use case for reading the current view.
type ListTasks struct {
	store domain.Dispatcher
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.Dispatcher) *ListTasks {
	return &ListTasks{
		store: store,
	}
}

// Execute returns the view of the current state without dispatching.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	state := uc.store.State()
	if in.Filter != "" {
		if !in.Filter.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilter, in.Filter)
		}
		state.Filter = in.Filter
	}
	return &ListTasksOutput{View: domain.SelectView(state)}, nil
}

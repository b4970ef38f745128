package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-todo/internal/domain"
)

// ChangeFilterInput contains the parameters for changing the visibility filter.
type ChangeFilterInput struct {
	Filter domain.VisibilityFilter
}

// ChangeFilterOutput contains the result of changing the filter.
type ChangeFilterOutput struct {
	View domain.View
}

// ChangeFilter selects which tasks the list shows.
type ChangeFilter struct {
	store  domain.Dispatcher
	logger domain.Logger
}

// NewChangeFilter creates a new ChangeFilter use case.
func NewChangeFilter(store domain.Dispatcher, logger domain.Logger) *ChangeFilter {
	return &ChangeFilter{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches ChangeFilter. Unknown filter names are rejected.
func (uc *ChangeFilter) Execute(_ context.Context, in ChangeFilterInput) (*ChangeFilterOutput, error) {
	if !in.Filter.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilter, in.Filter)
	}

	var prev domain.VisibilityFilter
	state := uc.store.DispatchFunc(func(s domain.AppState) domain.Action {
		prev = s.Filter
		return domain.ChangeFilter{Filter: in.Filter}
	})
	if prev != in.Filter {
		uc.logger.Info(0, "filter", fmt.Sprintf("filter changed from %s to %s", prev, in.Filter))
	}

	return &ChangeFilterOutput{View: domain.SelectView(state)}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-todo/internal/domain"
)

// ReplayInput contains the parameters for replaying an action script.
type ReplayInput struct {
	Filter  domain.VisibilityFilter // Overrides the final filter of the view when set
	Content []byte                  // Script content
}

// ReplayOutput contains the result of a replay.
type ReplayOutput struct {
	View  domain.View
	Steps int // Number of actions dispatched
}

// Replay dispatches a scripted action sequence through the store.
type Replay struct {
	store  domain.Dispatcher
	parser domain.ScriptParser
	logger domain.Logger
}

// NewReplay creates a new Replay use case.
func NewReplay(store domain.Dispatcher, parser domain.ScriptParser, logger domain.Logger) *Replay {
	return &Replay{
		store:  store,
		parser: parser,
		logger: logger,
	}
}

// Execute parses the script and dispatches every action in order.
// Nothing is dispatched if the script fails to parse.
func (uc *Replay) Execute(ctx context.Context, in ReplayInput) (*ReplayOutput, error) {
	if in.Filter != "" && !in.Filter.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilter, in.Filter)
	}

	actions, err := uc.parser.Parse(in.Content)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	state := uc.store.State()
	for i, action := range actions {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay stopped at step %d: %w", i+1, err)
		}
		state = uc.store.Dispatch(action)
		uc.logger.Debug(0, "replay", fmt.Sprintf("step %d: %s", i+1, action.Kind()))
	}
	uc.logger.Info(0, "replay", fmt.Sprintf("replayed %d actions", len(actions)))

	if in.Filter != "" {
		state.Filter = in.Filter
	}

	return &ReplayOutput{
		View:  domain.SelectView(state),
		Steps: len(actions),
	}, nil
}

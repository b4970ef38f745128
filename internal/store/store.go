// Package store holds the authoritative application state and serializes
// every state change through a single dispatch entry point.
package store

import (
	"sync"

	"github.com/runoshun/git-todo/internal/domain"
)

// Ensure Store implements domain.Dispatcher.
var _ domain.Dispatcher = (*Store)(nil)

// Listener is called after each dispatch with the action and the resulting state.
type Listener func(action domain.Action, state domain.AppState)

// Store owns the application state.
// All mutation goes through Dispatch; readers get deep copies.
// Fields are ordered to minimize memory padding.
type Store struct {
	listeners map[int]Listener
	state     domain.AppState
	nextSub   int
	mu        sync.Mutex
}

// New creates a Store with the initial state for the given filter.
func New(filter domain.VisibilityFilter) *Store {
	return NewWithState(domain.NewAppState(filter))
}

// NewWithState creates a Store starting from the given state.
// The state is copied.
func NewWithState(state domain.AppState) *Store {
	return &Store{
		state:     state.Clone(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies the action and returns a snapshot of the resulting state.
// Listeners run after the lock is released, so they may dispatch themselves.
func (s *Store) Dispatch(action domain.Action) domain.AppState {
	return s.DispatchFunc(func(domain.AppState) domain.Action { return action })
}

// DispatchFunc derives the action from the current state and applies it
// under one lock acquisition. fn must not call back into the store.
func (s *Store) DispatchFunc(fn func(domain.AppState) domain.Action) domain.AppState {
	s.mu.Lock()
	action := fn(s.state.Clone())
	if action == nil {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot
	}
	next := domain.Reduce(s.state, action)
	next.Version = s.state.Version + 1
	s.state = next
	snapshot := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(action, snapshot.Clone())
	}
	return snapshot
}

// State returns a snapshot of the current state.
func (s *Store) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// View returns the derived view of the current state.
func (s *Store) View() domain.View {
	return domain.SelectView(s.State())
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

package domain

// Action is the sealed set of state changes the store accepts.
// All action types must implement the sealed() method.
//
// go-sumtype:decl Action
type Action interface {
	sealed()
	// Kind returns the stable action name used in logs and scripts.
	Kind() ActionKind
}

// ActionKind names an action type.
type ActionKind string

const (
	KindAddTask              ActionKind = "add"
	KindToggleTask           ActionKind = "toggle"
	KindToggleAllTasks       ActionKind = "toggle_all"
	KindEditTask             ActionKind = "edit"
	KindRemoveTask           ActionKind = "remove"
	KindRemoveCompletedTasks ActionKind = "clear_completed"
	KindSetTasks             ActionKind = "set"
	KindChangeFilter         ActionKind = "filter"
)

// AddTask appends a new, active task.
// The reducer does not validate Text; callers trim and reject empty input.
type AddTask struct {
	Text string
}

func (AddTask) sealed()          {}
func (AddTask) Kind() ActionKind { return KindAddTask }

// ToggleTask flips the completion flag of one task.
type ToggleTask struct {
	ID int
}

func (ToggleTask) sealed()          {}
func (ToggleTask) Kind() ActionKind { return KindToggleTask }

// ToggleAllTasks sets the completion flag of every task.
type ToggleAllTasks struct {
	Completed bool
}

func (ToggleAllTasks) sealed()          {}
func (ToggleAllTasks) Kind() ActionKind { return KindToggleAllTasks }

// EditTask replaces the text of one task.
type EditTask struct {
	Text string
	ID   int
}

func (EditTask) sealed()          {}
func (EditTask) Kind() ActionKind { return KindEditTask }

// RemoveTask removes one task.
type RemoveTask struct {
	ID int
}

func (RemoveTask) sealed()          {}
func (RemoveTask) Kind() ActionKind { return KindRemoveTask }

// RemoveCompletedTasks removes every completed task.
type RemoveCompletedTasks struct{}

func (RemoveCompletedTasks) sealed()          {}
func (RemoveCompletedTasks) Kind() ActionKind { return KindRemoveCompletedTasks }

// SetTasks replaces the whole task collection.
type SetTasks struct {
	Tasks TaskList
}

func (SetTasks) sealed()          {}
func (SetTasks) Kind() ActionKind { return KindSetTasks }

// ChangeFilter replaces the visibility filter.
// The value is not validated; see ParseVisibilityFilter.
type ChangeFilter struct {
	Filter VisibilityFilter
}

func (ChangeFilter) sealed()          {}
func (ChangeFilter) Kind() ActionKind { return KindChangeFilter }

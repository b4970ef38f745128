// Package domain contains core business entities, reducers and interfaces.
package domain

// Task represents a single to-do item.
type Task struct {
	Text      string `json:"text" yaml:"text"`           // Task text as entered
	ID        int    `json:"id" yaml:"id"`               // Unique for the lifetime of the store
	Completed bool   `json:"completed" yaml:"completed"` // Completion flag
}

// IsActive returns true if the task is not completed.
func (t Task) IsActive() bool {
	return !t.Completed
}

// TaskList is an ordered sequence of tasks.
// Insertion order is preserved; only removals change relative positions.
type TaskList []Task

// Clone returns a copy that shares no backing array with l.
// A nil list clones to an empty, non-nil list.
func (l TaskList) Clone() TaskList {
	out := make(TaskList, len(l))
	copy(out, l)
	return out
}

// IDs returns task IDs in list order.
func (l TaskList) IDs() []int {
	ids := make([]int, 0, len(l))
	for _, t := range l {
		ids = append(ids, t.ID)
	}
	return ids
}

// Find returns the task with the given ID.
func (l TaskList) Find(id int) (Task, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// FirstTaskID is the ID assigned to the first task of a fresh store.
const FirstTaskID = 1

// TaskState is the state owned by the task reducer.
// NextID is threaded alongside the tasks so the reducer stays pure.
type TaskState struct {
	Tasks  TaskList
	NextID int
}

// NewTaskState returns the initial, empty task state.
func NewTaskState() TaskState {
	return TaskState{
		Tasks:  TaskList{},
		NextID: FirstTaskID,
	}
}

// Clone returns a deep copy of the state.
func (s TaskState) Clone() TaskState {
	return TaskState{
		Tasks:  s.Tasks.Clone(),
		NextID: s.NextID,
	}
}

// AppState is the full store state: the task collection plus the visibility filter.
// Version counts applied dispatches; reducers carry it through unchanged.
type AppState struct {
	Filter  VisibilityFilter
	Tasks   TaskState
	Version uint64
}

// NewAppState returns the initial application state with the given filter.
func NewAppState(filter VisibilityFilter) AppState {
	return AppState{
		Tasks:  NewTaskState(),
		Filter: filter,
	}
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	return AppState{
		Tasks:   s.Tasks.Clone(),
		Filter:  s.Filter,
		Version: s.Version,
	}
}

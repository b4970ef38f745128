package domain

import "strconv"

// FilterTasks returns the tasks visible under filter, in list order.
// Unknown filter values show every task.
func FilterTasks(tasks TaskList, filter VisibilityFilter) TaskList {
	switch filter {
	case FilterActive:
		return selectTasks(tasks, Task.IsActive)
	case FilterCompleted:
		return selectTasks(tasks, func(t Task) bool { return t.Completed })
	default:
		return tasks.Clone()
	}
}

// AllCompleted reports whether every task is completed.
// An empty list reports true; the toggle-all control is hidden in that case.
func AllCompleted(tasks TaskList) bool {
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// ActiveCount returns the number of tasks not completed.
func ActiveCount(tasks TaskList) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed tasks.
func CompletedCount(tasks TaskList) int {
	return len(tasks) - ActiveCount(tasks)
}

// View is the derived, render-ready projection of AppState.
// Fields are ordered to minimize memory padding.
type View struct {
	Filter         VisibilityFilter
	Visible        TaskList // Tasks passing Filter
	Total          int
	ActiveCount    int
	CompletedCount int
	NextID         int
	Version        uint64 // AppState.Version the view was derived from
	AllCompleted   bool
}

// SelectView derives the view for the current state.
func SelectView(state AppState) View {
	tasks := state.Tasks.Tasks
	active := ActiveCount(tasks)
	return View{
		Filter:         state.Filter,
		Visible:        FilterTasks(tasks, state.Filter),
		Total:          len(tasks),
		ActiveCount:    active,
		CompletedCount: len(tasks) - active,
		NextID:         state.Tasks.NextID,
		Version:        state.Version,
		AllCompleted:   AllCompleted(tasks),
	}
}

// IsEmpty returns true if there are no tasks at all, regardless of filter.
func (v View) IsEmpty() bool {
	return v.Total == 0
}

// ItemsLeftLabel returns the footer counter text, e.g. "1 item left".
func (v View) ItemsLeftLabel() string {
	if v.ActiveCount == 1 {
		return "1 item left"
	}
	return strconv.Itoa(v.ActiveCount) + " items left"
}

func selectTasks(tasks TaskList, keep func(Task) bool) TaskList {
	out := make(TaskList, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

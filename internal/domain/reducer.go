package domain

// ReduceTasks applies an action to the task state and returns the next state.
// It is pure and total: it never mutates state, never fails, and returns
// state unchanged for actions it does not handle. Every handled action
// returns a freshly allocated task slice, even when no task matched.
func ReduceTasks(state TaskState, action Action) TaskState {
	switch a := action.(type) {
	case AddTask:
		tasks := make(TaskList, 0, len(state.Tasks)+1)
		tasks = append(tasks, state.Tasks...)
		tasks = append(tasks, Task{ID: state.NextID, Text: a.Text})
		return TaskState{Tasks: tasks, NextID: state.NextID + 1}

	case ToggleTask:
		return state.mapTasks(func(t Task) Task {
			if t.ID == a.ID {
				t.Completed = !t.Completed
			}
			return t
		})

	case ToggleAllTasks:
		return state.mapTasks(func(t Task) Task {
			t.Completed = a.Completed
			return t
		})

	case EditTask:
		return state.mapTasks(func(t Task) Task {
			if t.ID == a.ID {
				t.Text = a.Text
			}
			return t
		})

	case RemoveTask:
		return state.filterTasks(func(t Task) bool {
			return t.ID != a.ID
		})

	case RemoveCompletedTasks:
		return state.filterTasks(Task.IsActive)

	case SetTasks:
		next := state.NextID
		for _, t := range a.Tasks {
			if t.ID >= next {
				next = t.ID + 1
			}
		}
		return TaskState{Tasks: a.Tasks.Clone(), NextID: next}

	case ChangeFilter:
		return state
	}

	return state
}

// ReduceFilter applies an action to the visibility filter.
// Only ChangeFilter has an effect; its value is taken as-is.
func ReduceFilter(filter VisibilityFilter, action Action) VisibilityFilter {
	if a, ok := action.(ChangeFilter); ok {
		return a.Filter
	}
	return filter
}

// Reduce applies an action to the full application state.
func Reduce(state AppState, action Action) AppState {
	return AppState{
		Tasks:   ReduceTasks(state.Tasks, action),
		Filter:  ReduceFilter(state.Filter, action),
		Version: state.Version,
	}
}

// mapTasks returns a new state whose tasks are fn applied to each task.
// Task is a value type, so fn receives and returns copies.
func (s TaskState) mapTasks(fn func(Task) Task) TaskState {
	tasks := make(TaskList, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = fn(t)
	}
	return TaskState{Tasks: tasks, NextID: s.NextID}
}

// filterTasks returns a new state keeping the tasks for which keep is true.
func (s TaskState) filterTasks(keep func(Task) bool) TaskState {
	tasks := make(TaskList, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if keep(t) {
			tasks = append(tasks, t)
		}
	}
	return TaskState{Tasks: tasks, NextID: s.NextID}
}

package domain

import "fmt"

// VisibilityFilter selects which subset of tasks is displayed.
type VisibilityFilter string

const (
	FilterAll       VisibilityFilter = "all"       // Every task
	FilterActive    VisibilityFilter = "active"    // Tasks not completed
	FilterCompleted VisibilityFilter = "completed" // Completed tasks
)

// AllFilters returns the valid filter values in display order.
func AllFilters() []VisibilityFilter {
	return []VisibilityFilter{FilterAll, FilterActive, FilterCompleted}
}

// IsValid returns true if the filter is one of the enumerated values.
func (f VisibilityFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable label for the filter.
func (f VisibilityFilter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return string(f)
	}
}

// Next returns the filter after f in display order, wrapping around.
// Unknown values move to FilterAll.
func (f VisibilityFilter) Next() VisibilityFilter {
	all := AllFilters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// ParseVisibilityFilter parses a filter name.
// An empty string parses to FilterAll.
func ParseVisibilityFilter(s string) (VisibilityFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := VisibilityFilter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q (want all, active or completed)", ErrInvalidFilter, s)
	}
	return f, nil
}

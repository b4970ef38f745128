// Package script decodes YAML action scripts for the replay command.
//
// A script is a document with an actions list:
//
//	actions:
//	  - {type: add, text: buy milk}
//	  - {type: toggle, id: 1}
//	  - {type: filter, filter: active}
//
// JSON documents are accepted as well since JSON is a subset of YAML.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/git-todo/internal/domain"
)

// Ensure Decoder implements domain.ScriptParser.
var _ domain.ScriptParser = (*Decoder)(nil)

// document is the top-level script layout.
type document struct {
	Actions []step `yaml:"actions"`
}

// step is one scripted action. Pointer fields distinguish "missing" from zero.
// Fields are ordered to minimize memory padding.
type step struct {
	Text      *string         `yaml:"text"`
	ID        *int            `yaml:"id"`
	Completed *bool           `yaml:"completed"`
	Type      string          `yaml:"type"`
	Filter    string          `yaml:"filter"`
	Tasks     domain.TaskList `yaml:"tasks"`
}

// Decoder parses action scripts.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Parse decodes content into actions, preserving order.
// Unknown keys, unknown step types and invalid filters are errors
// that name the 1-based step number.
func (d *Decoder) Parse(content []byte) ([]domain.Action, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyScript
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidScript, err)
	}
	if len(doc.Actions) == 0 {
		return nil, domain.ErrEmptyScript
	}

	actions := make([]domain.Action, 0, len(doc.Actions))
	for i, s := range doc.Actions {
		a, err := s.toAction()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// toAction converts a step into its domain action.
func (s step) toAction() (domain.Action, error) {
	switch domain.ActionKind(s.Type) {
	case domain.KindAddTask:
		if s.Text == nil {
			return nil, s.missing("text")
		}
		return domain.AddTask{Text: *s.Text}, nil
	case domain.KindToggleTask:
		if s.ID == nil {
			return nil, s.missing("id")
		}
		return domain.ToggleTask{ID: *s.ID}, nil
	case domain.KindToggleAllTasks:
		if s.Completed == nil {
			return nil, s.missing("completed")
		}
		return domain.ToggleAllTasks{Completed: *s.Completed}, nil
	case domain.KindEditTask:
		if s.ID == nil {
			return nil, s.missing("id")
		}
		if s.Text == nil {
			return nil, s.missing("text")
		}
		return domain.EditTask{ID: *s.ID, Text: *s.Text}, nil
	case domain.KindRemoveTask:
		if s.ID == nil {
			return nil, s.missing("id")
		}
		return domain.RemoveTask{ID: *s.ID}, nil
	case domain.KindRemoveCompletedTasks:
		return domain.RemoveCompletedTasks{}, nil
	case domain.KindSetTasks:
		return domain.SetTasks{Tasks: s.Tasks.Clone()}, nil
	case domain.KindChangeFilter:
		if s.Filter == "" {
			return nil, s.missing("filter")
		}
		f, err := domain.ParseVisibilityFilter(s.Filter)
		if err != nil {
			return nil, err
		}
		return domain.ChangeFilter{Filter: f}, nil
	case "":
		return nil, fmt.Errorf("%w: missing type", domain.ErrInvalidScript)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, s.Type)
	}
}

func (s step) missing(field string) error {
	return fmt.Errorf("%w: %s requires %q", domain.ErrInvalidScript, s.Type, field)
}

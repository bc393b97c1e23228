package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed task categories offered by the form.
type Category = string

// Priority is one of the fixed priorities, or empty when none was chosen.
type Priority = string

// Categories lists the selectable categories in display order.
var Categories = []Category{"Work", "Home", "Shopping", "College"}

// Priorities lists the selectable priorities in display order.
var Priorities = []Priority{"High", "Medium", "Low"}

// DefaultDueLayout matches the value produced by an HTML datetime-local input.
const DefaultDueLayout = "2006-01-02T15:04"

// fallback layouts tried after the configured one
var dueLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04:05"}

// Task is a single to-do item. It is treated as an immutable value: edits
// remove the record and insert a new one.
type Task struct {
	ID          string
	Name        string
	Category    Category
	Priority    Priority
	DueAt       string
	Description string
}

// NewTask creates a Task with a fresh identity.
func NewTask(name string, category Category, priority Priority, dueAt, description string) Task {
	return Task{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Priority:    priority,
		DueAt:       dueAt,
		Description: description,
	}
}

// HasPriority reports whether a priority was selected.
func (t Task) HasPriority() bool {
	return strings.TrimSpace(t.Priority) != ""
}

// DueTime parses DueAt with layout first, then with the fallback layouts.
// An empty layout means DefaultDueLayout.
func (t Task) DueTime(layout string) (time.Time, error) {
	return ParseDue(t.DueAt, layout)
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// ParseDue parses a due date-time in local time.
func ParseDue(value, layout string) (time.Time, error) {
	if layout == "" {
		layout = DefaultDueLayout
	}
	value = strings.TrimSpace(value)
	due, err := time.ParseInLocation(layout, value, time.Local)
	if err == nil {
		return due, nil
	}
	for _, l := range dueLayouts {
		if l == layout {
			continue
		}
		if d, lerr := time.ParseInLocation(l, value, time.Local); lerr == nil {
			return d, nil
		}
	}
	return time.Time{}, err
}

// IsCategory reports whether c is one of the known categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

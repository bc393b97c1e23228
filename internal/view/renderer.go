// Package view projects the task collection into display entries and keeps
// their countdowns fresh.
package view

import (
	"fmt"
	"strings"
	"time"

	"tasklist/internal/countdown"
	"tasklist/internal/domain"
	"tasklist/internal/services"
)

const (
	// AllCategories disables the category filter.
	AllCategories = "all"

	HeaderTasks = "Tasks List"
	HeaderEmpty = "Your Task List is empty!"
)

// Options selects which tasks are shown and in what order. Stored order is
// never changed by a projection.
type Options struct {
	Category string
	Sort     services.SortOrder
}

// Entry is one projected row.
type Entry struct {
	Task      domain.Task
	Countdown string
	Overdue   bool
}

// Renderer computes display entries for a list of tasks.
type Renderer struct {
	dueLayout string
}

// NewRenderer creates a Renderer parsing due dates with dueLayout.
func NewRenderer(dueLayout string) *Renderer {
	return &Renderer{dueLayout: dueLayout}
}

// Project filters and sorts a copy of tasks and computes each countdown
// against now. Nothing is cached between calls.
func (r *Renderer) Project(tasks []domain.Task, opts Options, now time.Time) []Entry {
	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesCategory(task, opts.Category) {
			filtered = append(filtered, task)
		}
	}

	filtered = services.SortTasksByDue(filtered, opts.Sort, r.dueLayout)

	entries := make([]Entry, len(filtered))
	for i, task := range filtered {
		entries[i] = r.entry(task, now)
	}
	return entries
}

// Refresh recomputes the countdown and overdue flag of existing entries.
func (r *Renderer) Refresh(entries []Entry, now time.Time) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = r.entry(e.Task, now)
	}
	return out
}

func (r *Renderer) entry(task domain.Task, now time.Time) Entry {
	text := countdown.RemainingText(task.DueAt, r.dueLayout, now)
	return Entry{
		Task:      task,
		Countdown: text,
		Overdue:   countdown.IsOverdue(text),
	}
}

func matchesCategory(task domain.Task, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return true
	}
	return task.Category == category
}

// Header returns the list heading for the given number of entries.
func Header(count int) string {
	if count > 0 {
		return HeaderTasks
	}
	return HeaderEmpty
}

// InfoLine returns the category and priority text shown after a task name.
func InfoLine(task domain.Task) string {
	if task.HasPriority() {
		return fmt.Sprintf(" - (%s) - %s priority - ", task.Category, task.Priority)
	}
	return fmt.Sprintf("- (%s) -", task.Category)
}

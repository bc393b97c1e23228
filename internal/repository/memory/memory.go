// Package memory is the default slice-backed task store.
package memory

import (
	"context"
	"fmt"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// Repository keeps tasks in a slice. It is owned by a single event loop and
// does no locking of its own.
type Repository struct {
	tasks []domain.Task
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{}
}

// Append adds task at the end of the sequence
func (r *Repository) Append(_ context.Context, task domain.Task) error {
	r.tasks = append(r.tasks, task)
	return nil
}

// Get returns the task with the given id
func (r *Repository) Get(_ context.Context, id string) (domain.Task, error) {
	for _, task := range r.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", id)
}

// List returns a copy of the stored sequence
func (r *Repository) List(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// DeleteByName removes every task whose name equals name
func (r *Repository) DeleteByName(_ context.Context, name string) (int, error) {
	kept := r.tasks[:0]
	removed := 0
	for _, task := range r.tasks {
		if task.Name == name {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	// clear the tail so removed tasks are not retained by the backing array
	for i := len(kept); i < len(r.tasks); i++ {
		r.tasks[i] = domain.Task{}
	}
	r.tasks = kept
	return removed, nil
}

// DeleteByID removes the task with the given id
func (r *Repository) DeleteByID(_ context.Context, id string) error {
	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("task", id)
}

// Reorder rearranges the stored tasks to follow ids
func (r *Repository) Reorder(_ context.Context, ids []string) error {
	if len(ids) != len(r.tasks) {
		return errors.NewInvalidInputError("ids", len(ids), fmt.Sprintf("expected %d ids", len(r.tasks)))
	}

	byID := make(map[string]domain.Task, len(r.tasks))
	for _, task := range r.tasks {
		byID[task.ID] = task
	}

	reordered := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		task, ok := byID[id]
		if !ok {
			return errors.NewInvalidInputError("ids", id, "unknown or repeated id")
		}
		delete(byID, id)
		reordered = append(reordered, task)
	}

	r.tasks = reordered
	return nil
}

// Close is a no-op for the in-memory store
func (r *Repository) Close() error {
	return nil
}

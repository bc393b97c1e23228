package services

import (
	"context"

	"tasklist/internal/domain"
)

// SortOrder defines how tasks are ordered by due date
type SortOrder string

const (
	SortNone       SortOrder = "none" // keep stored order
	SortAscending  SortOrder = "asc"  // soonest due first
	SortDescending SortOrder = "desc" // latest due first
)

// ParseSortOrder converts a flag or config value into a SortOrder
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortNone, "":
		return SortNone, true
	case SortAscending:
		return SortAscending, true
	case SortDescending:
		return SortDescending, true
	default:
		return "", false
	}
}

// TaskService is the ordered task collection. Add and Restore share one
// insertion path that always validates.
type TaskService interface {
	// Insertion
	Add(ctx context.Context, name, category, priority, dueAt, description string) (*domain.Task, error)
	Restore(ctx context.Context, task *domain.Task) error

	// Lookup
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)

	// Removal
	Delete(ctx context.Context, name string) (int, error)
	DeleteByID(ctx context.Context, id string) error

	// SortByDueDate reorders the stored sequence in place
	SortByDueDate(ctx context.Context, order SortOrder) error
}

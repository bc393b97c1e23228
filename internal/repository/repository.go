// Package repository defines the ordered task store behind the task service.
package repository

import (
	"context"

	"tasklist/internal/domain"
)

// Repository stores tasks as an ordered sequence. Implementations keep
// insertion order until Reorder is called and hold nothing beyond the
// lifetime of the process.
type Repository interface {
	// Append adds task at the end of the sequence
	Append(ctx context.Context, task domain.Task) error

	// Read operations
	Get(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)

	// DeleteByName removes every task named exactly name and returns the count
	DeleteByName(ctx context.Context, name string) (int, error)
	// DeleteByID removes a single task, returning a NotFound error if absent
	DeleteByID(ctx context.Context, id string) error

	// Reorder replaces the stored order; ids must be a permutation of the stored ids
	Reorder(ctx context.Context, ids []string) error

	Close() error
}

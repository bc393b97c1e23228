package services

import (
	"sort"
	"time"

	"tasklist/internal/domain"
)

// SortTasksByDue returns a copy of tasks ordered by parsed due date. Tasks
// whose due date cannot be parsed go last in either direction. SortNone
// returns the copy unchanged.
func SortTasksByDue(tasks []domain.Task, order SortOrder, layout string) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)

	if order != SortAscending && order != SortDescending {
		return sorted
	}

	type keyed struct {
		due   time.Time
		valid bool
	}
	keys := make(map[string]keyed, len(sorted))
	for _, task := range sorted {
		due, err := task.DueTime(layout)
		keys[task.ID] = keyed{due: due, valid: err == nil}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := keys[sorted[i].ID], keys[sorted[j].ID]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}
		if order == SortDescending {
			return a.due.After(b.due)
		}
		return a.due.Before(b.due)
	})

	return sorted
}

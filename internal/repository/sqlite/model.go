package sqlite

import "tasklist/internal/domain"

// taskRow mirrors one row of the tasks table
type taskRow struct {
	ID          string
	Position    int64
	Name        string
	Category    string
	Priority    string
	DueAt       string
	Description string
}

// toDomain converts a database row to a domain Task
func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Priority:    r.Priority,
		DueAt:       r.DueAt,
		Description: r.Description,
	}
}

// rowsToDomain converts a slice of rows preserving order
func rowsToDomain(rows []*taskRow) []domain.Task {
	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks
}

package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanTask scans a single task row in taskColumns order
func scanTask(scanner Scanner) (*taskRow, error) {
	row := &taskRow{}
	err := scanner.Scan(
		&row.ID,
		&row.Position,
		&row.Name,
		&row.Category,
		&row.Priority,
		&row.DueAt,
		&row.Description,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// scanTasks scans multiple task rows
func scanTasks(rows Rows) ([]*taskRow, error) {
	var tasks []*taskRow
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

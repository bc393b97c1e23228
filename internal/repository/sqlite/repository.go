// Package sqlite is a task store on an in-memory SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// memoryDSN opens a private database that disappears with its connection
const memoryDSN = ":memory:"

const taskColumns = `id, position, name, category, priority, due_at, description`

// SQLiteRepository implements repository.Repository
type SQLiteRepository struct {
	db *sql.DB
}

// New opens a fresh in-memory database and applies the schema
func New(ctx context.Context) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// every pooled connection would otherwise see its own empty database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("ping database", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection, discarding all tasks
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Append inserts task after the current last position
func (r *SQLiteRepository) Append(ctx context.Context, task domain.Task) error {
	query := `
	INSERT INTO tasks (` + taskColumns + `)
	VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks), ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Name, task.Category, task.Priority, task.DueAt, task.Description)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}
	return nil
}

// Get retrieves a task by id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row, err := QuerySingle(ctx, r.db, query, scanTask, "task", id, id)
	if err != nil {
		return domain.Task{}, err
	}
	return row.toDomain(), nil
}

// List retrieves all tasks in stored order
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY position ASC`
	rows, err := QueryMultiple(ctx, r.db, query, scanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	return rowsToDomain(rows), nil
}

// DeleteByName removes every task with exactly this name
func (r *SQLiteRepository) DeleteByName(ctx context.Context, name string) (int, error) {
	return ExecuteCountingRows(ctx, r.db, `DELETE FROM tasks WHERE name = ?`, name)
}

// DeleteByID removes one task by id
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, "task", id, id)
}

// Reorder rewrites the position column to follow ids
func (r *SQLiteRepository) Reorder(ctx context.Context, ids []string) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return HandleDatabaseError("count tasks", err)
	}
	if count != len(ids) {
		return errors.NewInvalidInputError("ids", len(ids), fmt.Sprintf("expected %d ids", count))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin reorder", err)
	}
	defer tx.Rollback()

	// move everything out of the way first so positions never collide
	if _, err := tx.ExecContext(ctx, `UPDATE tasks SET position = -position`); err != nil {
		return HandleDatabaseError("reorder tasks", err)
	}

	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			return errors.NewInvalidInputError("ids", id, "unknown or repeated id")
		}
		seen[id] = true
		err := ExecuteWithRowsAffected(ctx, tx, `UPDATE tasks SET position = ? WHERE id = ?`, "task", id, i+1, id)
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
				return errors.NewInvalidInputError("ids", id, "unknown or repeated id")
			}
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit reorder", err)
	}
	return nil
}

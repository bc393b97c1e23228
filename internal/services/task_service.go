package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/repository"
	"tasklist/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
	dueLayout     string
}

// NewTaskService creates a TaskService over repo. dueLayout is the layout
// used to parse due dates when sorting; empty means domain.DefaultDueLayout.
func NewTaskService(repo repository.Repository, dueLayout string) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
		dueLayout:     dueLayout,
	}
}

// Add builds a new task with a fresh identity and inserts it
func (t *taskServiceImpl) Add(ctx context.Context, name, category, priority, dueAt, description string) (*domain.Task, error) {
	task := domain.NewTask(name, category, priority, dueAt, description)
	if err := t.insert(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Restore re-inserts a previously removed task, keeping its identity
func (t *taskServiceImpl) Restore(ctx context.Context, task *domain.Task) error {
	return t.insert(ctx, task)
}

// insert is the only way a task enters the collection
func (t *taskServiceImpl) insert(ctx context.Context, task *domain.Task) error {
	if err := t.taskValidator.ValidateTask(task); err != nil {
		logging.Debugf("rejected task %q: %v", taskName(task), err)
		return err
	}

	if err := t.repo.Append(ctx, *task); err != nil {
		return err
	}

	logging.Logger().Debug("task added", "id", task.ID, "name", task.Name)
	return nil
}

// Get retrieves a task by id
func (t *taskServiceImpl) Get(ctx context.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, errors.NewInvalidInputError("id", id, "task id must not be empty")
	}

	task, err := t.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the current sequence
func (t *taskServiceImpl) List(ctx context.Context) ([]domain.Task, error) {
	return t.repo.List(ctx)
}

// Delete removes every task with exactly this name. Deleting a name that is
// not present is not an error.
func (t *taskServiceImpl) Delete(ctx context.Context, name string) (int, error) {
	removed, err := t.repo.DeleteByName(ctx, name)
	if err != nil {
		return 0, err
	}

	logging.Logger().Debug("tasks deleted by name", "name", name, "removed", removed)
	return removed, nil
}

// DeleteByID removes a single task
func (t *taskServiceImpl) DeleteByID(ctx context.Context, id string) error {
	if err := t.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	logging.Logger().Debug("task deleted", "id", id)
	return nil
}

// SortByDueDate reorders the stored sequence by due date
func (t *taskServiceImpl) SortByDueDate(ctx context.Context, order SortOrder) error {
	if order != SortAscending && order != SortDescending {
		return errors.NewInvalidInputError("order", order, "sort order must be asc or desc")
	}

	tasks, err := t.repo.List(ctx)
	if err != nil {
		return err
	}

	sorted := SortTasksByDue(tasks, order, t.dueLayout)
	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}

	return t.repo.Reorder(ctx, ids)
}

func taskName(task *domain.Task) string {
	if task == nil {
		return "<nil>"
	}
	return task.Name
}

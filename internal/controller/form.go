// Package controller implements the add/edit form workflow on top of the
// task service.
package controller

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/logging"
	"tasklist/internal/services"
	"tasklist/internal/validation"
)

// FormValues are the raw values entered in the task form.
type FormValues struct {
	Name        string
	Category    string
	Priority    string
	DueAt       string
	Description string
}

// ValuesOf returns the form values that reproduce task.
func ValuesOf(task domain.Task) FormValues {
	return FormValues{
		Name:        task.Name,
		Category:    task.Category,
		Priority:    task.Priority,
		DueAt:       task.DueAt,
		Description: task.Description,
	}
}

// FormController owns the single being-edited slot. At most one task is
// out of the collection for editing at any time.
type FormController struct {
	taskService services.TaskService
	editing     *domain.Task
}

// NewFormController creates a FormController with an empty slot.
func NewFormController(taskService services.TaskService) *FormController {
	return &FormController{taskService: taskService}
}

// Editing returns the task currently being edited, or nil.
func (c *FormController) Editing() *domain.Task {
	return c.editing
}

// BeginEdit takes the task out of the collection and holds it in the slot.
// A task already in the slot is put back first.
func (c *FormController) BeginEdit(ctx context.Context, id string) (*domain.Task, error) {
	if c.editing != nil {
		if err := c.Cancel(ctx); err != nil {
			return nil, err
		}
	}

	task, err := c.taskService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.taskService.DeleteByID(ctx, task.ID); err != nil {
		return nil, err
	}

	c.editing = task
	logging.Debugf("editing task %s (%s)", task.ID, task.Name)
	return task, nil
}

// Submit adds a task built from values. On a *validation.ValidationError
// nothing is stored and the slot is kept so the user can correct the form.
// On success the slot is discarded; the new task replaces it.
func (c *FormController) Submit(ctx context.Context, values FormValues) (*domain.Task, error) {
	task, err := c.taskService.Add(ctx, values.Name, values.Category, values.Priority, values.DueAt, values.Description)
	if err != nil {
		return nil, err
	}

	if c.editing != nil {
		logging.Debugf("edit of %s replaced by %s", c.editing.ID, task.ID)
	}
	c.editing = nil
	return task, nil
}

// Cancel puts the slot task back through the normal insertion path.
func (c *FormController) Cancel(ctx context.Context) error {
	if c.editing == nil {
		return nil
	}
	if err := c.taskService.Restore(ctx, c.editing); err != nil {
		return err
	}
	logging.Debugf("edit of %s cancelled", c.editing.ID)
	c.editing = nil
	return nil
}

// FormErrors holds the message shown under each form field.
type FormErrors struct {
	messages map[validation.Field]string
}

// NewFormErrors creates an empty set.
func NewFormErrors() *FormErrors {
	return &FormErrors{messages: make(map[validation.Field]string)}
}

// Set replaces all messages with the ones in ve.
func (fe *FormErrors) Set(ve *validation.ValidationError) {
	fe.messages = make(map[validation.Field]string)
	if ve == nil {
		return
	}
	for field, msg := range ve.Report() {
		fe.messages[field] = msg
	}
}

// Clear removes the message for one field.
func (fe *FormErrors) Clear(field validation.Field) {
	delete(fe.messages, field)
}

// Reset removes every message.
func (fe *FormErrors) Reset() {
	fe.messages = make(map[validation.Field]string)
}

// Get returns the message for field, or "".
func (fe *FormErrors) Get(field validation.Field) string {
	return fe.messages[field]
}

// Empty reports whether no field has a message.
func (fe *FormErrors) Empty() bool {
	return len(fe.messages) == 0
}

package validation

import (
	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// Messages shown next to the offending form field.
const (
	MsgEmptyField         = "This field cannot be empty!"
	MsgTaskNameInvalid    = "Task name can only include letters, numbers, and spaces."
	MsgDescriptionInvalid = "Description can only include letters, numbers, and usual punctuation."
	MsgChooseCategory     = "Category must be chosen."
	MsgDueAt              = "Due date and time must be chosen."
)

// TaskValidator composes the field checks into a per-field report for a task
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTask checks every field of task independently. It returns nil when
// the task is valid and a *ValidationError holding all failures otherwise.
// A nil task is a caller bug and yields an InvalidInput AppError.
func (tv *TaskValidator) ValidateTask(task *domain.Task) error {
	if task == nil {
		return errors.NewInvalidInputError("task", nil, "task must not be nil")
	}

	validationError := NewValidationError()

	if tv.validator.IsEmpty(task.Name) {
		validationError.AddRequiredError(FieldName, MsgEmptyField)
	} else if !tv.validator.LegalTaskName(task.Name) {
		validationError.AddInvalidCharacterError(FieldName, task.Name, MsgTaskNameInvalid)
	}

	if tv.validator.IsEmpty(task.Category) {
		validationError.AddRequiredError(FieldCategory, MsgChooseCategory)
	}

	if tv.validator.IsEmpty(task.DueAt) {
		validationError.AddRequiredError(FieldDueAt, MsgDueAt)
	}

	if !tv.validator.LegalDescription(task.Description) {
		validationError.AddInvalidCharacterError(FieldDescription, task.Description, MsgDescriptionInvalid)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

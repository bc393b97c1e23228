package cli

import (
	"errors"
	"testing"

	apperrors "tasklist/internal/errors"
	"tasklist/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError(validation.FieldName, validation.MsgEmptyField)

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Task validation error",
			operation: "add task",
			err:       ve,
			expected:  "failed to add task: " + validation.MsgEmptyField,
		},
		{
			name:      "Not found error",
			operation: "edit task",
			err:       apperrors.NewNotFoundError("task", "123"),
			expected:  "failed to edit task: task not found: 123",
		},
		{
			name:      "Database error",
			operation: "save task",
			err:       apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected:  "failed to save task: A storage error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}

	if eh.Handle("noop", nil) != nil {
		t.Error("ErrorHandler.Handle(nil) should return nil")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Invalid input error",
			err:      apperrors.NewInvalidInputError("task", nil, "task must not be nil"),
			expected: "Internal error: invalid input for task: task must not be nil",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_TypeChecks(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsValidationError(validation.NewValidationError()) {
		t.Error("IsValidationError() should accept *validation.ValidationError")
	}
	if !eh.IsValidationError(apperrors.NewValidationError("bad", nil)) {
		t.Error("IsValidationError() should accept validation AppErrors")
	}
	if !eh.IsNotFoundError(apperrors.NewNotFoundError("task", "1")) {
		t.Error("IsNotFoundError() should accept not found errors")
	}
	if !eh.IsDatabaseError(apperrors.NewDatabaseError("op", errors.New("x"))) {
		t.Error("IsDatabaseError() should accept database errors")
	}
	if got := eh.GetErrorCode(errors.New("plain")); got != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", got)
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Database", ErrorTypeDatabase, "database"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Config", ErrorTypeConfig, "config"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Type: ErrorTypeNotFound, Message: "task not found: abc"}
	assert.Equal(t, "not_found: task not found: abc", plain.Error())

	wrapped := &AppError{Type: ErrorTypeDatabase, Message: "insert failed", Cause: errors.New("locked")}
	assert.Equal(t, "database: insert failed: locked", wrapped.Error())
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("task", nil, "task must not be nil")

	assert.Equal(t, ErrorTypeInvalidInput, err.Type)
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, "invalid input for task: task must not be nil", err.Message)

	reason, ok := err.GetContext("reason")
	require.True(t, ok)
	assert.Equal(t, "task must not be nil", reason)
}

func TestIsErrorType_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("begin edit: %w", NewNotFoundError("task", "42"))

	assert.True(t, IsAppError(err))
	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeInvalidInput))
	assert.Equal(t, "NOT_FOUND", GetErrorCode(err))

	assert.False(t, IsAppError(errors.New("plain")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("no such file")
	err := WrapError(cause, ErrorTypeValidation, "cannot read seed file tasks.yaml")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validation", err.Code)
	assert.Equal(t, "cannot read seed file tasks.yaml", GetUserMessage(err))
	assert.False(t, ShouldLogError(err))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found keeps message", NewNotFoundError("task", "x"), "task not found: x"},
		{"database is hidden", NewDatabaseError("insert", errors.New("disk")), "A storage error occurred. Please try again."},
		{"invalid input is flagged internal", NewInvalidInputError("task", nil, "nil"), "Internal error: invalid input for task: nil"},
		{"plain error", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("open", nil)))
	assert.True(t, ShouldLogError(NewInvalidInputError("task", nil, "nil")))
	assert.True(t, ShouldLogError(errors.New("unknown")))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewConfigError("tasklist.toml", errors.New("bad toml")).WithContext("line", 3)

	line, ok := err.GetContext("line")
	require.True(t, ok)
	assert.Equal(t, 3, line)
	_, ok = (&AppError{}).GetContext("missing")
	assert.False(t, ok)
}

package cli

import (
	"errors"
	"fmt"
	"testing"

	apperrors "task-planner/internal/errors"
	"task-planner/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add task",
			err:       apperrors.NewValidationError("invalid input", nil),
			expected:  "failed to add task: invalid input",
		},
		{
			name:      "Not found error",
			operation: "export tasks",
			err:       apperrors.NewNotFoundError("task", "all tasks"),
			expected:  "failed to export tasks: task not found: all tasks",
		},
		{
			name:      "Database error",
			operation: "purge tasks",
			err:       apperrors.NewDatabaseError("delete", errors.New("disk I/O error")),
			expected:  "failed to purge tasks: A database error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "serve",
			err:       errors.New("address already in use"),
			expected:  "failed to serve: address already in use",
		},
		{
			name:      "Nil error",
			operation: "serve",
			err:       nil,
			expected:  "failed to serve: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.Handle(tt.operation, tt.err), tt.expected)
		})
	}
}

func TestErrorHandler_HandleKeepsPlainErrorChain(t *testing.T) {
	eh := NewErrorHandler()
	cause := errors.New("boom")

	err := eh.Handle("export tasks", fmt.Errorf("create export file: %w", cause))
	assert.ErrorIs(t, err, cause)
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", apperrors.NewValidationError("invalid input", nil), "invalid input"},
		{"Not found error", apperrors.NewNotFoundError("task", "42"), "task not found: 42"},
		{"Database error", apperrors.NewDatabaseError("insert", errors.New("locked")), "A database error occurred. Please try again."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.HandleSimple(tt.err), tt.expected)
		})
	}
}

func TestErrorHandler_IsValidationError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"AppError validation", apperrors.NewValidationError("invalid input", nil), true},
		{
			"Field validation error",
			&validation.ValidationError{Errors: []validation.FieldError{{Field: "name", Message: "required"}}},
			true,
		},
		{"Database error", apperrors.NewDatabaseError("insert", nil), false},
		{"Regular error", errors.New("regular error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eh.IsValidationError(tt.err))
		})
	}
}

func TestErrorHandler_IsNotFoundError(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsNotFoundError(apperrors.NewNotFoundError("task", "7")))
	assert.True(t, eh.IsNotFoundError(fmt.Errorf("wrapped: %w", apperrors.NewNotFoundError("task", "7"))))
	assert.False(t, eh.IsNotFoundError(apperrors.NewValidationError("invalid input", nil)))
	assert.False(t, eh.IsNotFoundError(errors.New("regular error")))
}

func TestErrorHandler_ExitCode(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Success", nil, 0},
		{"Not found", apperrors.NewNotFoundError("task", "all tasks"), 2},
		{"Invalid input", apperrors.NewInvalidInputError("month", "x", "must be a number"), 2},
		{"Invalid date", apperrors.NewInvalidDateError("2025", "13", "1"), 2},
		{"Field validation", &validation.ValidationError{Errors: []validation.FieldError{{Field: "name"}}}, 2},
		{"Database", apperrors.NewDatabaseError("open database", nil), 1},
		{"Timeout", apperrors.NewTimeoutError("search tasks", "2s"), 1},
		{"Plain", errors.New("listen tcp: address in use"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eh.ExitCode(tt.err))
		})
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	assert.Equal(t, "VALIDATION_FAILED", eh.GetErrorCode(apperrors.NewValidationError("invalid input", nil)))
	assert.Equal(t, "DUPLICATE_ENTRY", eh.GetErrorCode(apperrors.NewDuplicateError("task", "Meeting@2025-10-10", 3)))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("regular error")))
}

func TestErrorHandler_HandleValidationError(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := &validation.ValidationError{
		Errors: []validation.FieldError{
			{Field: "name", Message: "task name is required"},
		},
	}

	assert.EqualError(t, eh.Handle("add task", validationErr), "failed to add task: task name is required")
}

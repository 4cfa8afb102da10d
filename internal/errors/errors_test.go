package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "name=Meeting deadline=2025-10-10")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: name=Meeting deadline=2025-10-10" {
		t.Errorf("NewNotFoundError message = %v", err.Message)
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "name=Meeting deadline=2025-10-10" {
		t.Errorf("NewNotFoundError should carry the lookup key")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("insert task", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: insert task" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewDatabaseError should unwrap to its cause")
	}
}

func TestNewIncompleteDateError(t *testing.T) {
	err := NewIncompleteDateError("2025", "", "10")

	if err.Type != ErrorTypeIncompleteDate {
		t.Errorf("type = %v, want %v", err.Type, ErrorTypeIncompleteDate)
	}
	if err.Code != "INCOMPLETE_DATE" {
		t.Errorf("code = %v, want INCOMPLETE_DATE", err.Code)
	}
	month, ok := err.GetContext("month")
	if !ok || month != "" {
		t.Errorf("context should keep the missing month component")
	}
}

func TestNewInvalidDateError(t *testing.T) {
	err := NewInvalidDateError("2025", "02", "30")

	if err.Type != ErrorTypeInvalidDate {
		t.Errorf("type = %v, want %v", err.Type, ErrorTypeInvalidDate)
	}
	if err.Message != "wrong date 2025-02-30" {
		t.Errorf("message = %v", err.Message)
	}
}

func TestNewDuplicateError(t *testing.T) {
	tests := []struct {
		name       string
		existingID int64
		expected   string
	}{
		{"with existing id", 7, "task already exists: Meeting@2025-10-10 (id 7)"},
		{"without existing id", 0, "task already exists: Meeting@2025-10-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDuplicateError("task", "Meeting@2025-10-10", tt.existingID)
			if err.Message != tt.expected {
				t.Errorf("message = %v, want %v", err.Message, tt.expected)
			}
			if err.Code != "DUPLICATE_ENTRY" {
				t.Errorf("code = %v, want DUPLICATE_ENTRY", err.Code)
			}
		})
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("done", "maybe", "expected true or false")

	if err.Message != "invalid input for done: expected true or false" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	value, ok := err.GetContext("value")
	if !ok || value != "maybe" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestFromContextError(t *testing.T) {
	err := FromContextError("search tasks", fmt.Errorf("query: %w", context.DeadlineExceeded))
	if !IsErrorType(err, ErrorTypeTimeout) {
		t.Errorf("deadline exceeded should become a timeout error, got %v", err)
	}

	plain := errors.New("boom")
	if FromContextError("search tasks", plain) != plain {
		t.Errorf("other errors should pass through unchanged")
	}
}

func TestIsAppError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("task", "1"))

	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should see through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestIsNotFoundAndIsDateError(t *testing.T) {
	if !IsNotFound(NewNotFoundError("task", "1")) {
		t.Errorf("IsNotFound should match not found errors")
	}
	if IsNotFound(NewDatabaseError("query", nil)) {
		t.Errorf("IsNotFound should not match database errors")
	}
	if !IsDateError(NewIncompleteDateError("", "1", "")) || !IsDateError(NewInvalidDateError("1", "13", "1")) {
		t.Errorf("IsDateError should match both date error types")
	}
	if IsDateError(NewValidationError("name", nil)) {
		t.Errorf("IsDateError should not match validation errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("invalid task name", nil), "invalid task name"},
		{"Not found error", NewNotFoundError("task", "123"), "task not found: 123"},
		{"Duplicate error", NewDuplicateError("task", "X@2025-01-01", 3), "task already exists: X@2025-01-01 (id 3)"},
		{"Invalid date error", NewInvalidDateError("2025", "2", "30"), "wrong date 2025-2-30"},
		{"Database error", NewDatabaseError("query", errors.New("locked")), "A database error occurred. Please try again."},
		{"Timeout error", NewTimeoutError("query", "5s"), "The operation timed out. Please try again."},
		{"Permission error", NewPermissionError("delete", "task"), "permission denied for delete on task"},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := GetUserMessage(tt.err); result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewDuplicateError("task", "k", 0)) != "DUPLICATE_ENTRY" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Incomplete date error", NewIncompleteDateError("2025", "", ""), false},
		{"Duplicate error", NewDuplicateError("task", "k", 1), false},
		{"Database error", NewDatabaseError("query", errors.New("locked")), true},
		{"Timeout error", NewTimeoutError("query", "5s"), true},
		{"Permission error", NewPermissionError("delete", "task"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ShouldLogError(tt.err); result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

package validation

import (
	"time"

	"task-planner/internal/domain"
)

// TaskValidator provides validation for Task-related operations. Every
// method returns nil or a validation AppError wrapping a *ValidationError.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithValidator shares a configured Validator
func NewTaskValidatorWithValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTaskName validates a task name for creation or search
func (tv *TaskValidator) ValidateTaskName(name string) error {
	ve := NewValidationError()
	tv.checkName(ve, name)
	return ve.AppError()
}

// ValidateComment checks the comment length
func (tv *TaskValidator) ValidateComment(comment string) error {
	ve := NewValidationError()
	tv.checkComment(ve, comment)
	return ve.AppError()
}

// ValidateDeadline rejects deadlines on a day before today unless past
// deadlines are allowed by configuration
func (tv *TaskValidator) ValidateDeadline(deadline time.Time) error {
	ve := NewValidationError()
	tv.checkDeadline(ve, "deadline", deadline)
	return ve.AppError()
}

// ValidateTask validates a domain.Task object as stored, without the
// deadline-in-past rule
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	ve := NewValidationError()
	tv.checkName(ve, task.Name)
	tv.checkComment(ve, task.Comment)
	if task.Deadline.IsZero() {
		ve.AddRequiredError("deadline")
	}
	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		ve.AddInvalidValueError("task_id", task.ID, "must be a positive integer")
	}
	return ve.AppError()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	ve := NewValidationError()
	if !tv.validator.IsValidTaskID(id) {
		ve.AddInvalidValueError("task_id", id, "must be a positive integer")
	}
	return ve.AppError()
}

// ValidateSearchRange checks that the start of a range is not after its end
func (tv *TaskValidator) ValidateSearchRange(from, to *time.Time) error {
	ve := NewValidationError()
	if !tv.validator.IsValidDateRange(from, to) {
		ve.AddInvalidRangeError("date_range", nil, "start date is after end date")
	}
	return ve.AppError()
}

// GetValidTaskName returns the normalized task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return domain.NormalizeName(name), nil
}

func (tv *TaskValidator) checkName(ve *ValidationError, name string) {
	trimmed := tv.validator.TrimAndValidateString(name)
	if !tv.validator.IsNonEmptyString(trimmed) {
		ve.AddRequiredError("name")
		return
	}
	if !tv.validator.IsValidTaskNameLength(trimmed) {
		ve.AddInvalidLengthError("name", trimmed, tv.validator.getTaskNameMinLength(), tv.validator.getTaskNameMaxLength())
	}
	if tv.validator.HasControlCharacters(trimmed) {
		ve.AddInvalidCharacterError("name", trimmed)
	}
}

func (tv *TaskValidator) checkComment(ve *ValidationError, comment string) {
	if !tv.validator.IsValidStringLength(comment, 0, tv.validator.getCommentMaxLength()) {
		ve.AddInvalidLengthError("comment", comment, 0, tv.validator.getCommentMaxLength())
	}
}

func (tv *TaskValidator) checkDeadline(ve *ValidationError, field string, deadline time.Time) {
	if deadline.IsZero() {
		ve.AddRequiredError(field)
		return
	}
	if tv.validator.rejectPastDeadlines() && !tv.validator.IsNotInPast(deadline) {
		ve.AddInvalidRangeError(field, deadline.Format(domain.DateLayout), "date is in the past")
	}
}

package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"task-planner/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
	now    func() time.Time
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
		now:    time.Now,
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for "today"
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Today returns midnight UTC of the current local calendar day
func (v *Validator) Today() time.Time {
	y, m, d := v.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the rune count of the trimmed string is
// within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, v.getTaskNameMinLength(), v.getTaskNameMaxLength())
}

// HasControlCharacters reports newlines, tabs and other control runes
func (v *Validator) HasControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsNotInPast reports whether the deadline's day is today or later
func (v *Validator) IsNotInPast(deadline time.Time) bool {
	y, m, d := deadline.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(v.Today())
}

// IsValidDateRange checks if a date range is logical
func (v *Validator) IsValidDateRange(from, to *time.Time) bool {
	if from == nil || to == nil {
		return true
	}
	return !from.After(*to)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getTaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1
}

func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255
}

func (v *Validator) getCommentMaxLength() int {
	if v.config != nil {
		return v.config.Validation.CommentMaxLength
	}
	return 2000
}

func (v *Validator) rejectPastDeadlines() bool {
	if v.config != nil {
		return v.config.Validation.RejectPastDeadlines
	}
	return true
}

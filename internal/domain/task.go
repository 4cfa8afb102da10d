package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"task-planner/internal/errors"
)

// DateLayout is the YYYY-MM-DD form used for deadline keys, URLs and exports
const DateLayout = "2006-01-02"

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Deadline time.Time `json:"deadline"`
	Comment  string    `json:"comment"`
	Done     bool      `json:"done"`
}

// NewTask creates a not yet persisted task. The name is normalized and the
// deadline truncated to its calendar day.
func NewTask(name string, deadline time.Time, comment string) Task {
	return Task{
		Name:     NormalizeName(name),
		Deadline: TruncateToDay(deadline),
		Comment:  comment,
	}
}

// DeadlineDate returns the deadline as YYYY-MM-DD
func (t Task) DeadlineDate() string {
	return t.Deadline.Format(DateLayout)
}

// Key identifies the task the way forms address it: name and deadline day
func (t Task) Key() string {
	return t.Name + "@" + t.DeadlineDate()
}

// String returns a short description for display purposes.
func (t Task) String() string {
	return t.Name + " (" + t.DeadlineDate() + ")"
}

// TaskPatch lists the fields an update replaces. Nil fields are left as they are.
type TaskPatch struct {
	Deadline *time.Time
	Comment  *string
	Done     *bool
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Deadline == nil && p.Comment == nil && p.Done == nil
}

// TruncateToDay returns midnight UTC of t's calendar day
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeName trims surrounding whitespace and upper-cases the first rune.
// The rest of the name is kept as typed.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// ParseDone reads a done flag from form or query input. Blank input means the
// filter is absent and yields nil.
func ParseDone(raw string) (*bool, error) {
	var value bool
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true", "yes", "1", "on":
		value = true
	case "false", "no", "0", "off":
		value = false
	default:
		return nil, errors.NewInvalidInputError("done", raw, "expected true or false")
	}
	return &value, nil
}

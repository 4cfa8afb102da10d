package sqlite

import (
	"time"
)

// Task is a row of the tasks table
type Task struct {
	ID       int64
	Name     string
	Deadline time.Time // midnight UTC of the deadline day
	Comment  string
	Done     bool
}

// TaskPatch lists the fields an update replaces; nil fields are kept
type TaskPatch struct {
	Deadline *time.Time
	Comment  *string
	Done     *bool
}

// SearchOptions contains all possible search parameters. Nil fields are not
// applied; From and To are inclusive day bounds on the deadline.
type SearchOptions struct {
	ID      *int64
	Name    *string
	Comment *string
	Done    *bool
	From    *time.Time
	To      *time.Time
}

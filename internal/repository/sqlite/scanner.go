package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns is the column list every task query selects, in ScanTask order
const taskColumns = "id, name, deadline, comment, done"

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var deadline string

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&deadline,
		&task.Comment,
		&task.Done,
	)
	if err != nil {
		return nil, err
	}

	task.Deadline, err = ParseTimeFromDB(deadline)
	if err != nil {
		return nil, fmt.Errorf("task %d has malformed deadline %q: %w", task.ID, deadline, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"task-planner/internal/errors"
	"task-planner/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error)
	CountTasks(ctx context.Context, opts SearchOptions) (int64, error)

	// Update operations
	UpdateTaskByKey(ctx context.Context, name string, deadline time.Time, patch TaskPatch) (*Task, error)

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error
	DeleteTaskByKey(ctx context.Context, name string, deadline time.Time) error
	DeleteDoneTasks(ctx context.Context) (int64, error)

	// Utility
	Ping(ctx context.Context) error
	Close() error
}

// Options tunes the connection pool
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
}

// DefaultOptions returns the pool settings used by New
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    4,
		MaxIdleConns:    4,
		ConnMaxLifetime: time.Hour,
		BusyTimeout:     5 * time.Second,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens dbPath with the given pool settings and runs migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", buildDSN(dbPath, opts))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// every connection to :memory: sees its own empty database
	if isMemoryPath(dbPath) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxIdleConns)
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func isMemoryPath(dbPath string) bool {
	return dbPath == ":memory:" || strings.Contains(dbPath, "mode=memory")
}

func buildDSN(dbPath string, opts Options) string {
	if isMemoryPath(dbPath) || strings.Contains(dbPath, "?") {
		return dbPath
	}
	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeout.Milliseconds()))
	params.Add("_pragma", "journal_mode(WAL)")
	return dbPath + "?" + params.Encode()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping checks that a pooled connection can reach the database
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// CreateTask creates a new task. A task with the same name and deadline
// already present violates the unique index and yields a duplicate error.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (name, deadline, comment, done)
	VALUES (?, ?, ?, ?)`

	task.Deadline = TruncateToDay(task.Deadline)
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, FormatTimeForDB(task.Deadline), task.Comment, task.Done)
	if err != nil {
		if IsUniqueViolation(err) {
			return errors.NewDuplicateError("task", taskKey(task.Name, task.Deadline), 0)
		}
		return HandleDatabaseError("insert task", err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// SearchTasks returns the tasks matching every non-nil option, ordered by
// deadline then id. No match is an empty slice, not an error.
func (r *SQLiteRepository) SearchTasks(ctx context.Context, opts SearchOptions) ([]*Task, error) {
	where, args := buildConditions(opts)
	query := `SELECT ` + taskColumns + ` FROM tasks` + where + ` ORDER BY deadline ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// CountTasks counts the tasks matching opts
func (r *SQLiteRepository) CountTasks(ctx context.Context, opts SearchOptions) (int64, error) {
	where, args := buildConditions(opts)
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`+where, args...).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

// UpdateTaskByKey looks up the task by (name, deadline) and applies patch in
// one transaction, returning the stored result.
func (r *SQLiteRepository) UpdateTaskByKey(ctx context.Context, name string, deadline time.Time, patch TaskPatch) (*Task, error) {
	var updated *Task
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		task, err := r.findByKey(ctx, tx, name, deadline)
		if err != nil {
			return err
		}

		if patch.Deadline != nil {
			task.Deadline = TruncateToDay(*patch.Deadline)
		}
		if patch.Comment != nil {
			task.Comment = *patch.Comment
		}
		if patch.Done != nil {
			task.Done = *patch.Done
		}

		query := `UPDATE tasks SET deadline = ?, comment = ?, done = ? WHERE id = ?`
		_, err = tx.ExecContext(ctx, query, FormatTimeForDB(task.Deadline), task.Comment, task.Done, task.ID)
		if err != nil {
			if IsUniqueViolation(err) {
				return errors.NewDuplicateError("task", taskKey(task.Name, task.Deadline), 0)
			}
			return HandleDatabaseError("update task", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// DeleteTaskByKey deletes the task identified by (name, deadline)
func (r *SQLiteRepository) DeleteTaskByKey(ctx context.Context, name string, deadline time.Time) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		task, err := r.findByKey(ctx, tx, name, deadline)
		if err != nil {
			return err
		}
		query := `DELETE FROM tasks WHERE id = ?`
		return ExecuteWithRowsAffected(ctx, tx, query, "task", taskKey(name, deadline), task.ID)
	})
}

// DeleteDoneTasks removes every completed task and reports how many went
func (r *SQLiteRepository) DeleteDoneTasks(ctx context.Context) (int64, error) {
	var deleted int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE done = ?`, true)
		if err != nil {
			return HandleDatabaseError("delete done tasks", err)
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return HandleDatabaseError("get rows affected", err)
		}
		return nil
	})
	return deleted, err
}

func (r *SQLiteRepository) findByKey(ctx context.Context, q Querier, name string, deadline time.Time) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE name = ? AND deadline = ?`
	return QuerySingle(ctx, q, query, ScanTask, "task", taskKey(name, deadline), name, FormatDeadlineForDB(deadline))
}

// buildConditions turns search options into a WHERE clause and its arguments
func buildConditions(opts SearchOptions) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if opts.ID != nil {
		conditions = append(conditions, "id = ?")
		args = append(args, *opts.ID)
	}
	if opts.Done != nil {
		conditions = append(conditions, "done = ?")
		args = append(args, *opts.Done)
	}
	if opts.Name != nil {
		conditions = append(conditions, "name = ?")
		args = append(args, *opts.Name)
	}
	if opts.Comment != nil {
		conditions = append(conditions, "comment = ?")
		args = append(args, *opts.Comment)
	}

	// deadlines are stored at midnight, so "< next day" keeps the upper bound inclusive
	if opts.From != nil {
		conditions = append(conditions, "deadline >= ?")
		args = append(args, FormatDeadlineForDB(*opts.From))
	}
	if opts.To != nil {
		conditions = append(conditions, "deadline < ?")
		args = append(args, FormatDeadlineForDB(TruncateToDay(*opts.To).AddDate(0, 0, 1)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func taskKey(name string, deadline time.Time) string {
	return fmt.Sprintf("%s@%s", name, FormatDate(deadline))
}

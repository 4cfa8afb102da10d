package services

import (
	"context"
	"time"

	"task-planner/internal/config"
	"task-planner/internal/domain"
	"task-planner/internal/errors"
	"task-planner/internal/logging"
	"task-planner/internal/repository/sqlite"
	"task-planner/internal/validation"

	"go.uber.org/zap"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	logger        *zap.Logger
	queryTimeout  time.Duration
	writeTimeout  time.Duration
}

// NewTaskService creates a new TaskService instance. cfg may be nil, in which
// case defaults apply.
func NewTaskService(repo sqlite.Repository, cfg *config.Config, logger *zap.Logger) TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		logger:        logger,
		queryTimeout:  defaultQueryTimeout,
		writeTimeout:  defaultWriteTimeout,
	}
	if cfg != nil {
		s.taskValidator = validation.NewTaskValidatorWithValidator(validation.NewValidatorWithConfig(cfg))
		s.queryTimeout = cfg.GetQueryTimeout()
		s.writeTimeout = cfg.GetWriteTimeout()
	}
	return s
}

func (t *taskServiceImpl) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.queryTimeout)
}

func (t *taskServiceImpl) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, t.writeTimeout)
}

// checkContext reports an expired operation deadline as a timeout no matter
// how the driver phrased the failure
func (t *taskServiceImpl) checkContext(ctx context.Context, operation string, timeout time.Duration, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded && !errors.IsErrorType(err, errors.ErrorTypeTimeout) {
		timeoutErr := errors.NewTimeoutError(operation, timeout.String())
		timeoutErr.Cause = err
		return timeoutErr
	}
	return err
}

// SearchTasks returns the tasks matching opts ordered by deadline then id
func (t *taskServiceImpl) SearchTasks(ctx context.Context, opts domain.SearchOptions) ([]*domain.Task, error) {
	defer logging.Measure(t.logger, "search tasks")()

	if err := t.taskValidator.ValidateSearchRange(opts.From, opts.To); err != nil {
		return nil, err
	}

	ctx, cancel := t.readContext(ctx)
	defer cancel()

	dbTasks, err := t.repo.SearchTasks(ctx, t.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return nil, t.checkContext(ctx, "search tasks", t.queryTimeout, err)
	}

	if len(dbTasks) == 0 && !opts.SuppressNotFound {
		return nil, errors.NewNotFoundError("task", opts.Describe())
	}

	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	ctx, cancel := t.readContext(ctx)
	defer cancel()

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, t.checkContext(ctx, "get task", t.queryTimeout, err)
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// CountTasks counts matching tasks; zero is not an error
func (t *taskServiceImpl) CountTasks(ctx context.Context, opts domain.SearchOptions) (int64, error) {
	ctx, cancel := t.readContext(ctx)
	defer cancel()

	count, err := t.repo.CountTasks(ctx, t.mapper.SearchOptions.ToDatabase(opts))
	if err != nil {
		return 0, t.checkContext(ctx, "count tasks", t.queryTimeout, err)
	}
	return count, nil
}

// CreateTask normalizes and validates the input, rejects an existing task
// with the same name and deadline day, then inserts
func (t *taskServiceImpl) CreateTask(ctx context.Context, name string, deadline time.Time, comment string) (*domain.Task, error) {
	defer logging.Measure(t.logger, "create task")()

	task := domain.NewTask(name, deadline, comment)
	if err := t.taskValidator.ValidateTask(task); err != nil {
		return nil, err
	}

	ctx, cancel := t.writeContext(ctx)
	defer cancel()

	day := task.Deadline
	existing, err := t.repo.SearchTasks(ctx, sqlite.SearchOptions{Name: &task.Name, From: &day, To: &day})
	if err != nil {
		return nil, t.checkContext(ctx, "create task", t.writeTimeout, err)
	}
	if len(existing) > 0 {
		return nil, errors.NewDuplicateError("task", task.Key(), existing[0].ID)
	}

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, t.checkContext(ctx, "create task", t.writeTimeout, err)
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	t.logger.Info("task created", zap.Int64("id", created.ID), zap.String("key", created.Key()))
	return &created, nil
}

// UpdateTask applies patch to the task identified by name and deadline day
func (t *taskServiceImpl) UpdateTask(ctx context.Context, name string, deadline time.Time, patch domain.TaskPatch) (*domain.Task, error) {
	defer logging.Measure(t.logger, "update task")()

	name, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, errors.NewValidationError("nothing to update", nil)
	}
	if patch.Comment != nil {
		if err := t.taskValidator.ValidateComment(*patch.Comment); err != nil {
			return nil, err
		}
	}

	ctx, cancel := t.writeContext(ctx)
	defer cancel()

	dbTask, err := t.repo.UpdateTaskByKey(ctx, name, domain.TruncateToDay(deadline), t.mapper.Patch.ToDatabase(patch))
	if err != nil {
		return nil, t.checkContext(ctx, "update task", t.writeTimeout, err)
	}

	updated := t.mapper.Task.FromDatabase(*dbTask)
	t.logger.Info("task updated", zap.Int64("id", updated.ID), zap.String("key", updated.Key()))
	return &updated, nil
}

// DeleteTask deletes the task identified by name and deadline day
func (t *taskServiceImpl) DeleteTask(ctx context.Context, name string, deadline time.Time) error {
	name, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return err
	}

	ctx, cancel := t.writeContext(ctx)
	defer cancel()

	if err := t.repo.DeleteTaskByKey(ctx, name, domain.TruncateToDay(deadline)); err != nil {
		return t.checkContext(ctx, "delete task", t.writeTimeout, err)
	}

	t.logger.Info("task deleted", zap.String("name", name), zap.String("deadline", deadline.Format(domain.DateLayout)))
	return nil
}

// DeleteTaskByID looks the task up by id and deletes it by its key
func (t *taskServiceImpl) DeleteTaskByID(ctx context.Context, id int64) error {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return err
	}
	return t.DeleteTask(ctx, task.Name, task.Deadline)
}

// DeleteDoneTasks removes every completed task
func (t *taskServiceImpl) DeleteDoneTasks(ctx context.Context) (int64, error) {
	ctx, cancel := t.writeContext(ctx)
	defer cancel()

	deleted, err := t.repo.DeleteDoneTasks(ctx)
	if err != nil {
		return 0, t.checkContext(ctx, "delete done tasks", t.writeTimeout, err)
	}

	t.logger.Info("done tasks deleted", zap.Int64("count", deleted))
	return deleted, nil
}

// Ping checks the store is reachable
func (t *taskServiceImpl) Ping(ctx context.Context) error {
	ctx, cancel := t.readContext(ctx)
	defer cancel()
	return t.checkContext(ctx, "ping", t.queryTimeout, t.repo.Ping(ctx))
}


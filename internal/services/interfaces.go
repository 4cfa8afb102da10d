package services

import (
	"context"
	"io"
	"time"

	"task-planner/internal/config"
	"task-planner/internal/domain"
	"task-planner/internal/locale"
	"task-planner/internal/repository/sqlite"

	"go.uber.org/zap"
)

// TaskService is the task store: search, lifecycle and bulk cleanup of tasks
type TaskService interface {
	// Read operations
	SearchTasks(ctx context.Context, opts domain.SearchOptions) ([]*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	CountTasks(ctx context.Context, opts domain.SearchOptions) (int64, error)

	// Task lifecycle, addressed by name and deadline
	CreateTask(ctx context.Context, name string, deadline time.Time, comment string) (*domain.Task, error)
	UpdateTask(ctx context.Context, name string, deadline time.Time, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, name string, deadline time.Time) error
	DeleteTaskByID(ctx context.Context, id int64) error
	DeleteDoneTasks(ctx context.Context) (int64, error)

	// Health
	Ping(ctx context.Context) error
}

// CalendarService buckets a month's tasks by day
type CalendarService interface {
	MonthCalendar(ctx context.Context, year, month int) (*domain.Calendar, error)
}

// ExportService renders the task list as CSV
type ExportService interface {
	WriteCSV(ctx context.Context, w io.Writer) (int, error)
	ExportFilename(now time.Time) string
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService     TaskService
	CalendarService CalendarService
	ExportService   ExportService
}

// NewServiceContainer wires every service over one repository
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config, logger *zap.Logger) *ServiceContainer {
	tasks := NewTaskService(repo, cfg, logger)
	code := locale.Default
	if cfg != nil {
		code = cfg.Display.Locale
	}
	return &ServiceContainer{
		TaskService:     tasks,
		CalendarService: NewCalendarService(tasks, logger),
		ExportService:   NewExportService(tasks, locale.Get(code)),
	}
}

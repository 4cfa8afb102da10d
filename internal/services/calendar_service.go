package services

import (
	"context"
	"strconv"
	"time"

	"task-planner/internal/domain"
	"task-planner/internal/errors"
	"task-planner/internal/logging"

	"go.uber.org/zap"
)

type calendarServiceImpl struct {
	tasks  TaskService
	logger *zap.Logger
}

// NewCalendarService builds month calendars from the task store's search
func NewCalendarService(tasks TaskService, logger *zap.Logger) CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &calendarServiceImpl{tasks: tasks, logger: logger}
}

// MonthCalendar returns every day of the month with the tasks due on it, in
// store order. A month without tasks is a calendar of empty days.
func (c *calendarServiceImpl) MonthCalendar(ctx context.Context, year, month int) (*domain.Calendar, error) {
	defer logging.Measure(c.logger, "month calendar")()

	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, errors.NewInvalidDateError(strconv.Itoa(year), strconv.Itoa(month), "")
	}

	cal := domain.NewCalendar(year, time.Month(month))
	from, to := cal.FirstDay(), cal.LastDay()

	tasks, err := c.tasks.SearchTasks(ctx, domain.SearchOptions{From: &from, To: &to, SuppressNotFound: true})
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if !cal.Place(task) {
			c.logger.Warn("task outside requested month", zap.Int64("id", task.ID), zap.String("deadline", task.DeadlineDate()))
		}
	}
	return cal, nil
}

package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"task-planner/internal/domain"
	"task-planner/internal/locale"
)

type exportServiceImpl struct {
	tasks  TaskService
	labels locale.Labels
}

// NewExportService writes CSV exports with localized headers and done labels
func NewExportService(tasks TaskService, labels locale.Labels) ExportService {
	return &exportServiceImpl{tasks: tasks, labels: labels}
}

// WriteCSV writes a header and one row per task and returns the row count.
// An empty store is a not found error.
func (e *exportServiceImpl) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	tasks, err := e.tasks.SearchTasks(ctx, domain.SearchOptions{})
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(e.labels.CSVHeader); err != nil {
		return 0, err
	}
	for _, task := range tasks {
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Name,
			task.DeadlineDate(),
			task.Comment,
			e.labels.YesNo(task.Done),
		}
		if err := writer.Write(record); err != nil {
			return 0, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// ExportFilename names the download after the export day
func (e *exportServiceImpl) ExportFilename(now time.Time) string {
	return "tasks_" + now.Format("2006_01_02") + ".csv"
}

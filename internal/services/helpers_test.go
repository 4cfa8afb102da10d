package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"task-planner/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setupRepo(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupTaskService(t *testing.T) TaskService {
	t.Helper()
	return NewTaskService(setupRepo(t), nil, zaptest.NewLogger(t))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func mustCreate(t *testing.T, s TaskService, name string, deadline time.Time, comment string) int64 {
	t.Helper()
	task, err := s.CreateTask(context.Background(), name, deadline, comment)
	require.NoError(t, err)
	return task.ID
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

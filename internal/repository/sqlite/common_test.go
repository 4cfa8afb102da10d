package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	apperrors "task-planner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	result := HandleDatabaseError("insert task", errors.New("disk full"))
	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeDatabase))
	assert.Contains(t, result.Error(), "insert task")
	assert.Contains(t, result.Error(), "disk full")

	timeout := HandleDatabaseError("search tasks", fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.True(t, apperrors.IsErrorType(timeout, apperrors.ErrorTypeTimeout))
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name           string
		result         sql.Result
		expectError    bool
		expectNotFound bool
	}{
		{"one row", &MockResult{rowsAffected: 1}, false, false},
		{"no rows", &MockResult{rowsAffected: 0}, true, true},
		{"rows affected error", &MockResult{rowsErr: errors.New("database error")}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "123")
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectNotFound, apperrors.IsNotFound(err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("no such table: tasks")))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: tasks.name, tasks.deadline (2067)")))
}

func TestIsUniqueViolation_RealDriverError(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx, `INSERT INTO tasks (name, deadline) VALUES ('A', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = repo.db.ExecContext(ctx, `INSERT INTO tasks (name, deadline) VALUES ('A', '2025-01-01T00:00:00Z')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tasks (name, deadline) VALUES ('A', '2025-01-01T00:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := repo.CountTasks(ctx, SearchOptions{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithTx_JoinsRollbackFailure(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		// ending the transaction early makes the rollback in WithTx fail
		require.NoError(t, tx.Rollback())
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "rollback transaction")
}

func TestWithTx_Commits(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	err := WithTx(ctx, repo.db, func(tx *sql.Tx) error {
		_, err := ExecuteWithLastInsertID(ctx, tx, `INSERT INTO tasks (name, deadline) VALUES ('A', '2025-01-01T00:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	count, err := repo.CountTasks(ctx, SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

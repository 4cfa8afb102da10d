package domain

import (
	"testing"
	"time"

	"task-planner/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	deadline := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	domainTask := Task{ID: 1, Name: "Meeting", Deadline: deadline, Comment: "budget", Done: true}

	dbTask := mapper.ToDatabase(domainTask)
	assert.Equal(t, sqlite.Task{ID: 1, Name: "Meeting", Deadline: deadline, Comment: "budget", Done: true}, dbTask)
	assert.Equal(t, domainTask, mapper.FromDatabase(dbTask))
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()
	dbTasks := []*sqlite.Task{
		{ID: 2, Name: "Second"},
		{ID: 1, Name: "First"},
	}

	result := mapper.FromDatabaseSlice(dbTasks)

	assert.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)
	assert.Equal(t, "First", result[1].Name)
	assert.Empty(t, mapper.FromDatabaseSlice([]*sqlite.Task{}))
}

func TestPatchMapper_ToDatabase(t *testing.T) {
	mapper := NewMapper()
	deadline := time.Date(2025, 11, 11, 9, 30, 0, 0, time.UTC)
	comment := ""

	result := mapper.Patch.ToDatabase(TaskPatch{Deadline: &deadline, Comment: &comment})

	assert.Equal(t, time.Date(2025, 11, 11, 0, 0, 0, 0, time.UTC), *result.Deadline)
	assert.Equal(t, &comment, result.Comment)
	assert.Nil(t, result.Done)
}

func TestSearchOptionsMapper_ToDatabase(t *testing.T) {
	mapper := NewSearchOptionsMapper()
	name := " meeting"
	blank := ""
	id := int64(4)
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	result := mapper.ToDatabase(SearchOptions{
		ID:               &id,
		Name:             &name,
		Comment:          &blank,
		Done:             boolPtr(true),
		From:             &from,
		SuppressNotFound: true,
	})

	assert.Equal(t, &id, result.ID)
	assert.Equal(t, "Meeting", *result.Name)
	assert.Nil(t, result.Comment, "blank filters are dropped")
	assert.True(t, *result.Done)
	assert.Equal(t, &from, result.From)
	assert.Nil(t, result.To)
}

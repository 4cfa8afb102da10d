package domain

import (
	"task-planner/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:       domainTask.ID,
		Name:     domainTask.Name,
		Deadline: domainTask.Deadline,
		Comment:  domainTask.Comment,
		Done:     domainTask.Done,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:       dbTask.ID,
		Name:     dbTask.Name,
		Deadline: dbTask.Deadline,
		Comment:  dbTask.Comment,
		Done:     dbTask.Done,
	}
}

// FromDatabaseSlice converts database Tasks to domain Tasks, keeping order.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		converted := m.FromDatabase(*task)
		domainTasks[i] = &converted
	}
	return domainTasks
}

// PatchMapper converts task patches.
type PatchMapper struct{}

// ToDatabase converts a domain TaskPatch to a database TaskPatch. Deadlines
// are truncated to their day.
func (m *PatchMapper) ToDatabase(patch TaskPatch) sqlite.TaskPatch {
	out := sqlite.TaskPatch{Comment: patch.Comment, Done: patch.Done}
	if patch.Deadline != nil {
		d := TruncateToDay(*patch.Deadline)
		out.Deadline = &d
	}
	return out
}

// SearchOptionsMapper handles conversion between domain and database SearchOptions.
type SearchOptionsMapper struct{}

// NewSearchOptionsMapper creates a new SearchOptionsMapper instance.
func NewSearchOptionsMapper() *SearchOptionsMapper {
	return &SearchOptionsMapper{}
}

// ToDatabase converts domain SearchOptions to database SearchOptions. Blank
// strings are dropped and the name filter is normalized like stored names.
func (m *SearchOptionsMapper) ToDatabase(domainOpts SearchOptions) sqlite.SearchOptions {
	out := sqlite.SearchOptions{
		ID:   domainOpts.ID,
		Done: domainOpts.Done,
		From: domainOpts.From,
		To:   domainOpts.To,
	}
	if !isBlank(domainOpts.Name) {
		name := NormalizeName(*domainOpts.Name)
		out.Name = &name
	}
	if !isBlank(domainOpts.Comment) {
		out.Comment = domainOpts.Comment
	}
	return out
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task          *TaskMapper
	Patch         *PatchMapper
	SearchOptions *SearchOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:          NewTaskMapper(),
		Patch:         &PatchMapper{},
		SearchOptions: NewSearchOptionsMapper(),
	}
}

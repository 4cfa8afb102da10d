package api

import (
	"task-planner/internal/domain"
)

// TaskInfo is the JSON view of a task. The deadline is a YYYY-MM-DD day.
type TaskInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Deadline string `json:"deadline"`
	Comment  string `json:"comment"`
	Done     bool   `json:"done"`
}

// NewTaskInfo converts a domain task for the wire
func NewTaskInfo(task *domain.Task) TaskInfo {
	return TaskInfo{
		ID:       task.ID,
		Name:     task.Name,
		Deadline: task.DeadlineDate(),
		Comment:  task.Comment,
		Done:     task.Done,
	}
}

// NewTaskInfos converts a slice, never returning nil so empty lists encode as []
func NewTaskInfos(tasks []*domain.Task) []TaskInfo {
	infos := make([]TaskInfo, 0, len(tasks))
	for _, task := range tasks {
		infos = append(infos, NewTaskInfo(task))
	}
	return infos
}

type TasksCountResponse struct {
	TasksCount int64 `json:"tasks_count"`
}

type TasksInfoResponse struct {
	TasksInfo []TaskInfo `json:"tasks_info"`
}

// TaskInfoRequest selects tasks by name and, optionally, completion
type TaskInfoRequest struct {
	TaskName string `json:"task_name" binding:"required"`
	Done     *bool  `json:"done"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

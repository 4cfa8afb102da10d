// Package api serves the JSON endpoints under /api.
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"task-planner/internal/domain"
	"task-planner/internal/errors"
	"task-planner/internal/middleware"
	"task-planner/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler answers the JSON API over a TaskService
type Handler struct {
	tasks  services.TaskService
	logger *zap.Logger
}

// NewHandler creates a handler; a nil logger discards output
func NewHandler(tasks services.TaskService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{tasks: tasks, logger: logger}
}

// Register mounts the endpoints on group, normally /api
func (h *Handler) Register(group *gin.RouterGroup) {
	group.GET("/tasks_count", h.TasksCount)
	group.GET("/tasks_info", h.TasksInfo)
	group.POST("/task_info", h.TaskInfo)
	group.DELETE("/task/:id", h.DeleteTask)
}

// TasksCount answers the number of stored tasks
func (h *Handler) TasksCount(c *gin.Context) {
	count, err := h.tasks.CountTasks(c.Request.Context(), domain.SearchOptions{})
	if err != nil {
		h.fail(c, err, "failed to count tasks")
		return
	}
	c.JSON(http.StatusOK, TasksCountResponse{TasksCount: count})
}

// TasksInfo lists every task; an empty store is an empty list
func (h *Handler) TasksInfo(c *gin.Context) {
	tasks, err := h.tasks.SearchTasks(c.Request.Context(), domain.SearchOptions{SuppressNotFound: true})
	if err != nil {
		h.fail(c, err, "failed to get tasks")
		return
	}
	c.JSON(http.StatusOK, TasksInfoResponse{TasksInfo: NewTaskInfos(tasks)})
}

// TaskInfo lists the tasks with the requested name
func (h *Handler) TaskInfo(c *gin.Context) {
	var req TaskInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "task_name is required", Code: "INVALID_INPUT"})
		return
	}

	name := domain.NormalizeName(req.TaskName)
	tasks, err := h.tasks.SearchTasks(c.Request.Context(), domain.SearchOptions{Name: &name, Done: req.Done})
	if err != nil {
		if errors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("Task %s not found", req.TaskName), Code: errors.GetErrorCode(err)})
			return
		}
		h.fail(c, err, fmt.Sprintf("failed to get task %s", req.TaskName))
		return
	}
	c.JSON(http.StatusOK, TasksInfoResponse{TasksInfo: NewTaskInfos(tasks)})
}

// DeleteTask removes the task with the id in the path
func (h *Handler) DeleteTask(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fmt.Sprintf("invalid task id %q", raw), Code: "INVALID_INPUT"})
		return
	}

	if err := h.tasks.DeleteTaskByID(c.Request.Context(), id); err != nil {
		if errors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("Task %d not found", id), Code: errors.GetErrorCode(err)})
			return
		}
		h.fail(c, err, fmt.Sprintf("task %d wasn't deleted", id))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error, message string) {
	status := StatusCode(err)
	if errors.ShouldLogError(err) {
		h.logger.Error(message,
			zap.Error(err),
			zap.String("requestID", middleware.RequestID(c)),
		)
	}
	if status == http.StatusInternalServerError {
		message = "Application error, " + message
	} else {
		message = errors.GetUserMessage(err)
	}
	c.JSON(status, ErrorResponse{Error: message, Code: errors.GetErrorCode(err)})
}

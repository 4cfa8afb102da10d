package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"task-planner/internal/domain"
	"task-planner/internal/errors"
	"task-planner/internal/validation"

	"github.com/gin-gonic/gin"
)

func (s *Server) menu(c *gin.Context) {
	s.render(c, http.StatusOK, "menu.html", s.page())
}

func (s *Server) searchTaskPage(c *gin.Context) {
	s.render(c, http.StatusOK, "search_task.html", s.page())
}

func (s *Server) addTaskPage(c *gin.Context) {
	s.render(c, http.StatusOK, "add_task.html", s.page())
}

func (s *Server) updateTaskPage(c *gin.Context) {
	s.render(c, http.StatusOK, "update_task.html", s.page())
}

func (s *Server) deleteTaskPage(c *gin.Context) {
	s.render(c, http.StatusOK, "delete_task.html", s.page())
}

func (s *Server) searchTask(c *gin.Context) {
	const tmpl = "search_task.html"

	sy, sm, sd := c.PostForm("start_year"), c.PostForm("start_month"), c.PostForm("start_day")
	from, err := validation.ParseDate(sy, sm, sd)
	if err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongBound, s.labels.StartDateSide, formDate(sy, sm, sd)))
		return
	}
	ey, em, ed := c.PostForm("end_year"), c.PostForm("end_month"), c.PostForm("end_day")
	to, err := validation.ParseDate(ey, em, ed)
	if err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongBound, s.labels.EndDateSide, formDate(ey, em, ed)))
		return
	}
	done, err := domain.ParseDone(c.PostForm("done"))
	if err != nil {
		s.fail(c, tmpl, err, "")
		return
	}

	opts := domain.SearchOptions{From: from, To: to, Done: done}
	if name := c.PostForm("name"); name != "" {
		opts.Name = &name
	}
	if comment := c.PostForm("comment"); comment != "" {
		opts.Comment = &comment
	}

	tasks, err := s.services.TaskService.SearchTasks(c.Request.Context(), opts)
	if err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = s.labels.NothingFound
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Tasks = tasks
	s.render(c, http.StatusOK, "show_tasks.html", p)
}

func (s *Server) addTask(c *gin.Context) {
	const tmpl = "add_task.html"

	y, m, d := c.PostForm("year"), c.PostForm("month"), c.PostForm("day")
	deadline, err := validation.ParseDate(y, m, d)
	if err != nil || deadline == nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, formDate(y, m, d)))
		return
	}
	if err := s.validator.ValidateDeadline(*deadline); err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, s.labels.PastDeadline)
		return
	}

	task, err := s.services.TaskService.CreateTask(c.Request.Context(), c.PostForm("name"), *deadline, c.PostForm("comment"))
	if err != nil {
		s.fail(c, tmpl, err, s.duplicateMessage(err))
		return
	}

	p := s.page()
	p.Message = s.labels.TaskAdded
	p.Task = task
	s.render(c, http.StatusOK, tmpl, p)
}

// duplicateMessage names the existing task when err reports a collision
func (s *Server) duplicateMessage(err error) string {
	appErr, ok := errors.AsAppError(err)
	if !ok || !appErr.IsType(errors.ErrorTypeDuplicate) {
		return ""
	}
	if id, ok := appErr.GetContext("existing_id"); ok {
		if existing, ok := id.(int64); ok && existing > 0 {
			return fmt.Sprintf(s.labels.DuplicateTask, existing)
		}
	}
	return appErr.Message
}

func (s *Server) showTask(c *gin.Context) {
	const tmpl = "show_tasks.html"

	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		s.fail(c, tmpl, errors.NewInvalidInputError("id", raw, "expected a positive integer"), "")
		return
	}

	task, err := s.services.TaskService.GetTask(c.Request.Context(), id)
	if err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = fmt.Sprintf(s.labels.TaskNotFound, raw)
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Task = task
	p.Title = task.Name
	s.render(c, http.StatusOK, "show_task.html", p)
}

func (s *Server) getAllTasks(c *gin.Context) {
	const tmpl = "show_tasks.html"

	tasks, err := s.services.TaskService.SearchTasks(c.Request.Context(), domain.SearchOptions{})
	if err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = s.labels.EmptyList
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Tasks = tasks
	s.render(c, http.StatusOK, tmpl, p)
}

func (s *Server) showTasks(c *gin.Context) {
	const tmpl = "show_tasks.html"

	raw := c.Param("date")
	date, err := validation.ParseISODate(raw)
	if err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, raw))
		return
	}

	tasks, err := s.services.TaskService.SearchTasks(c.Request.Context(), domain.SearchOptions{
		From:             date,
		To:               date,
		SuppressNotFound: true,
	})
	if err != nil {
		s.fail(c, tmpl, err, "")
		return
	}

	p := s.page()
	p.Title = date.Format(domain.DateLayout)
	p.Tasks = tasks
	s.render(c, http.StatusOK, tmpl, p)
}

func (s *Server) updateTask(c *gin.Context) {
	const tmpl = "update_task.html"

	name := c.PostForm("name")
	y, m, d := c.PostForm("year"), c.PostForm("month"), c.PostForm("day")
	ny, nm, nd := c.PostForm("new_year"), c.PostForm("new_month"), c.PostForm("new_day")

	deadline, err := validation.ParseDate(y, m, d)
	if err != nil || deadline == nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, formDate(y, m, d)))
		return
	}
	newDeadline, err := validation.ParseDate(ny, nm, nd)
	if err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, formDate(ny, nm, nd)))
		return
	}
	if newDeadline != nil {
		if err := s.validator.ValidateDeadline(*newDeadline); err != nil {
			s.reject(c, http.StatusUnprocessableEntity, tmpl, s.labels.PastDeadline)
			return
		}
	}
	done, err := domain.ParseDone(c.PostForm("done"))
	if err != nil {
		s.fail(c, tmpl, err, "")
		return
	}

	patch := domain.TaskPatch{Deadline: newDeadline, Done: done}
	if comment := c.PostForm("comment"); strings.TrimSpace(comment) != "" {
		patch.Comment = &comment
	}
	if patch.IsEmpty() {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, s.labels.NothingToSave)
		return
	}

	task, err := s.services.TaskService.UpdateTask(c.Request.Context(), name, *deadline, patch)
	if err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = fmt.Sprintf(s.labels.TaskNotFound, domain.NormalizeName(name))
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Task = task
	p.Title = task.Name
	p.Message = s.labels.TaskUpdated
	s.render(c, http.StatusOK, "show_task.html", p)
}

func (s *Server) deleteTask(c *gin.Context) {
	const tmpl = "delete_task.html"

	done, err := domain.ParseDone(c.PostForm("done"))
	if err != nil {
		s.fail(c, tmpl, err, "")
		return
	}
	if done != nil && *done {
		deleted, err := s.services.TaskService.DeleteDoneTasks(c.Request.Context())
		if err != nil {
			s.fail(c, tmpl, err, "")
			return
		}
		p := s.page()
		p.Message = fmt.Sprintf("%s: %d", s.labels.DoneDeleted, deleted)
		s.render(c, http.StatusOK, tmpl, p)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	y, m, d := c.PostForm("year"), c.PostForm("month"), c.PostForm("day")
	if name == "" || strings.TrimSpace(y) == "" || strings.TrimSpace(m) == "" || strings.TrimSpace(d) == "" {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, s.labels.DeleteNeedsKey)
		return
	}
	deadline, err := validation.ParseDate(y, m, d)
	if err != nil {
		s.reject(c, http.StatusUnprocessableEntity, tmpl, fmt.Sprintf(s.labels.WrongDate, formDate(y, m, d)))
		return
	}

	if err := s.services.TaskService.DeleteTask(c.Request.Context(), name, *deadline); err != nil {
		message := ""
		if errors.IsNotFound(err) {
			message = fmt.Sprintf(s.labels.TaskNotFound, domain.NormalizeName(name)+" ("+deadline.Format(domain.DateLayout)+")")
		}
		s.fail(c, tmpl, err, message)
		return
	}

	p := s.page()
	p.Message = s.labels.TaskDeleted
	s.render(c, http.StatusOK, tmpl, p)
}

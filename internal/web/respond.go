package web

import (
	"fmt"
	"net/http"

	"task-planner/internal/api"
	"task-planner/internal/errors"
	"task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) page() page {
	return page{Labels: s.labels}
}

func (s *Server) render(c *gin.Context, status int, name string, p page) {
	c.HTML(status, name, p)
}

// fail renders name with an error message chosen for err. message is shown
// for user errors; system errors get the generic label and a log line.
func (s *Server) fail(c *gin.Context, name string, err error, message string) {
	status := api.StatusCode(err)
	if errors.ShouldLogError(err) {
		s.logger.Error("request failed",
			zap.Error(err),
			zap.String("requestID", middleware.RequestID(c)),
			zap.String("path", c.Request.URL.Path),
		)
	}
	switch {
	case status >= http.StatusInternalServerError:
		message = s.labels.ServerError
	case message == "":
		message = errors.GetUserMessage(err)
	}

	p := s.page()
	p.Error = message
	s.render(c, status, name, p)
}

func (s *Server) reject(c *gin.Context, status int, name string, message string) {
	s.logger.Debug("request rejected",
		zap.Int("status", status),
		zap.String("reason", message),
		zap.String("requestID", middleware.RequestID(c)),
	)
	p := s.page()
	p.Error = message
	s.render(c, status, name, p)
}

func formDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

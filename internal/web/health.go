package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// health reports whether the database answers. It sits outside basic auth.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	body := gin.H{
		"status":    "healthy",
		"database":  "up",
		"timestamp": s.now().UTC().Format(time.RFC3339),
	}
	if err := s.services.TaskService.Ping(ctx); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		body["status"] = "unhealthy"
		body["database"] = "down"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}

package middleware

import (
	"task-planner/internal/config"

	"github.com/gin-gonic/gin"
)

// BasicAuth gates routes behind the single configured account
func BasicAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return gin.BasicAuthForRealm(gin.Accounts{cfg.Login: cfg.Password}, "task-planner")
}

// CurrentUser returns the login that passed BasicAuth
func CurrentUser(c *gin.Context) string {
	return c.GetString(gin.AuthUserKey)
}

// Package middleware holds the gin handlers wrapped around every route: request
// logging, panic recovery, rate limiting and basic auth.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "requestID"
	// RequestIDHeader echoes the request id back to the client
	RequestIDHeader = "X-Request-ID"
)

// RequestLogger assigns each request an id and logs it once the handler chain
// has finished
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("requestID", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.String("clientIP", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("userAgent", c.Request.UserAgent()),
		}
		if user := CurrentUser(c); user != "" {
			fields = append(fields, zap.String("user", user))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if status >= 500 {
			logger.Warn("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// RequestID returns the id RequestLogger stored on c, or "" outside it
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

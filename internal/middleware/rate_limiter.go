package middleware

import (
	"net/http"
	"sync"

	"task-planner/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP and answers 429 once a
// client's bucket is empty
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	var (
		visitors = make(map[string]*rate.Limiter)
		mu       sync.Mutex
	)

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, exists := visitors[ip]
		if !exists {
			limiter = rate.NewLimiter(r, b)
			visitors[ip] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// RateLimiterFromConfig builds RateLimiter from cfg. A disabled limiter passes
// every request through.
func RateLimiterFromConfig(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return RateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

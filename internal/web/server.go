// Package web serves the HTML pages of the task planner and mounts the JSON
// API next to them.
package web

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"task-planner/internal/api"
	"task-planner/internal/config"
	"task-planner/internal/locale"
	"task-planner/internal/middleware"
	"task-planner/internal/services"
	"task-planner/internal/validation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server owns the gin engine and the services behind it
type Server struct {
	cfg       *config.Config
	services  *services.ServiceContainer
	logger    *zap.Logger
	labels    locale.Labels
	validator *validation.TaskValidator
	now       func() time.Time
	engine    *gin.Engine
}

// Option customizes a Server
type Option func(*Server)

// WithClock replaces time.Now for deadline checks, the year calendar and
// export file names
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer builds the router. cfg must already be validated.
func NewServer(cfg *config.Config, svc *services.ServiceContainer, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		services: svc,
		logger:   logger,
		labels:   locale.Get(cfg.Display.Locale),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = validation.NewTaskValidatorWithValidator(
		validation.NewValidatorWithConfig(cfg).WithClock(s.now),
	)

	tmpl, err := parseTemplates(s.labels)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s.engine = gin.New()
	s.engine.SetHTMLTemplate(tmpl)
	s.routes()
	return s, nil
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.RateLimiterFromConfig(s.cfg.RateLimit))
	r.Use(s.apiCORS())

	r.GET("/health", s.health)

	pages := r.Group("/", middleware.BasicAuth(s.cfg.Auth))
	{
		pages.GET("/", s.menu)
		pages.GET("/search_task", s.searchTaskPage)
		pages.POST("/search_task", s.searchTask)
		pages.GET("/add_task_page", s.addTaskPage)
		pages.POST("/add_task", s.addTask)
		pages.GET("/show_task/:id", s.showTask)
		pages.GET("/get_all_tasks", s.getAllTasks)
		pages.GET("/show_tasks/:date", s.showTasks)
		pages.GET("/update_task", s.updateTaskPage)
		pages.POST("/update_task", s.updateTask)
		pages.GET("/delete_task", s.deleteTaskPage)
		pages.POST("/delete_task", s.deleteTask)
		pages.GET("/download", s.download)
		pages.GET("/year_calendar", s.yearCalendar)
		pages.GET("/read_calendar/:year/:month", s.readCalendar)
	}

	apiGroup := r.Group("/api", middleware.BasicAuth(s.cfg.Auth))
	api.NewHandler(s.services.TaskService, s.logger).Register(apiGroup)
}

// apiCORS answers CORS for /api only. It runs before routing so preflight
// requests reach it.
func (s *Server) apiCORS() gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  s.cfg.CORS.AllowMethods,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        s.cfg.CORS.MaxAge,
	}
	for _, origin := range s.cfg.CORS.AllowOrigins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
		}
	}
	if !corsCfg.AllowAllOrigins {
		corsCfg.AllowOrigins = s.cfg.CORS.AllowOrigins
	}
	handler := cors.New(corsCfg)

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			handler(c)
		}
	}
}

// Run serves until ctx is canceled, then shuts down within the configured
// timeout
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return <-errCh
}

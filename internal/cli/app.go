package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"task-planner/internal/config"
	"task-planner/internal/logging"
	"task-planner/internal/repository/sqlite"
	"task-planner/internal/services"

	"go.uber.org/zap"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds what every command needs: configuration, logger, the store and
// the services built over it
type App struct {
	config   *config.Config
	logger   *zap.Logger
	repo     sqlite.Repository
	services *services.ServiceContainer
	out      io.Writer
	errOut   io.Writer
}

// NewApp wires an application over an existing repository
func NewApp(cfg *config.Config, repo sqlite.Repository, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		config:   cfg,
		logger:   logger,
		repo:     repo,
		services: services.NewServiceContainer(repo, cfg, logger),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
}

// NewAppWithDefaultRepository builds the logger and opens the configured
// SQLite database
func NewAppWithDefaultRepository(cfg *config.Config) (*App, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("database opened", zap.String("path", cfg.GetDatabasePath()))
	return NewApp(cfg, repo, logger), nil
}

// SetOutput redirects command output
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Close releases the database and flushes the logger
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

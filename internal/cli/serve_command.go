package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"task-planner/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServeCommand runs the HTTP server until interrupted
type ServeCommand struct {
	app *App
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App) *ServeCommand {
	return &ServeCommand{app: app}
}

// Execute serves until ctx is canceled or SIGINT/SIGTERM arrives
func (c *ServeCommand) Execute(ctx context.Context, args []string) error {
	gin.SetMode(c.app.config.Server.Mode)

	server, err := web.NewServer(c.app.config, c.app.services, c.app.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.app.logger.Info("task planner ready",
		zap.String("address", c.app.config.Address()),
		zap.String("database", c.app.config.GetDatabasePath()),
		zap.String("locale", c.app.config.Display.Locale),
	)
	return server.Run(ctx)
}

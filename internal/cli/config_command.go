package cli

import (
	"context"
)

// ConfigCommand prints the effective configuration as YAML
type ConfigCommand struct {
	app *App
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{app: app}
}

// Execute writes the merged defaults, file, environment and flags
func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	data, err := c.app.config.Dump()
	if err != nil {
		return err
	}
	_, err = c.app.out.Write(data)
	return err
}

package cli

import (
	"context"
	"fmt"
)

// PurgeDoneCommand deletes every completed task
type PurgeDoneCommand struct {
	app *App
}

// NewPurgeDoneCommand creates a new purge-done command handler
func NewPurgeDoneCommand(app *App) *PurgeDoneCommand {
	return &PurgeDoneCommand{app: app}
}

// Execute runs the purge and reports how many tasks went
func (c *PurgeDoneCommand) Execute(ctx context.Context, args []string) error {
	deleted, err := c.app.services.TaskService.DeleteDoneTasks(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "Deleted %d completed tasks\n", deleted)
	return nil
}

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"task-planner/internal/errors"
)

// ExportCommand writes every task as CSV to stdout, a file or a directory
type ExportCommand struct {
	app    *App
	output string
}

// NewExportCommand creates a new export command handler. An empty output
// means stdout; a directory gets the dated default file name.
func NewExportCommand(app *App, output string) *ExportCommand {
	return &ExportCommand{app: app, output: output}
}

// Execute runs the export. Files are written next to the target and renamed
// into place, so a failed export leaves an existing file untouched.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	export := c.app.services.ExportService
	if c.output == "" || c.output == "-" {
		_, err := export.WriteCSV(ctx, c.app.out)
		return err
	}

	path := c.output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, export.ExportFilename(timeNow()))
	}
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".taskplanner-export-*.csv")
	if err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			permErr := errors.NewPermissionError("write export", dir)
			permErr.Cause = err
			return permErr
		}
		return fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	count, err := export.WriteCSV(ctx, tmp)
	if err == nil {
		err = tmp.Chmod(0644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move export into place: %w", err)
	}

	fmt.Fprintf(c.app.errOut, "Exported %d tasks to %s\n", count, path)
	return nil
}

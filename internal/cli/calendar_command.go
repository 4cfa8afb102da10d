package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task-planner/internal/errors"
	"task-planner/internal/locale"
)

// CalendarCommand prints one month with the tasks due on each day
type CalendarCommand struct {
	app *App
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute expects YEAR and MONTH as arguments
func (c *CalendarCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "), "usage: taskplanner calendar YEAR MONTH")
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.NewInvalidInputError("year", args[0], "must be a number")
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.NewInvalidInputError("month", args[1], "must be a number")
	}

	cal, err := c.app.services.CalendarService.MonthCalendar(ctx, year, month)
	if err != nil {
		return err
	}

	labels := locale.Get(c.app.config.Display.Locale)
	fmt.Fprintf(c.app.out, "%s %d\n", labels.MonthName(time.Month(month)), year)
	for _, day := range cal.Days {
		if len(day.Tasks) == 0 {
			fmt.Fprintf(c.app.out, "%s  -\n", day.Key())
			continue
		}
		names := make([]string, 0, len(day.Tasks))
		for _, task := range day.Tasks {
			name := task.Name
			if task.Done {
				name += " [" + labels.Yes + "]"
			}
			names = append(names, name)
		}
		fmt.Fprintf(c.app.out, "%s  %s\n", day.Key(), strings.Join(names, ", "))
	}
	fmt.Fprintf(c.app.out, "%d tasks\n", cal.TaskCount())
	return nil
}

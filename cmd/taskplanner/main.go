package main

import (
	"context"
	"fmt"
	"os"

	"task-planner/internal/cli"
)

func main() {
	root := cli.NewRootCommand()

	if err := root.ExecuteContext(context.Background()); err != nil {
		eh := cli.NewErrorHandler()
		fmt.Fprintf(os.Stderr, "Error: %v\n", eh.HandleSimple(err))
		os.Exit(eh.ExitCode(err))
	}
}

package cli

import "context"

// Command is one CLI action over an App
type Command interface {
	Execute(ctx context.Context, args []string) error
}

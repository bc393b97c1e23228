package cli

import (
	"context"
	"fmt"

	"tasklist/internal/countdown"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
)

// CountdownCommand prints the time left until a due date
type CountdownCommand struct {
	app *App
}

// NewCountdownCommand creates a new countdown command handler
func NewCountdownCommand(app *App) *CountdownCommand {
	return &CountdownCommand{app: app}
}

// Execute handles the countdown command execution
func (c *CountdownCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tl countdown DUE")
	}

	due, err := domain.ParseDue(args[0], c.app.dueLayout())
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("due date %q must match %s", args[0], layoutOrDefault(c.app.dueLayout())), err)
	}

	fmt.Fprintln(c.app.out, countdown.Remaining(due, timeNow()))
	return nil
}

func layoutOrDefault(layout string) string {
	if layout == "" {
		return domain.DefaultDueLayout
	}
	return layout
}

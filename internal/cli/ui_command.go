package cli

import (
	"context"
	"fmt"

	"tasklist/internal/services"
	"tasklist/internal/ui"
)

// UICommand runs the interactive task list
type UICommand struct {
	app      *App
	seedPath string
	run      func(ctx context.Context, svc services.TaskService, opts ui.Options) error
}

// NewUICommand creates a new ui command handler
func NewUICommand(app *App) *UICommand {
	return &UICommand{app: app, run: ui.RunTUI}
}

// Execute handles the ui command execution
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: tl ui [--seed FILE]")
	}

	if err := importSeed(ctx, c.app, c.seedPath); err != nil {
		return err
	}

	opts := ui.Options{}
	if cfg := c.app.config; cfg != nil {
		order, ok := services.ParseSortOrder(cfg.Display.DefaultSort)
		if !ok {
			order = services.SortNone
		}
		opts.DueLayout = cfg.Display.DueLayout
		opts.RefreshInterval = cfg.Display.RefreshInterval
		opts.Sort = order
	}

	return c.run(ctx, c.app.taskService, opts)
}

package cli

import (
	"context"
	"fmt"

	"tasklist/internal/seed"
	"tasklist/internal/services"
	"tasklist/internal/view"
)

// ListCommand prints the task list once
type ListCommand struct {
	app      *App
	seedPath string
	category string
	sort     string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute handles the list command execution
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: tl list [--seed FILE] [--category NAME] [--sort none|asc|desc]")
	}

	sortValue := c.sort
	if sortValue == "" && c.app.config != nil {
		sortValue = c.app.config.Display.DefaultSort
	}
	order, ok := services.ParseSortOrder(sortValue)
	if !ok {
		return fmt.Errorf("invalid sort order %q: use none, asc or desc", sortValue)
	}

	if err := importSeed(ctx, c.app, c.seedPath); err != nil {
		return err
	}

	tasks, err := c.app.taskService.List(ctx)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(c.app.dueLayout())
	entries := renderer.Project(tasks, view.Options{Category: c.category, Sort: order}, timeNow())
	return view.RenderList(c.app.out, entries, view.DefaultStyles())
}

// importSeed loads a seed file into the app's task service and reports
// rejected entries on the error stream.
func importSeed(ctx context.Context, app *App, path string) error {
	if path == "" {
		return nil
	}

	result, err := seed.LoadAndImport(ctx, app.taskService, path)
	if err != nil {
		return err
	}
	for _, r := range result.Rejected {
		fmt.Fprintf(app.errOut, "skipped seed task %d (%q): %s\n", r.Index+1, r.Name, r.Err.GetUserFriendlyMessage())
	}
	return nil
}

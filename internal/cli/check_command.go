package cli

import (
	"context"
	"fmt"
	"strings"

	"tasklist/internal/controller"
	"tasklist/internal/domain"
	"tasklist/internal/validation"
)

// CheckCommand validates a single task without storing it
type CheckCommand struct {
	app       *App
	values    controller.FormValues
	validator *validation.TaskValidator
}

// NewCheckCommand creates a new check command handler
func NewCheckCommand(app *App) *CheckCommand {
	return &CheckCommand{
		app:       app,
		validator: validation.NewTaskValidator(),
	}
}

// Execute prints one line per failing field, or a confirmation
func (c *CheckCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: tl check --name NAME --category CATEGORY --due DUE [--priority P] [--description TEXT]")
	}

	v := c.values
	task := domain.NewTask(v.Name, v.Category, v.Priority, v.DueAt, v.Description)
	if task.Category != "" && !domain.IsCategory(task.Category) {
		fmt.Fprintf(c.app.errOut, "warning: %q is not one of %s\n", task.Category, strings.Join(domain.Categories, ", "))
	}

	err := c.validator.ValidateTask(&task)
	if err == nil {
		fmt.Fprintln(c.app.out, "Task is valid")
		return nil
	}

	ve, ok := validation.AsValidationError(err)
	if !ok {
		return err
	}
	report := ve.Report()
	for _, field := range validation.Fields {
		if msg, ok := report[field]; ok {
			fmt.Fprintf(c.app.out, "%s: %s\n", field, msg)
		}
	}
	return ve
}

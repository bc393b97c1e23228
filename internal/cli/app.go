package cli

import (
	"io"
	"os"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/repository"
	"tasklist/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the dependencies shared by every command handler
type App struct {
	config       *config.Config
	repo         repository.Repository
	taskService  services.TaskService
	errorHandler *ErrorHandler
	registry     *CommandRegistry
	out          io.Writer
	errOut       io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, repo repository.Repository) *App {
	app := &App{
		errorHandler: NewErrorHandler(),
		out:          os.Stdout,
		errOut:       os.Stderr,
	}
	app.registry = NewCommandRegistry(app)
	app.bind(cfg, repo)
	return app
}

// bind attaches configuration and a store once they are known
func (a *App) bind(cfg *config.Config, repo repository.Repository) {
	a.config = cfg
	a.repo = repo
	if repo != nil {
		layout := ""
		if cfg != nil {
			layout = cfg.Display.DueLayout
		}
		a.taskService = services.NewTaskService(repo, layout)
	}
}

// SetOutput redirects command output
func (a *App) SetOutput(out, errOut io.Writer) {
	a.out = out
	a.errOut = errOut
}

// Close releases the task store
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

func (a *App) dueLayout() string {
	if a.config == nil {
		return ""
	}
	return a.config.Display.DueLayout
}

// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/controller"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/services"
	"tasklist/internal/validation"
	"tasklist/internal/view"
)

// MsgSaved is shown on the status line after a successful submit.
const MsgSaved = "Task saved successfully!"

// Options configures the interactive session.
type Options struct {
	DueLayout       string
	RefreshInterval time.Duration
	Sort            services.SortOrder
	Now             func() time.Time
}

// RunTUI starts the interactive session on the terminal.
func RunTUI(ctx context.Context, taskService services.TaskService, opts Options) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := NewModel(ctx, taskService, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*Model); ok {
		return m.Err()
	}
	return nil
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type mode int

const (
	modeList mode = iota
	modeForm
)

// Model is the bubbletea model for the task list and its form.
type Model struct {
	ctx         context.Context
	taskService services.TaskService
	controller  *controller.FormController
	fieldErrors *controller.FormErrors
	renderer    *view.Renderer
	ticker      *view.Ticker
	styles      view.Styles
	now         func() time.Time

	mode        mode
	entries     []view.Entry
	cursor      int
	options     view.Options
	categoryIdx int // -1 means all
	form        *form
	status      string
	fatal       error
}

// NewModel creates a Model over taskService.
func NewModel(ctx context.Context, taskService services.TaskService, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Model{
		ctx:         ctx,
		taskService: taskService,
		controller:  controller.NewFormController(taskService),
		fieldErrors: controller.NewFormErrors(),
		renderer:    view.NewRenderer(opts.DueLayout),
		ticker:      view.NewTicker(opts.RefreshInterval),
		styles:      view.DefaultStyles(),
		now:         now,
		options:     view.Options{Category: view.AllCategories, Sort: opts.Sort},
		categoryIdx: -1,
		form:        newForm(opts.DueLayout),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.render()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	case view.TickMsg:
		if !m.ticker.Accept(msg) {
			return m, nil
		}
		m.entries = m.renderer.Refresh(m.entries, m.now())
		return m, m.ticker.Next()
	case tea.WindowSizeMsg:
		m.form.setWidth(msg.Width)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "a":
		m.status = ""
		m.fieldErrors.Reset()
		m.form.reset()
		m.mode = modeForm
		return m, m.form.focusFirst()
	case "e":
		return m, m.beginEdit()
	case "d":
		return m, m.deleteSelected()
	case "f":
		m.cycleCategory()
		return m, m.render()
	case "s":
		m.cycleSort()
		return m, m.render()
	case "S":
		return m, m.sortStored()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if err := m.controller.Cancel(m.ctx); err != nil {
			return m, m.fail(err)
		}
		m.fieldErrors.Reset()
		m.mode = modeList
		m.status = "Cancelled"
		return m, m.render()
	case "enter":
		return m, m.submit()
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	}

	field, cmd := m.form.update(msg)
	if field != "" {
		m.fieldErrors.Clear(field)
	}
	return m, cmd
}

func (m *Model) beginEdit() tea.Cmd {
	selected, ok := m.selected()
	if !ok {
		return nil
	}
	task, err := m.controller.BeginEdit(m.ctx, selected.ID)
	if err != nil {
		return m.fail(err)
	}
	m.status = ""
	m.fieldErrors.Reset()
	m.form.fill(controller.ValuesOf(*task))
	m.mode = modeForm
	return tea.Batch(m.render(), m.form.focusFirst())
}

func (m *Model) deleteSelected() tea.Cmd {
	selected, ok := m.selected()
	if !ok {
		return nil
	}
	if err := m.taskService.DeleteByID(m.ctx, selected.ID); err != nil {
		return m.fail(err)
	}
	m.status = fmt.Sprintf("Deleted %q", selected.Name)
	return m.render()
}

func (m *Model) submit() tea.Cmd {
	_, err := m.controller.Submit(m.ctx, m.form.values())
	if err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			m.fieldErrors.Set(ve)
			return nil
		}
		return m.fail(err)
	}

	m.fieldErrors.Reset()
	m.form.reset()
	m.mode = modeList
	m.status = MsgSaved
	return m.render()
}

func (m *Model) sortStored() tea.Cmd {
	order := m.options.Sort
	if order == services.SortNone {
		order = services.SortAscending
	}
	if err := m.taskService.SortByDueDate(m.ctx, order); err != nil {
		return m.fail(err)
	}
	m.status = fmt.Sprintf("Tasks sorted by due date (%s)", order)
	return m.render()
}

func (m *Model) cycleCategory() {
	m.categoryIdx++
	if m.categoryIdx >= len(domain.Categories) {
		m.categoryIdx = -1
	}
	if m.categoryIdx < 0 {
		m.options.Category = view.AllCategories
		return
	}
	m.options.Category = domain.Categories[m.categoryIdx]
}

func (m *Model) cycleSort() {
	switch m.options.Sort {
	case services.SortAscending:
		m.options.Sort = services.SortDescending
	case services.SortDescending:
		m.options.Sort = services.SortNone
	default:
		m.options.Sort = services.SortAscending
	}
}

// render reprojects the collection and starts a fresh refresh chain.
func (m *Model) render() tea.Cmd {
	tasks, err := m.taskService.List(m.ctx)
	if err != nil {
		return m.fail(err)
	}
	m.entries = m.renderer.Project(tasks, m.options, m.now())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m.ticker.Restart()
}

func (m *Model) selected() (domain.Task, bool) {
	if len(m.entries) == 0 {
		return domain.Task{}, false
	}
	return m.entries[m.cursor].Task, true
}

// fail reports err on the status line. InvalidInput is a programming fault:
// it is kept as the session result and the program quits.
func (m *Model) fail(err error) tea.Cmd {
	if errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
		logging.Logger().Error("aborting session", "err", err)
		m.fatal = err
		return m.quit()
	}
	if errors.ShouldLogError(err) {
		logging.Logger().Error("operation failed", "err", err)
	}
	m.status = errors.GetUserMessage(err)
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.ticker.Stop()
	return tea.Quit
}

// Err returns the fault that ended the session, if any.
func (m *Model) Err() error {
	return m.fatal
}

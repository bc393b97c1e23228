package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository/memory"
	"tasklist/internal/services"
	"tasklist/internal/validation"
	"tasklist/internal/view"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)

func setupModel(t *testing.T) (*Model, services.TaskService) {
	svc := services.NewTaskService(memory.New(), "")
	m := NewModel(context.Background(), svc, Options{
		RefreshInterval: time.Millisecond,
		Now:             func() time.Time { return fixedNow },
	})
	m.Init()
	return m, svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func addTask(t *testing.T, m *Model, name, due string) {
	press(m,
		runes("a"),
		runes(name), tab,
		right, tab, // Work
		tab, // no priority
		runes(due),
		enter,
	)
	require.Equal(t, modeList, m.mode, "form should close after a valid submit")
}

func TestModel_AddTask(t *testing.T) {
	m, svc := setupModel(t)

	addTask(t, m, "Write report", "2026-10-20T09:00")

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Name)
	assert.Equal(t, "Work", tasks[0].Category)
	assert.Empty(t, tasks[0].Priority)

	assert.Equal(t, MsgSaved, m.status)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "1D 0M", m.entries[0].Countdown)
	assert.Contains(t, m.View(), view.HeaderTasks)
}

func TestModel_InvalidSubmitShowsFieldErrors(t *testing.T) {
	m, svc := setupModel(t)

	press(m, runes("a"), enter)

	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, validation.MsgEmptyField, m.fieldErrors.Get(validation.FieldName))
	assert.Equal(t, validation.MsgChooseCategory, m.fieldErrors.Get(validation.FieldCategory))
	assert.Equal(t, validation.MsgDueAt, m.fieldErrors.Get(validation.FieldDueAt))
	assert.Contains(t, m.View(), validation.MsgEmptyField)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// typing into a field clears only that field's message
	press(m, runes("x"))
	assert.Empty(t, m.fieldErrors.Get(validation.FieldName))
	assert.NotEmpty(t, m.fieldErrors.Get(validation.FieldCategory))

	press(m, tab, right)
	assert.Empty(t, m.fieldErrors.Get(validation.FieldCategory))
}

func TestModel_EditAndCancel(t *testing.T) {
	m, svc := setupModel(t)
	ctx := context.Background()

	addTask(t, m, "Laundry", "2026-10-21T18:00")
	before, err := svc.List(ctx)
	require.NoError(t, err)

	press(m, runes("e"))
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Laundry", m.form.name.Value())
	assert.Equal(t, "2026-10-21T18:00", m.form.due.Value())

	during, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, during)

	press(m, esc)
	assert.Equal(t, modeList, m.mode)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestModel_EditAndSubmit(t *testing.T) {
	m, svc := setupModel(t)

	addTask(t, m, "Laundry", "2026-10-21T18:00")
	press(m, runes("e"), runes(" now"), enter)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Laundry now", tasks[0].Name)
	assert.Nil(t, m.controller.Editing())
}

func TestModel_Delete(t *testing.T) {
	m, svc := setupModel(t)

	addTask(t, m, "One", "2026-10-21T18:00")
	addTask(t, m, "Two", "2026-10-22T18:00")
	press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("d"))

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "One", tasks[0].Name)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_FilterAndSort(t *testing.T) {
	m, svc := setupModel(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "later", "Work", "", "2026-10-25T09:00", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "home", "Home", "", "2026-10-23T09:00", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sooner", "Work", "", "2026-10-20T09:00", "")
	require.NoError(t, err)

	press(m, runes("f"))
	assert.Equal(t, domain.Categories[0], m.options.Category)
	assert.Len(t, m.entries, 2)

	press(m, runes("s"))
	require.Len(t, m.entries, 2)
	assert.Equal(t, "sooner", m.entries[0].Task.Name)

	// the view sort leaves stored order alone
	tasks, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "later", tasks[0].Name)

	press(m, runes("S"))
	tasks, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sooner", "home", "later"}, []string{tasks[0].Name, tasks[1].Name, tasks[2].Name})

	for range domain.Categories {
		press(m, runes("f"))
	}
	assert.Equal(t, view.AllCategories, m.options.Category)
	assert.Len(t, m.entries, 3)
}

func TestModel_TickRefresh(t *testing.T) {
	m, svc := setupModel(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "soon", "Work", "", "2026-10-19T09:30", "")
	require.NoError(t, err)
	m.render()
	stale := view.TickMsg{Gen: m.ticker.Generation()}

	// a new render cycle orphans the previous chain
	m.render()
	current := m.now()
	m.now = func() time.Time { return current.Add(time.Hour) }

	_, cmd := m.Update(stale)
	assert.Nil(t, cmd)
	assert.False(t, m.entries[0].Overdue)

	_, cmd = m.Update(view.TickMsg{Gen: m.ticker.Generation()})
	assert.NotNil(t, cmd)
	assert.True(t, m.entries[0].Overdue)
	assert.Equal(t, "Overdue", m.entries[0].Countdown)
}

func TestModel_Quit(t *testing.T) {
	m, _ := setupModel(t)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// brokenDeleteService fails DeleteByID with a caller fault.
type brokenDeleteService struct {
	services.TaskService
}

func (s brokenDeleteService) DeleteByID(ctx context.Context, id string) error {
	return errors.NewInvalidInputError("task", id, "task must not be nil")
}

func TestModel_InvalidInputEndsSession(t *testing.T) {
	svc := brokenDeleteService{services.NewTaskService(memory.New(), "")}
	m := NewModel(context.Background(), svc, Options{
		RefreshInterval: time.Millisecond,
		Now:             func() time.Time { return fixedNow },
	})
	m.Init()
	addTask(t, m, "Write report", "2026-10-20T09:00")
	gen := m.ticker.Generation()

	cmd := press(m, runes("d"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	require.Error(t, m.Err())
	assert.True(t, errors.IsErrorType(m.Err(), errors.ErrorTypeInvalidInput))
	assert.Equal(t, MsgSaved, m.status, "status line is left untouched")
	assert.False(t, m.ticker.Accept(view.TickMsg{Gen: gen}), "refresh chain is stopped")
}

func TestModel_QuitStopsRefresh(t *testing.T) {
	m, _ := setupModel(t)
	gen := m.ticker.Generation()

	press(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NoError(t, m.Err())
	assert.False(t, m.ticker.Accept(view.TickMsg{Gen: gen}))
}

package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/controller"
	"tasklist/internal/domain"
	"tasklist/internal/validation"
)

type formField int

const (
	fieldName formField = iota
	fieldCategory
	fieldPriority
	fieldDue
	fieldDescription
	fieldCount
)

// form holds the state of the add/edit form. Category and priority are
// selectors; -1 means nothing chosen.
type form struct {
	name        textinput.Model
	due         textinput.Model
	description textinput.Model
	category    int
	priority    int
	focus       formField
}

func newForm(dueLayout string) *form {
	if dueLayout == "" {
		dueLayout = domain.DefaultDueLayout
	}

	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = 128
	name.Width = 40

	due := textinput.New()
	due.Placeholder = dueLayout
	due.CharLimit = 32
	due.Width = 20

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 256
	description.Width = 60

	return &form{
		name:        name,
		due:         due,
		description: description,
		category:    -1,
		priority:    -1,
	}
}

func (f *form) setWidth(width int) {
	if width > 20 {
		f.description.Width = width - 20
	}
}

func (f *form) reset() {
	f.name.SetValue("")
	f.due.SetValue("")
	f.description.SetValue("")
	f.category = -1
	f.priority = -1
}

func (f *form) fill(values controller.FormValues) {
	f.name.SetValue(values.Name)
	f.due.SetValue(values.DueAt)
	f.description.SetValue(values.Description)
	f.name.CursorEnd()
	f.due.CursorEnd()
	f.description.CursorEnd()
	f.category = indexOf(domain.Categories, values.Category)
	f.priority = indexOf(domain.Priorities, values.Priority)
}

func (f *form) values() controller.FormValues {
	values := controller.FormValues{
		Name:        f.name.Value(),
		DueAt:       f.due.Value(),
		Description: f.description.Value(),
	}
	if f.category >= 0 {
		values.Category = domain.Categories[f.category]
	}
	if f.priority >= 0 {
		values.Priority = domain.Priorities[f.priority]
	}
	return values
}

func (f *form) focusFirst() tea.Cmd {
	return f.setFocus(fieldName)
}

func (f *form) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *form) setFocus(field formField) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.due.Blur()
	f.description.Blur()

	if input := f.input(field); input != nil {
		return input.Focus()
	}
	return nil
}

func (f *form) input(field formField) *textinput.Model {
	switch field {
	case fieldName:
		return &f.name
	case fieldDue:
		return &f.due
	case fieldDescription:
		return &f.description
	default:
		return nil
	}
}

// update routes a key to the focused field and returns the validation field
// that was edited, or "" if nothing changed.
func (f *form) update(msg tea.KeyMsg) (validation.Field, tea.Cmd) {
	switch f.focus {
	case fieldCategory:
		if next, ok := cycleChoice(f.category, len(domain.Categories), msg.String(), false); ok {
			f.category = next
			return validation.FieldCategory, nil
		}
		return "", nil
	case fieldPriority:
		if next, ok := cycleChoice(f.priority, len(domain.Priorities), msg.String(), true); ok {
			f.priority = next
		}
		return "", nil
	}

	input := f.input(f.focus)
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return "", cmd
	}

	switch f.focus {
	case fieldName:
		return validation.FieldName, cmd
	case fieldDue:
		return validation.FieldDueAt, cmd
	default:
		return validation.FieldDescription, cmd
	}
}

// cycleChoice moves a selector left or right. Priority can be cleared with
// backspace since it is optional.
func cycleChoice(current, n int, key string, optional bool) (int, bool) {
	switch key {
	case "right", "l", " ":
		return (current + 1) % n, true
	case "left", "h":
		if current <= 0 {
			return n - 1, true
		}
		return current - 1, true
	case "backspace", "delete":
		if optional {
			return -1, true
		}
	}
	return current, false
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}

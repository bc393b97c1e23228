package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/domain"
	"tasklist/internal/validation"
	"tasklist/internal/view"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(13)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(13)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func (m *Model) View() string {
	var b strings.Builder
	if m.mode == modeForm {
		m.writeForm(&b)
	} else {
		m.writeList(&b)
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m *Model) writeList(b *strings.Builder) {
	b.WriteString(titleStyle.Render(view.Header(len(m.entries))) + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("filter: %s  sort: %s", m.options.Category, m.options.Sort)) + "\n\n")

	for i, e := range m.entries {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + view.RenderEntry(e, m.styles) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("a add • e edit • d delete • f filter • s sort view • S sort tasks • q quit") + "\n")
}

func (m *Model) writeForm(b *strings.Builder) {
	title := "New Task"
	if editing := m.controller.Editing(); editing != nil {
		title = fmt.Sprintf("Edit Task: %s", editing.Name)
	}
	b.WriteString(titleStyle.Render(title) + "\n")

	m.writeRow(b, fieldName, "Name", m.form.name.View(), validation.FieldName)
	m.writeRow(b, fieldCategory, "Category", choices(domain.Categories, m.form.category), validation.FieldCategory)
	m.writeRow(b, fieldPriority, "Priority", choices(domain.Priorities, m.form.priority), "")
	m.writeRow(b, fieldDue, "Due", m.form.due.View(), validation.FieldDueAt)
	m.writeRow(b, fieldDescription, "Description", m.form.description.View(), validation.FieldDescription)

	b.WriteString("\n" + helpStyle.Render("tab next field • ←/→ choose • enter save • esc cancel") + "\n")
}

func (m *Model) writeRow(b *strings.Builder, field formField, label, content string, errField validation.Field) {
	l := labelStyle.Render(label)
	if m.form.focus == field {
		l = focusedStyle.Inherit(labelStyle).Render(label)
	}
	b.WriteString(l + content + "\n")

	if errField == "" {
		return
	}
	if msg := m.fieldErrors.Get(errField); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
}

func choices(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		if i == selected {
			parts[i] = selectedStyle.Render("[" + opt + "]")
		} else {
			parts[i] = " " + opt + " "
		}
	}
	return strings.Join(parts, " ")
}

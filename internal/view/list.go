package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used to print a task list.
type Styles struct {
	Header      lipgloss.Style
	Name        lipgloss.Style
	Info        lipgloss.Style
	Countdown   lipgloss.Style
	Description lipgloss.Style
	Row         lipgloss.Style
	Danger      lipgloss.Style
}

// DefaultStyles returns the styles used by the terminal views.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Name:        lipgloss.NewStyle().Bold(true),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Countdown:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Description: lipgloss.NewStyle().Faint(true).PaddingLeft(2),
		Row:         lipgloss.NewStyle().Padding(0, 1),
		Danger: lipgloss.NewStyle().Padding(0, 1).
			Background(lipgloss.Color("124")).
			Foreground(lipgloss.Color("230")),
	}
}

// RenderEntry formats a single entry. Overdue entries use the danger style.
func RenderEntry(e Entry, styles Styles) string {
	line := strings.Join([]string{
		styles.Name.Render(e.Task.Name),
		styles.Info.Render(strings.TrimSpace(InfoLine(e.Task))),
		styles.Countdown.Render(e.Countdown),
	}, " ")

	body := line
	if e.Task.Description != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, line, styles.Description.Render(e.Task.Description))
	}

	if e.Overdue {
		return styles.Danger.Render(body)
	}
	return styles.Row.Render(body)
}

// RenderList writes the header followed by every entry.
func RenderList(w io.Writer, entries []Entry, styles Styles) error {
	if _, err := fmt.Fprintln(w, styles.Header.Render(Header(len(entries)))); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, RenderEntry(e, styles)); err != nil {
			return err
		}
	}
	return nil
}

package view

import (
	"testing"
	"time"

	"tasklist/internal/countdown"
	"tasklist/internal/domain"
	"tasklist/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func task(name, category, priority string, due time.Duration) domain.Task {
	return domain.NewTask(name, category, priority, testNow.Add(due).Format(domain.DefaultDueLayout), "")
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Task.Name
	}
	return names
}

func TestRenderer_Project(t *testing.T) {
	tasks := []domain.Task{
		task("report", "Work", "High", 48*time.Hour),
		task("dishes", "Home", "", 2*time.Hour),
		task("standup", "Work", "", 24*time.Hour),
		task("missed", "Work", "Low", -time.Hour),
	}

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{"no options keeps stored order", Options{}, []string{"report", "dishes", "standup", "missed"}},
		{"all is no filter", Options{Category: AllCategories}, []string{"report", "dishes", "standup", "missed"}},
		{"filter by category", Options{Category: "Home"}, []string{"dishes"}},
		{"filter with no matches", Options{Category: "College"}, []string{}},
		{"filter then sort ascending", Options{Category: "Work", Sort: services.SortAscending}, []string{"missed", "standup", "report"}},
		{"sort descending", Options{Sort: services.SortDescending}, []string{"report", "standup", "dishes", "missed"}},
	}

	r := NewRenderer("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := r.Project(tasks, tt.opts, testNow)
			assert.Equal(t, tt.expected, entryNames(entries))
		})
	}

	assert.Equal(t, "report", tasks[0].Name, "projection must not reorder the source")
}

func TestRenderer_ProjectCountdowns(t *testing.T) {
	r := NewRenderer("")
	tasks := []domain.Task{
		task("soon", "Work", "", 90*time.Minute),
		task("late", "Work", "", -time.Minute),
		domain.NewTask("broken", "Work", "", "tomorrow", ""),
	}

	entries := r.Project(tasks, Options{}, testNow)
	require.Len(t, entries, 3)

	assert.Equal(t, "1H 30M", entries[0].Countdown)
	assert.False(t, entries[0].Overdue)

	assert.Equal(t, countdown.Overdue, entries[1].Countdown)
	assert.True(t, entries[1].Overdue)

	assert.Equal(t, countdown.InvalidDate, entries[2].Countdown)
	assert.False(t, entries[2].Overdue)
}

func TestRenderer_RefreshRecomputes(t *testing.T) {
	r := NewRenderer("")
	entries := r.Project([]domain.Task{task("soon", "Work", "", 10*time.Minute)}, Options{}, testNow)
	require.False(t, entries[0].Overdue)

	later := r.Refresh(entries, testNow.Add(time.Hour))
	assert.True(t, later[0].Overdue)

	// refresh must not assume time only moves forward
	earlier := r.Refresh(later, testNow)
	assert.False(t, earlier[0].Overdue)
	assert.Equal(t, "10M", earlier[0].Countdown)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, HeaderEmpty, Header(0))
	assert.Equal(t, HeaderTasks, Header(1))
}

func TestInfoLine(t *testing.T) {
	tests := []struct {
		name     string
		task     domain.Task
		expected string
	}{
		{"with priority", domain.Task{Category: "Work", Priority: "High"}, " - (Work) - High priority - "},
		{"without priority", domain.Task{Category: "Home"}, "- (Home) -"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InfoLine(tt.task))
		})
	}
}

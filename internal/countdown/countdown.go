// Package countdown renders the time left until a task is due.
package countdown

import (
	"fmt"
	"strings"
	"time"

	"tasklist/internal/domain"
)

const (
	// Overdue is returned once the due time has passed.
	Overdue = "Overdue"
	// InvalidDate is shown for due values that cannot be parsed.
	InvalidDate = "Invalid date"
)

// Remaining formats due-now as "{d}D {h}H {m}M". Days and hours are left out
// when zero; minutes are always present. Sub-minute precision is truncated.
func Remaining(due, now time.Time) string {
	diff := due.Sub(now)
	if diff < 0 {
		return Overdue
	}

	totalMinutes := int64(diff / time.Minute)
	minutes := totalMinutes % 60
	hours := (totalMinutes / 60) % 24
	days := totalMinutes / (60 * 24)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dD", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dH", hours))
	}
	parts = append(parts, fmt.Sprintf("%dM", minutes))

	return strings.Join(parts, " ")
}

// RemainingText parses dueAt with layout and formats it against now.
func RemainingText(dueAt, layout string, now time.Time) string {
	due, err := domain.ParseDue(dueAt, layout)
	if err != nil {
		return InvalidDate
	}
	return Remaining(due, now)
}

// IsOverdue reports whether a rendered countdown is the overdue marker.
func IsOverdue(text string) bool {
	return strings.TrimSpace(text) == Overdue
}

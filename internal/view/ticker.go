package view

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultRefreshInterval is how often countdowns are recomputed.
const DefaultRefreshInterval = time.Minute

// TickMsg asks the owner to recompute countdowns. Gen identifies the refresh
// chain that produced it.
type TickMsg struct {
	Gen int
	At  time.Time
}

// Ticker is the single recurring countdown refresh. Every Restart starts a
// new chain and orphans the previous one; ticks from an orphaned chain are
// rejected by Accept and never rescheduled.
type Ticker struct {
	interval time.Duration
	gen      int
}

// NewTicker creates a stopped Ticker. A non-positive interval falls back to
// DefaultRefreshInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Ticker{interval: interval}
}

// Interval returns the refresh period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Generation returns the tag of the live chain.
func (t *Ticker) Generation() int {
	return t.gen
}

// Restart cancels the live chain and schedules the first tick of a new one.
func (t *Ticker) Restart() tea.Cmd {
	t.gen++
	return t.schedule()
}

// Stop cancels the live chain without starting another.
func (t *Ticker) Stop() {
	t.gen++
}

// Accept reports whether msg belongs to the live chain.
func (t *Ticker) Accept(msg TickMsg) bool {
	return msg.Gen == t.gen
}

// Next schedules the following tick of the live chain. Call it only after
// Accept returned true.
func (t *Ticker) Next() tea.Cmd {
	return t.schedule()
}

func (t *Ticker) schedule() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: at}
	})
}

package filter

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the quiet period after the last keystroke before
// the filtered view is recomputed.
const DefaultDebounce = 300 * time.Millisecond

// FireMsg is delivered by the bubbletea runtime when a scheduled
// debounce timer elapses. Gen identifies which Trigger scheduled it;
// the model must discard messages whose generation is stale.
type FireMsg struct {
	Gen int
}

// Debouncer coalesces rapid input events into a single deferred
// recomputation. Each Trigger bumps a generation counter and schedules
// a tick carrying that generation; because a newer Trigger advances the
// counter, earlier ticks arrive stale and are ignored, which cancels
// the pending recomputation and replaces it with the new one. At most
// one live recomputation is pending at any time (last write wins).
//
// The Debouncer runs entirely on the bubbletea event loop and needs no
// locking.
type Debouncer struct {
	delay time.Duration
	gen   int
}

// NewDebouncer returns a Debouncer with the given quiet period.
// A non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger invalidates any pending recomputation and schedules a new
// one. The returned command delivers a FireMsg after the quiet period.
func (d *Debouncer) Trigger() tea.Cmd {
	d.gen++
	gen := d.gen
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return FireMsg{Gen: gen}
	})
}

// Current reports whether msg was scheduled by the most recent Trigger.
// Stale messages must be dropped without recomputing.
func (d *Debouncer) Current(msg FireMsg) bool {
	return msg.Gen == d.gen
}

// Gen returns the current generation counter. Exposed for tests.
func (d *Debouncer) Gen() int {
	return d.gen
}

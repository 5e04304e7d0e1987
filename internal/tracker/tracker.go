// Package tracker times training sessions. It holds the transient
// start-timestamp state for the active period and writes duration and
// done-today records through the progress store when a session finishes.
package tracker

import (
	"errors"
	"time"

	"github.com/yuchen/eyebright/internal/progress"
)

// ErrSessionActive is returned when a session is started while another
// period's session is still being timed. Only one period is trainable at
// a time; the caller must Finish or Abandon the active one first.
var ErrSessionActive = errors.New("another session is already active")

// Tracker times at most one active session. Not safe for concurrent use;
// all calls happen on the UI event loop.
type Tracker struct {
	store *progress.Store
	now   func() time.Time

	activePeriod progress.Period
	startedAt    time.Time
	active       bool
}

// New creates a Tracker over the progress store.
func New(store *progress.Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// SetClock overrides the wall clock, for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// IsSessionDone reports whether the period's deck was already exhausted
// on the given day.
func (t *Tracker) IsSessionDone(period progress.Period, day string) bool {
	return t.store.IsSessionDone(day, period)
}

// Start begins timing a session for the period. It is a no-op (without
// error) if the period is already done today, and an error if a different
// period's session is still active.
func (t *Tracker) Start(period progress.Period) error {
	if t.IsSessionDone(period, progress.DayKey(t.now())) {
		return nil
	}
	if t.active && t.activePeriod != period {
		return ErrSessionActive
	}
	t.activePeriod = period
	t.startedAt = t.now()
	t.active = true
	return nil
}

// Active returns the period currently being timed, if any.
func (t *Tracker) Active() (progress.Period, bool) {
	return t.activePeriod, t.active
}

// Finish marks the period's session done for today. If the active timer
// matches the period, the elapsed wall-clock duration is recorded first.
// Transient timer state is cleared either way.
func (t *Tracker) Finish(period progress.Period) {
	day := progress.DayKey(t.now())
	if t.active && t.activePeriod == period {
		elapsed := int(t.now().Sub(t.startedAt).Round(time.Second) / time.Second)
		t.store.RecordSessionDuration(day, period, elapsed)
	}
	t.store.MarkSessionDone(day, period)
	t.Abandon()
}

// Abandon discards the active timer without recording anything.
func (t *Tracker) Abandon() {
	t.active = false
	t.activePeriod = ""
	t.startedAt = time.Time{}
}

package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/tracker"
)

// MaxRetries is how many wrong attempts a math slide allows before the
// answer is revealed and the deck force-advances.
const MaxRetries = 3

// Auto-advance and feedback-clear delays. These mirror the pacing the
// training routine was designed around and are not configurable.
const (
	AdvanceAfterCorrect = 1 * time.Second
	RetryClearAfter     = 1200 * time.Millisecond
	AdvanceAfterReveal  = 2200 * time.Millisecond
	AdvanceAfterReading = 2200 * time.Millisecond
	AdvanceAfterOutdoor = 2200 * time.Millisecond
)

// Transition is an explicit scheduled-transition request: the caller
// should advance the deck after the delay, unless the engine is closed
// first. The engine never owns timers itself.
type Transition struct {
	After time.Duration
}

// Listeners are the engine's only outward notifications. Nil funcs are
// simply not called.
type Listeners struct {
	TaskCompleted   func(taskID string)
	SessionFinished func(period progress.Period)
}

// Engine is the slide-deck state machine for one training session.
// Not safe for concurrent use; all calls happen on the UI event loop.
type Engine struct {
	ID string

	deck   []Slide
	index  int
	period progress.Period // "" when the deck spans both periods

	store     *progress.Store
	tracker   *tracker.Tracker
	listeners Listeners
	now       func() time.Time

	retries   map[int]int          // slide index → wrong attempts (math)
	solved    map[string]int       // task ID → problems solved this session
	answered  map[int]map[int]bool // slide index → question index → answered
	countdown *countdown           // live outdoor timer, nil when none

	completed map[string]bool // task IDs whose completion already fired
	finished  bool            // session-finish already fired
	closed    bool
}

// New builds the slide deck for the period and returns an engine
// positioned at slide 0. period "" builds the full-day deck. A deck that
// is empty from the start (the period has no tasks) is already complete,
// so the finish effects fire before New returns.
func New(m *manifest.Manifest, period progress.Period, store *progress.Store, tr *tracker.Tracker, listeners Listeners) *Engine {
	e := &Engine{
		ID:        uuid.New().String(),
		deck:      BuildDeck(m, period),
		period:    period,
		store:     store,
		tracker:   tr,
		listeners: listeners,
		now:       time.Now,
		retries:   make(map[int]int),
		solved:    make(map[string]int),
		answered:  make(map[int]map[int]bool),
		completed: make(map[string]bool),
	}
	if e.Done() {
		e.finishSession()
	}
	return e
}

// SetClock overrides the wall clock, for tests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Len returns the deck length.
func (e *Engine) Len() int { return len(e.deck) }

// Index returns the current slide index.
func (e *Engine) Index() int { return e.index }

// Current returns the current slide, or false when the deck is exhausted
// (or was never non-empty).
func (e *Engine) Current() (Slide, bool) {
	if e.index < 0 || e.index >= len(e.deck) {
		return Slide{}, false
	}
	return e.deck[e.index], true
}

// Done reports whether the deck is exhausted.
func (e *Engine) Done() bool {
	return e.index >= len(e.deck)
}

// Closed reports whether Close was called.
func (e *Engine) Closed() bool { return e.closed }

// Advance moves forward exactly one slide. There is no backward
// navigation. Reaching the end of the deck finishes the session: the
// tracker records it and the SessionFinished listener fires, both exactly
// once. Advancing a closed engine is a no-op.
func (e *Engine) Advance() {
	if e.closed || e.Done() {
		return
	}
	e.stopCountdown()
	e.index++
	if e.Done() {
		e.finishSession()
	}
}

// Close abandons the session: the countdown stops, and any Transition or
// tick the caller still has in flight becomes a no-op. Task completions
// that already fired stay recorded; nothing else is persisted.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.stopCountdown()
	if e.tracker != nil && !e.finished {
		e.tracker.Abandon()
	}
}

// finishSession fires the once-only end-of-deck effects.
func (e *Engine) finishSession() {
	if e.finished {
		return
	}
	e.finished = true
	if e.period == "" {
		return
	}
	if e.tracker != nil {
		e.tracker.Finish(e.period)
	}
	if e.listeners.SessionFinished != nil {
		e.listeners.SessionFinished(e.period)
	}
}

// completeTask records a task completion and notifies, once per task per
// engine. The store insert itself is idempotent across sessions.
func (e *Engine) completeTask(taskID string) {
	if e.completed[taskID] {
		return
	}
	e.completed[taskID] = true
	if e.store != nil {
		e.store.RecordTaskCompletion(progress.DayKey(e.now()), taskID)
	}
	if e.listeners.TaskCompleted != nil {
		e.listeners.TaskCompleted(taskID)
	}
}

// Retries returns the current slide's wrong-attempt count.
func (e *Engine) Retries() int {
	return e.retries[e.index]
}

// SolvedInTask returns how many of the task's problems were solved this
// session.
func (e *Engine) SolvedInTask(taskID string) int {
	return e.solved[taskID]
}

// AnsweredCount returns how many of the current reading slide's questions
// have been answered.
func (e *Engine) AnsweredCount() int {
	return len(e.answered[e.index])
}

// IsAnswered reports whether question qIdx on the current slide is locked.
func (e *Engine) IsAnswered(qIdx int) bool {
	return e.answered[e.index][qIdx]
}

func (e *Engine) lockQuestion(qIdx int) {
	qs := e.answered[e.index]
	if qs == nil {
		qs = make(map[int]bool)
		e.answered[e.index] = qs
	}
	qs[qIdx] = true
}

// ignore returns true for calls that arrive after Close or past the end
// of the deck — e.g. a stale timer callback.
func (e *Engine) ignore() bool {
	return e.closed || e.Done()
}

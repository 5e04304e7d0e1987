package quiz

// countdown is the transient state of an outdoor slide's timer. The
// engine does not tick itself: the caller delivers one Tick per wall-clock
// second (the Bubble Tea layer schedules them) and the countdown just
// counts. Stale ticks after Close or after the slide changed are no-ops.
type countdown struct {
	slideIndex int
	remaining  int
	done       bool
}

// StartOutdoor begins the current outdoor slide's countdown from
// DurationMinutes*60 seconds. Starting a timer that is already running
// (or already finished) is a no-op; it reports whether a new countdown
// was started.
func (e *Engine) StartOutdoor() bool {
	if e.ignore() {
		return false
	}
	slide, ok := e.Current()
	if !ok || slide.Kind != SlideOutdoor {
		return false
	}
	if e.countdown != nil && e.countdown.slideIndex == e.index {
		return false
	}
	e.countdown = &countdown{
		slideIndex: e.index,
		remaining:  slide.Task.DurationMinutes * 60,
	}
	return true
}

// OutdoorRunning reports whether the current slide's countdown is live.
func (e *Engine) OutdoorRunning() bool {
	return e.countdown != nil && e.countdown.slideIndex == e.index && !e.countdown.done
}

// OutdoorRemaining returns the seconds left on the current slide's
// countdown, or the full duration if it hasn't started.
func (e *Engine) OutdoorRemaining() int {
	if e.countdown != nil && e.countdown.slideIndex == e.index {
		return e.countdown.remaining
	}
	if slide, ok := e.Current(); ok && slide.Kind == SlideOutdoor {
		return slide.Task.DurationMinutes * 60
	}
	return 0
}

// Tick advances the current countdown by one second. Reaching zero
// completes the outdoor task exactly once and schedules the advance.
// Ticks while no countdown is running (closed engine, changed slide,
// finished timer) do nothing.
func (e *Engine) Tick() Result {
	if e.closed || !e.OutdoorRunning() {
		return Result{Outcome: OutcomeIgnored}
	}

	e.countdown.remaining--
	if e.countdown.remaining > 0 {
		return Result{Outcome: OutcomeIgnored}
	}

	e.countdown.remaining = 0
	e.countdown.done = true

	slide, _ := e.Current()
	e.completeTask(slide.Task.ID)
	return Result{
		Outcome:       OutcomeCorrect,
		TaskCompleted: true,
		Advance:       &Transition{After: AdvanceAfterOutdoor},
	}
}

// stopCountdown cancels any live countdown.
func (e *Engine) stopCountdown() {
	e.countdown = nil
}

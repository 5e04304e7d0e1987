package quiz

import "time"

// secondTickMsg is sent every second while an outdoor countdown runs.
type secondTickMsg time.Time

// advanceSlideMsg advances the deck after a scheduled transition delay.
// seq guards against stale timers from a slide that already changed.
type advanceSlideMsg struct {
	seq int
}

// clearFeedbackMsg clears retry feedback so the learner can try again.
type clearFeedbackMsg struct {
	seq int
}

// nextQuestionMsg moves a reading slide to its next unanswered question.
type nextQuestionMsg struct {
	seq int
}

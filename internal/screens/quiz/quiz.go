package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	engine "github.com/yuchen/eyebright/internal/quiz"
	"github.com/yuchen/eyebright/internal/router"
	"github.com/yuchen/eyebright/internal/screen"
	"github.com/yuchen/eyebright/internal/tracker"
	"github.com/yuchen/eyebright/internal/ui/components"
	"github.com/yuchen/eyebright/internal/ui/layout"
)

// feedbackKind classifies the inline feedback under the answer area.
type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackInvalid
	feedbackRetry
	feedbackCorrect
	feedbackWrong
	feedbackReveal
)

// QuizScreen drives one training session: it walks the engine's slide
// deck, collects answers, and schedules the engine's transitions as
// Bubble Tea ticks. The engine owns all session semantics; this screen
// owns presentation and timing only.
type QuizScreen struct {
	eng    *engine.Engine
	store  *progress.Store
	period progress.Period

	// seq increments on every slide change so scheduled messages from
	// a previous slide are dropped instead of acted on.
	seq int

	input    components.TextInput
	mc       components.MultiChoice
	qIdx     int
	feedback feedbackKind
	revealed string
	note     string

	statsDirty bool
	finished   bool
	startErr   error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New builds the session screen and its engine for the given period.
func New(m *manifest.Manifest, period progress.Period, store *progress.Store, tr *tracker.Tracker) *QuizScreen {
	s := &QuizScreen{
		store:  store,
		period: period,
	}
	s.eng = engine.New(m, period, store, tr, engine.Listeners{
		TaskCompleted: func(string) {
			s.statsDirty = true
		},
		SessionFinished: func(progress.Period) {
			s.statsDirty = true
			s.finished = true
		},
	})

	// The full-day deck (period "") is untracked; only real periods own
	// a session timer.
	if period != "" {
		if err := tr.Start(period); err != nil {
			s.startErr = err
		}
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.startErr != nil {
		return nil
	}
	// An empty deck finishes during engine construction; afterEngine
	// flushes that straight into a header refresh.
	return s.afterEngine(s.prepareSlide())
}

func (s *QuizScreen) Title() string {
	switch s.period {
	case progress.PeriodMorning:
		return "Morning Training"
	case progress.PeriodEvening:
		return "Evening Training"
	}
	return "Training"
}

// Close abandons the session. Any tick or transition still in flight
// lands on a closed engine and does nothing.
func (s *QuizScreen) Close() {
	s.eng.Close()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.startErr != nil || s.sessionOver() {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	slide, ok := s.eng.Current()
	if !ok {
		return nil
	}
	switch slide.Kind {
	case engine.SlideMath:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Quit"},
		}
	case engine.SlideReading:
		if slide.Article == nil {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Skip"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case engine.SlideOutdoor:
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case secondTickMsg:
		return s.handleSecondTick()

	case advanceSlideMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		s.eng.Advance()
		return s, s.afterEngine(s.prepareSlide())

	case clearFeedbackMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		if s.feedback == feedbackRetry || s.feedback == feedbackInvalid {
			s.feedback = feedbackNone
			s.input.Reset()
		}
		return s, nil

	case nextQuestionMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		return s, s.setupQuestion()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.startErr != nil || s.sessionOver() {
		return s, router.Pop()
	}

	if key == "esc" {
		return s, router.Pop()
	}

	slide, ok := s.eng.Current()
	if !ok {
		return s, nil
	}

	switch slide.Kind {
	case engine.SlideMath:
		return s.handleMathKey(msg, key)
	case engine.SlideReading:
		if slide.Article == nil {
			if key == "enter" {
				s.eng.Advance()
				return s, s.afterEngine(s.prepareSlide())
			}
			return s, nil
		}
		return s.handleReadingKey(msg, key, slide)
	}

	return s, nil
}

func (s *QuizScreen) handleMathKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	// Answers locked in feedback are final; retry feedback clears on
	// its own timer before input resumes.
	if s.feedback == feedbackCorrect || s.feedback == feedbackReveal {
		return s, nil
	}

	if key == "enter" {
		res := s.eng.SubmitMath(s.input.Value())
		switch res.Outcome {
		case engine.OutcomeInvalid:
			s.feedback = feedbackInvalid
			return s, s.afterEngine(s.scheduleClear())
		case engine.OutcomeCorrect:
			s.input.Submit(true)
			s.feedback = feedbackCorrect
			return s, s.afterEngine(s.scheduleAdvance(res.Advance))
		case engine.OutcomeRetry:
			s.input.Submit(false)
			s.feedback = feedbackRetry
			return s, s.afterEngine(s.scheduleClear())
		case engine.OutcomeReveal:
			s.input.Submit(false)
			s.feedback = feedbackReveal
			s.revealed = res.CorrectAnswer
			return s, s.afterEngine(s.scheduleAdvance(res.Advance))
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleReadingKey(msg tea.KeyMsg, key string, slide engine.Slide) (screen.Screen, tea.Cmd) {
	if s.qIdx >= len(slide.Questions) {
		return s, nil
	}
	q := slide.Questions[s.qIdx]

	if q.Type == manifest.QuestionSpell {
		if s.feedback == feedbackCorrect || s.feedback == feedbackWrong {
			return s, nil
		}
		if key == "enter" {
			res := s.eng.SubmitSpell(s.qIdx, s.input.Value())
			switch res.Outcome {
			case engine.OutcomeInvalid:
				s.feedback = feedbackInvalid
				return s, s.afterEngine(s.scheduleClear())
			case engine.OutcomeCorrect, engine.OutcomeWrong:
				return s, s.afterEngine(s.applyReadingResult(q, res))
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	// Multiple choice. The component locks itself on enter; the engine
	// call happens on the same keypress.
	if s.mc.Submitted {
		return s, nil
	}
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		res := s.eng.AnswerChoice(s.qIdx, s.mc.ChosenIndex)
		return s, s.afterEngine(s.applyReadingResult(q, res))
	}
	return s, cmd
}

// applyReadingResult records feedback for an answered question and
// schedules either the slide advance (task done) or the next question.
func (s *QuizScreen) applyReadingResult(q manifest.Question, res engine.Result) tea.Cmd {
	switch res.Outcome {
	case engine.OutcomeCorrect:
		if q.Type == manifest.QuestionSpell {
			s.input.Submit(true)
		}
		s.feedback = feedbackCorrect
	case engine.OutcomeWrong:
		if q.Type == manifest.QuestionSpell {
			s.input.Submit(false)
		}
		s.feedback = feedbackWrong
		s.revealed = res.CorrectAnswer
	default:
		return nil
	}
	s.note = q.Note

	if res.Advance != nil {
		return s.scheduleAdvance(res.Advance)
	}
	seq := s.seq
	return tea.Tick(engine.RetryClearAfter, func(time.Time) tea.Msg {
		return nextQuestionMsg{seq: seq}
	})
}

func (s *QuizScreen) handleSecondTick() (screen.Screen, tea.Cmd) {
	res := s.eng.Tick()
	if res.Advance != nil {
		return s, s.afterEngine(s.scheduleAdvance(res.Advance))
	}
	if s.eng.OutdoorRunning() {
		return s, tickCmd()
	}
	return s, nil
}

// prepareSlide resets per-slide UI state for the engine's current slide.
func (s *QuizScreen) prepareSlide() tea.Cmd {
	s.seq++
	s.feedback = feedbackNone
	s.revealed = ""
	s.note = ""

	slide, ok := s.eng.Current()
	if !ok {
		return nil
	}

	switch slide.Kind {
	case engine.SlideMath:
		s.input = components.NewTextInput("?", true, 4)
		return s.input.Init()
	case engine.SlideReading:
		if slide.Article == nil {
			return nil
		}
		return s.setupQuestion()
	case engine.SlideOutdoor:
		s.eng.StartOutdoor()
		return tickCmd()
	}
	return nil
}

// setupQuestion builds the input component for the reading slide's next
// unanswered question. Questions are answered in order, so the count of
// answered questions is the next index.
func (s *QuizScreen) setupQuestion() tea.Cmd {
	s.feedback = feedbackNone
	s.revealed = ""
	s.note = ""

	slide, ok := s.eng.Current()
	if !ok || slide.Kind != engine.SlideReading {
		return nil
	}
	s.qIdx = s.eng.AnsweredCount()
	if s.qIdx >= len(slide.Questions) {
		return nil
	}

	q := slide.Questions[s.qIdx]
	if q.Type == manifest.QuestionSpell {
		s.input = components.NewTextInput("Type the word...", false, 30)
		return s.input.Init()
	}
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	return nil
}

func (s *QuizScreen) sessionOver() bool {
	return s.finished || s.eng.Done()
}

// afterEngine appends a stats-refresh notification when an engine call
// just persisted progress.
func (s *QuizScreen) afterEngine(cmd tea.Cmd) tea.Cmd {
	if !s.statsDirty {
		return cmd
	}
	s.statsDirty = false
	notify := func() tea.Msg { return screen.StatsChangedMsg{} }
	if cmd == nil {
		return notify
	}
	return tea.Batch(cmd, notify)
}

func (s *QuizScreen) scheduleAdvance(t *engine.Transition) tea.Cmd {
	if t == nil {
		return nil
	}
	seq := s.seq
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return advanceSlideMsg{seq: seq}
	})
}

func (s *QuizScreen) scheduleClear() tea.Cmd {
	seq := s.seq
	return tea.Tick(engine.RetryClearAfter, func(time.Time) tea.Msg {
		return clearFeedbackMsg{seq: seq}
	})
}

// tickCmd returns a 1-second tick for the outdoor countdown.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return secondTickMsg(t)
	})
}

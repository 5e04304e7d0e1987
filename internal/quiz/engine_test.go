package quiz

import (
	"strconv"
	"testing"
	"time"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/problemgen"
	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/tracker"
)

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Morning: &manifest.Section{
			Label: "Morning",
			Tasks: []manifest.Task{
				{
					ID:     "math-m",
					Type:   manifest.TaskMath,
					Title:  "Mental Math",
					Config: &problemgen.Counts{Addition: 2},
				},
				{
					ID:        "english-m",
					Type:      manifest.TaskEnglish,
					Title:     "English Reading",
					ArticleID: "art-en",
				},
				{
					ID:              "outdoor-m",
					Type:            manifest.TaskOutdoor,
					Title:           "Outdoor Break",
					DurationMinutes: 20,
				},
			},
		},
		Evening: &manifest.Section{
			Label: "Evening",
			Tasks: []manifest.Task{
				{
					ID:        "chinese-e",
					Type:      manifest.TaskChinese,
					Title:     "Chinese Reading",
					ArticleID: "art-zh",
				},
			},
		},
		Articles: map[string]*manifest.Article{
			"art-en": {
				Title:        "Whales",
				Content:      []string{"Whales are big."},
				Question:     "Are whales big?",
				Options:      []string{"Yes", "No"},
				CorrectIndex: 0,
				ExtraQuestions: []manifest.Question{
					{Type: manifest.QuestionSpell, Prompt: "Spell it", Answer: "whale"},
				},
			},
			"art-zh": {
				Title:        "小猫",
				Content:      []string{"小猫喜欢玩。"},
				Question:     "小猫喜欢做什么？",
				Options:      []string{"睡觉", "玩"},
				CorrectIndex: 1,
				ExtraQuestions: []manifest.Question{
					{Type: manifest.QuestionTypo, Prompt: "找错别字", Options: []string{"对", "错"}, CorrectIndex: 1},
					{Type: manifest.QuestionTypo, Prompt: "再找一个", Options: []string{"对", "错"}, CorrectIndex: 0},
				},
			},
		},
	}
}

type capture struct {
	tasks    []string
	sessions []progress.Period
}

func (c *capture) listeners() Listeners {
	return Listeners{
		TaskCompleted:   func(id string) { c.tasks = append(c.tasks, id) },
		SessionFinished: func(p progress.Period) { c.sessions = append(c.sessions, p) },
	}
}

func testEngine(t *testing.T, period progress.Period) (*Engine, *progress.Store, *capture) {
	t.Helper()
	store, err := progress.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cap := &capture{}
	e := New(testManifest(), period, store, tracker.New(store), cap.listeners())
	return e, store, cap
}

func wrongAnswer(p problemgen.Problem) string {
	return strconv.Itoa(p.Answer + 1)
}

func rightAnswer(p problemgen.Problem) string {
	return strconv.Itoa(p.Answer)
}

func TestBuildDeck_Flattening(t *testing.T) {
	m := testManifest()

	deck := BuildDeck(m, progress.PeriodMorning)
	// 2 math problems + 1 reading + 1 outdoor.
	if len(deck) != 4 {
		t.Fatalf("morning deck len = %d, want 4", len(deck))
	}
	if deck[0].Kind != SlideMath || deck[1].Kind != SlideMath {
		t.Error("expected math slides first")
	}
	if deck[2].Kind != SlideReading || len(deck[2].Questions) != 2 {
		t.Errorf("reading slide = %+v", deck[2])
	}
	if deck[3].Kind != SlideOutdoor {
		t.Error("expected outdoor slide last")
	}

	full := BuildDeck(m, "")
	if len(full) != 5 {
		t.Fatalf("full deck len = %d, want 5 (morning then evening)", len(full))
	}
	if full[4].Task.ID != "chinese-e" {
		t.Errorf("last slide task = %s, want chinese-e", full[4].Task.ID)
	}
}

func TestBuildDeck_MissingArticle(t *testing.T) {
	m := testManifest()
	m.Morning.Tasks[1].ArticleID = "gone"

	deck := BuildDeck(m, progress.PeriodMorning)
	if len(deck) != 4 {
		t.Fatalf("deck len = %d, want 4 (broken slide stays in deck)", len(deck))
	}
	if deck[2].Article != nil || deck[2].Questions != nil {
		t.Errorf("expected placeholder slide, got %+v", deck[2])
	}
}

func TestMathSlide_RetryThenSolve(t *testing.T) {
	e, _, cap := testEngine(t, progress.PeriodMorning)
	slide, _ := e.Current()

	// Two wrong attempts stay on the slide.
	for attempt := 1; attempt <= 2; attempt++ {
		res := e.SubmitMath(wrongAnswer(slide.Problem))
		if res.Outcome != OutcomeRetry {
			t.Fatalf("attempt %d outcome = %v, want retry", attempt, res.Outcome)
		}
		if res.Advance != nil {
			t.Fatalf("attempt %d scheduled an advance", attempt)
		}
	}
	if e.Index() != 0 {
		t.Fatalf("index moved to %d during retries", e.Index())
	}

	// Third attempt correct: advances, but the task isn't complete yet.
	res := e.SubmitMath(rightAnswer(slide.Problem))
	if res.Outcome != OutcomeCorrect {
		t.Fatalf("outcome = %v, want correct", res.Outcome)
	}
	if res.Advance == nil || res.Advance.After != AdvanceAfterCorrect {
		t.Fatalf("expected advance after %v, got %+v", AdvanceAfterCorrect, res.Advance)
	}
	if res.TaskCompleted || len(cap.tasks) != 0 {
		t.Fatal("task completed before its second problem was solved")
	}
	e.Advance()

	// Second problem solves the task.
	slide, _ = e.Current()
	res = e.SubmitMath(rightAnswer(slide.Problem))
	if !res.TaskCompleted {
		t.Fatal("expected task completion on final problem")
	}
	if len(cap.tasks) != 1 || cap.tasks[0] != "math-m" {
		t.Fatalf("task listener calls = %v", cap.tasks)
	}
}

func TestMathSlide_RevealAfterThreeWrong(t *testing.T) {
	e, _, _ := testEngine(t, progress.PeriodMorning)
	slide, _ := e.Current()

	e.SubmitMath(wrongAnswer(slide.Problem))
	e.SubmitMath(wrongAnswer(slide.Problem))
	res := e.SubmitMath(wrongAnswer(slide.Problem))

	if res.Outcome != OutcomeReveal {
		t.Fatalf("outcome = %v, want reveal", res.Outcome)
	}
	if res.CorrectAnswer != rightAnswer(slide.Problem) {
		t.Errorf("revealed %q, want %q", res.CorrectAnswer, rightAnswer(slide.Problem))
	}
	if res.Advance == nil || res.Advance.After != AdvanceAfterReveal {
		t.Errorf("expected force-advance after %v, got %+v", AdvanceAfterReveal, res.Advance)
	}
}

func TestMathSlide_InvalidInput(t *testing.T) {
	e, _, _ := testEngine(t, progress.PeriodMorning)

	res := e.SubmitMath("not a number")
	if res.Outcome != OutcomeInvalid {
		t.Fatalf("outcome = %v, want invalid", res.Outcome)
	}
	if e.Retries() != 0 {
		t.Error("invalid input must not burn a retry")
	}
}

func TestReadingSlide_CompletesOnExhaustion(t *testing.T) {
	e, _, cap := testEngine(t, progress.PeriodEvening)
	slide, _ := e.Current()
	if slide.Kind != SlideReading || len(slide.Questions) != 3 {
		t.Fatalf("unexpected slide %+v", slide)
	}

	// Wrong comprehension answer: locked, correct option revealed, no
	// completion yet.
	res := e.AnswerChoice(0, 0)
	if res.Outcome != OutcomeWrong {
		t.Fatalf("outcome = %v, want wrong", res.Outcome)
	}
	if res.CorrectAnswer != "玩" {
		t.Errorf("revealed %q, want 玩", res.CorrectAnswer)
	}
	if res.TaskCompleted {
		t.Fatal("completed after 1 of 3 questions")
	}

	// Answering the same question again is ignored.
	if res := e.AnswerChoice(0, 1); res.Outcome != OutcomeIgnored {
		t.Fatalf("re-answer outcome = %v, want ignored", res.Outcome)
	}

	if res := e.AnswerChoice(1, 1); res.TaskCompleted {
		t.Fatal("completed after 2 of 3 questions")
	}

	// Third answer completes the task regardless of correctness.
	res = e.AnswerChoice(2, 1)
	if !res.TaskCompleted {
		t.Fatal("expected completion on final question")
	}
	if res.Advance == nil || res.Advance.After != AdvanceAfterReading {
		t.Errorf("expected advance after %v, got %+v", AdvanceAfterReading, res.Advance)
	}
	if len(cap.tasks) != 1 || cap.tasks[0] != "chinese-e" {
		t.Fatalf("task listener calls = %v", cap.tasks)
	}
}

func TestSpellingQuestion(t *testing.T) {
	e, _, _ := testEngine(t, progress.PeriodMorning)
	e.Advance()
	e.Advance() // past the two math slides
	slide, _ := e.Current()
	if slide.Kind != SlideReading {
		t.Fatalf("expected reading slide, got %+v", slide)
	}

	// Empty input is validation feedback, not an answer.
	if res := e.SubmitSpell(1, "   "); res.Outcome != OutcomeInvalid {
		t.Fatalf("blank outcome = %v, want invalid", res.Outcome)
	}
	if e.IsAnswered(1) {
		t.Fatal("blank input locked the question")
	}

	if res := e.SubmitSpell(1, " WH ALE "); res.Outcome != OutcomeCorrect {
		t.Fatalf("outcome = %v, want correct (case/space insensitive)", res.Outcome)
	}

	// Spelling submissions don't apply to multiple-choice questions.
	if res := e.SubmitSpell(0, "whale"); res.Outcome != OutcomeIgnored {
		t.Fatalf("outcome = %v, want ignored", res.Outcome)
	}
}

func TestOutdoorSlide_CountdownCompletesOnce(t *testing.T) {
	e, store, cap := testEngine(t, progress.PeriodMorning)
	advanceToOutdoor(t, e)

	if got := e.OutdoorRemaining(); got != 20*60 {
		t.Fatalf("initial remaining = %d, want %d", got, 20*60)
	}
	if !e.StartOutdoor() {
		t.Fatal("expected countdown to start")
	}
	if e.StartOutdoor() {
		t.Fatal("second start must be a no-op while running")
	}

	var completions int
	for i := 0; i < 1200; i++ {
		res := e.Tick()
		if res.TaskCompleted {
			completions++
			if res.Advance == nil || res.Advance.After != AdvanceAfterOutdoor {
				t.Errorf("expected advance after %v, got %+v", AdvanceAfterOutdoor, res.Advance)
			}
		}
	}
	if completions != 1 {
		t.Fatalf("completion fired %d times, want 1", completions)
	}
	if e.OutdoorRemaining() != 0 {
		t.Errorf("remaining = %d after full countdown", e.OutdoorRemaining())
	}

	// Ticks and restarts after completion change nothing.
	if res := e.Tick(); res.Outcome != OutcomeIgnored {
		t.Fatalf("post-completion tick outcome = %v, want ignored", res.Outcome)
	}
	if e.StartOutdoor() {
		t.Fatal("restart after completion must be a no-op")
	}

	if len(cap.tasks) != 1 || cap.tasks[0] != "outdoor-m" {
		t.Fatalf("task listener calls = %v", cap.tasks)
	}
	if !store.IsTaskCompleted(progress.DayKey(time.Now()), "outdoor-m") {
		t.Error("expected outdoor task persisted")
	}
}

func TestCloseCancelsCountdown(t *testing.T) {
	e, _, _ := testEngine(t, progress.PeriodMorning)
	advanceToOutdoor(t, e)

	if !e.StartOutdoor() {
		t.Fatal("expected countdown to start")
	}
	e.Close()

	if res := e.Tick(); res.Outcome != OutcomeIgnored {
		t.Fatalf("tick after close outcome = %v, want ignored", res.Outcome)
	}
	if res := e.SubmitMath("7"); res.Outcome != OutcomeIgnored {
		t.Fatalf("submit after close outcome = %v, want ignored", res.Outcome)
	}
}

func TestSessionFinish_FiresOnce(t *testing.T) {
	e, store, cap := testEngine(t, progress.PeriodEvening)

	e.AnswerChoice(0, 1)
	e.AnswerChoice(1, 1)
	e.AnswerChoice(2, 0)
	e.Advance()

	if !e.Done() {
		t.Fatal("expected deck exhausted")
	}
	if len(cap.sessions) != 1 || cap.sessions[0] != progress.PeriodEvening {
		t.Fatalf("session listener calls = %v", cap.sessions)
	}

	day := progress.DayKey(time.Now())
	if !store.IsSessionDone(day, progress.PeriodEvening) {
		t.Error("expected evening session flagged done")
	}

	// A stray extra advance must not re-fire.
	e.Advance()
	if len(cap.sessions) != 1 {
		t.Fatalf("session finished fired %d times", len(cap.sessions))
	}
}

func TestSessionFinish_EmptyDeck(t *testing.T) {
	store, err := progress.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// A period with no tasks (and one absent from the manifest entirely)
	// is complete on arrival: the finish effects fire during New.
	m := &manifest.Manifest{
		Morning:  &manifest.Section{Label: "Morning"},
		Articles: map[string]*manifest.Article{},
	}

	for _, period := range []progress.Period{progress.PeriodMorning, progress.PeriodEvening} {
		cap := &capture{}
		e := New(m, period, store, tracker.New(store), cap.listeners())

		if !e.Done() {
			t.Fatalf("%s: expected an empty deck to be done", period)
		}
		if len(cap.sessions) != 1 || cap.sessions[0] != period {
			t.Fatalf("%s: session listener calls = %v, want exactly one", period, cap.sessions)
		}
		if !store.IsSessionDone(progress.DayKey(time.Now()), period) {
			t.Errorf("%s: expected session flagged done", period)
		}

		// Stray advances on the already-finished deck must not re-fire.
		e.Advance()
		if len(cap.sessions) != 1 {
			t.Fatalf("%s: session finished fired %d times", period, len(cap.sessions))
		}
	}
}

// advanceToOutdoor walks the morning deck to its outdoor slide.
func advanceToOutdoor(t *testing.T, e *Engine) {
	t.Helper()
	for {
		slide, ok := e.Current()
		if !ok {
			t.Fatal("deck exhausted before outdoor slide")
		}
		if slide.Kind == SlideOutdoor {
			return
		}
		e.Advance()
	}
}

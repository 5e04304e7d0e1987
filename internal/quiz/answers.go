package quiz

import (
	"strconv"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/problemgen"
)

// Outcome classifies what a submission did to the current slide.
type Outcome int

const (
	// OutcomeIgnored: the engine is closed, the deck is done, or the
	// submission doesn't apply to the current slide.
	OutcomeIgnored Outcome = iota
	// OutcomeInvalid: the input failed validation (non-numeric answer,
	// empty spelling); shown as inline feedback, not counted as an attempt.
	OutcomeInvalid
	// OutcomeCorrect: right answer.
	OutcomeCorrect
	// OutcomeRetry: wrong answer, retries remain; the slide stays.
	OutcomeRetry
	// OutcomeReveal: wrong answer, retries exhausted; the correct answer
	// is revealed and the deck force-advances.
	OutcomeReveal
	// OutcomeWrong: wrong answer on a question that locks on first
	// answer (reading slides reveal the correct option alongside).
	OutcomeWrong
)

// Result reports what a submission caused.
type Result struct {
	Outcome       Outcome
	CorrectAnswer string      // set when the answer is revealed
	TaskCompleted bool        // this submission completed the slide's task
	Advance       *Transition // non-nil: schedule an advance after the delay
}

// SubmitMath checks a typed answer against the current math slide's
// problem. Correct answers count toward the task's solved total and
// schedule an advance; the task completes when its last problem is
// solved. Wrong answers burn one of the slide's retries; the third
// reveals the answer and force-advances.
func (e *Engine) SubmitMath(input string) Result {
	if e.ignore() {
		return Result{Outcome: OutcomeIgnored}
	}
	slide, ok := e.Current()
	if !ok || slide.Kind != SlideMath {
		return Result{Outcome: OutcomeIgnored}
	}

	value, err := problemgen.ParseAnswer(input)
	if err != nil {
		return Result{Outcome: OutcomeInvalid}
	}

	if value == slide.Problem.Answer {
		e.solved[slide.Task.ID]++
		res := Result{
			Outcome: OutcomeCorrect,
			Advance: &Transition{After: AdvanceAfterCorrect},
		}
		if e.solved[slide.Task.ID] >= slide.ProblemTotal {
			e.completeTask(slide.Task.ID)
			res.TaskCompleted = true
		}
		return res
	}

	e.retries[e.index]++
	if e.retries[e.index] >= MaxRetries {
		return Result{
			Outcome:       OutcomeReveal,
			CorrectAnswer: strconv.Itoa(slide.Problem.Answer),
			Advance:       &Transition{After: AdvanceAfterReveal},
		}
	}
	return Result{Outcome: OutcomeRetry}
}

// AnswerChoice answers multiple-choice question qIdx on the current
// reading slide. Each question locks on its first answer; correctness
// affects feedback only. Answering the last open question completes the
// task and schedules an advance regardless of how many were right.
func (e *Engine) AnswerChoice(qIdx, chosen int) Result {
	slide, q, ok := e.currentQuestion(qIdx)
	if !ok || q.Type == manifest.QuestionSpell {
		return Result{Outcome: OutcomeIgnored}
	}

	e.lockQuestion(qIdx)

	res := Result{Outcome: OutcomeWrong}
	if chosen == q.CorrectIndex {
		res.Outcome = OutcomeCorrect
	} else if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
		// Revealing the correct option on a wrong choice is mandatory.
		res.CorrectAnswer = q.Options[q.CorrectIndex]
	}

	e.finishIfExhausted(slide, &res)
	return res
}

// SubmitSpell answers free-text spelling question qIdx on the current
// reading slide. Empty input is validation feedback, not an answer; any
// non-empty input locks the question.
func (e *Engine) SubmitSpell(qIdx int, input string) Result {
	slide, q, ok := e.currentQuestion(qIdx)
	if !ok || q.Type != manifest.QuestionSpell {
		return Result{Outcome: OutcomeIgnored}
	}

	if !hasText(input) {
		return Result{Outcome: OutcomeInvalid}
	}

	e.lockQuestion(qIdx)

	res := Result{Outcome: OutcomeWrong, CorrectAnswer: q.Answer}
	if problemgen.CheckSpelling(input, q.Answer) {
		res.Outcome = OutcomeCorrect
		res.CorrectAnswer = ""
	}

	e.finishIfExhausted(slide, &res)
	return res
}

// currentQuestion resolves question qIdx on the current reading slide,
// refusing anything already answered.
func (e *Engine) currentQuestion(qIdx int) (Slide, manifest.Question, bool) {
	if e.ignore() {
		return Slide{}, manifest.Question{}, false
	}
	slide, ok := e.Current()
	if !ok || slide.Kind != SlideReading {
		return Slide{}, manifest.Question{}, false
	}
	if qIdx < 0 || qIdx >= len(slide.Questions) || e.IsAnswered(qIdx) {
		return Slide{}, manifest.Question{}, false
	}
	return slide, slide.Questions[qIdx], true
}

// finishIfExhausted completes the reading task and schedules the advance
// once every question on the slide is answered.
func (e *Engine) finishIfExhausted(slide Slide, res *Result) {
	if e.AnsweredCount() >= len(slide.Questions) {
		e.completeTask(slide.Task.ID)
		res.TaskCompleted = true
		res.Advance = &Transition{After: AdvanceAfterReading}
	}
}

func hasText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' {
			return true
		}
	}
	return false
}

// Package quiz implements the slide-deck state machine for a training
// session: it flattens the task manifest into an ordered sequence of
// atomic slides and advances through them as answers come in.
//
// An Engine is a plain value owned by its caller. All transient state —
// slide index, retry counters, solved counts, the outdoor countdown — lives
// on the Engine, so independent sessions (and tests) never interfere.
package quiz

import (
	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/problemgen"
	"github.com/yuchen/eyebright/internal/progress"
)

// SlideKind identifies what a slide presents.
type SlideKind int

const (
	// SlideMath presents a single arithmetic problem.
	SlideMath SlideKind = iota
	// SlideReading presents an article with its ordered question list.
	SlideReading
	// SlideOutdoor presents a countdown timer for an outdoor break.
	SlideOutdoor
)

// Slide is one atomic unit of the quiz deck. Slides are derived from the
// manifest on Open and never persisted.
type Slide struct {
	Kind SlideKind
	Task manifest.Task

	// Math slides: one generated problem out of the task's set.
	Problem      problemgen.Problem
	ProblemIndex int
	ProblemTotal int

	// Reading slides: the article and its full question list. A nil
	// Article means the manifest references an article it doesn't
	// contain; the slide renders as an error placeholder and the deck
	// continues past it.
	Article   *manifest.Article
	Questions []manifest.Question
}

// BuildDeck flattens the manifest into the ordered slide sequence for a
// period ("" means both periods, morning first). Math tasks expand to one
// slide per generated problem; reading and outdoor tasks are one slide
// each. Order is deterministic except for the shuffle inside each math
// task's generated set.
func BuildDeck(m *manifest.Manifest, period progress.Period) []Slide {
	periods := []progress.Period{period}
	if period == "" {
		periods = progress.Periods
	}

	var deck []Slide
	for _, p := range periods {
		section := m.Section(string(p))
		if section == nil {
			continue
		}
		for _, task := range section.Tasks {
			switch task.Type {
			case manifest.TaskMath:
				var cfg problemgen.Counts
				if task.Config != nil {
					cfg = *task.Config
				}
				problems := problemgen.GenerateSet(cfg)
				for i, prob := range problems {
					deck = append(deck, Slide{
						Kind:         SlideMath,
						Task:         task,
						Problem:      prob,
						ProblemIndex: i,
						ProblemTotal: len(problems),
					})
				}
			case manifest.TaskEnglish, manifest.TaskChinese:
				slide := Slide{Kind: SlideReading, Task: task}
				if art := m.Article(task.ArticleID); art != nil {
					slide.Article = art
					slide.Questions = art.Questions()
				}
				deck = append(deck, slide)
			case manifest.TaskOutdoor:
				deck = append(deck, Slide{Kind: SlideOutdoor, Task: task})
			}
		}
	}
	return deck
}

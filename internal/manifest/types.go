// Package manifest loads and validates the daily task manifest: the two
// training periods (morning, evening) with their ordered task lists, plus
// the reading articles the tasks reference. The manifest is read-only
// input; nothing in the app ever writes it back.
package manifest

import "github.com/yuchen/eyebright/internal/problemgen"

// TaskType identifies what kind of training a task is.
type TaskType string

const (
	TaskMath    TaskType = "math"
	TaskEnglish TaskType = "english"
	TaskChinese TaskType = "chinese"
	TaskOutdoor TaskType = "outdoor"
)

// QuestionType identifies a reading question's sub-type.
type QuestionType string

const (
	QuestionComprehension QuestionType = "comprehension"
	QuestionTypo          QuestionType = "typo"
	QuestionVocab         QuestionType = "vocab"
	QuestionGrammar       QuestionType = "grammar"
	QuestionSpell         QuestionType = "spell"
)

// Task is one unit of training content. Exactly one of Config, ArticleID,
// or DurationMinutes is meaningful depending on Type.
type Task struct {
	ID              string             `json:"id"`
	Type            TaskType           `json:"type"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Icon            string             `json:"icon"`
	Config          *problemgen.Counts `json:"config,omitempty"`
	ArticleID       string             `json:"articleId,omitempty"`
	DurationMinutes int                `json:"durationMinutes,omitempty"`
}

// Question is one reading question: multiple choice (Options+CorrectIndex)
// or free-text spelling (Answer). Note, when present, is explanation text
// revealed after the question is answered.
type Question struct {
	Type         QuestionType `json:"type"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options,omitempty"`
	CorrectIndex int          `json:"correctIndex"`
	Answer       string       `json:"answer,omitempty"`
	Note         string       `json:"note,omitempty"`
}

// Article is a reading passage with its primary comprehension question and
// optional extra questions (spelling drills for English, typo hunts for
// Chinese).
type Article struct {
	Title          string     `json:"title"`
	Level          string     `json:"level,omitempty"`
	Content        []string   `json:"content"`
	Question       string     `json:"question"`
	Options        []string   `json:"options"`
	CorrectIndex   int        `json:"correctIndex"`
	Answer         string     `json:"answer,omitempty"`
	ExtraQuestions []Question `json:"extraQuestions,omitempty"`
}

// Questions returns the article's full ordered question list: the primary
// comprehension question first, then any extra questions.
func (a *Article) Questions() []Question {
	qs := make([]Question, 0, 1+len(a.ExtraQuestions))
	qs = append(qs, Question{
		Type:         QuestionComprehension,
		Prompt:       a.Question,
		Options:      a.Options,
		CorrectIndex: a.CorrectIndex,
	})
	qs = append(qs, a.ExtraQuestions...)
	return qs
}

// Section is one training period's label and ordered task list.
type Section struct {
	Label string `json:"label"`
	Tasks []Task `json:"tasks"`
}

// Manifest is the full task manifest.
type Manifest struct {
	Morning  *Section            `json:"morning"`
	Evening  *Section            `json:"evening"`
	Articles map[string]*Article `json:"articles"`
}

// Section returns the named period section, or nil if absent.
func (m *Manifest) Section(period string) *Section {
	switch period {
	case "morning":
		return m.Morning
	case "evening":
		return m.Evening
	}
	return nil
}

// Article returns the article for id, or nil if the manifest doesn't
// contain it.
func (m *Manifest) Article(id string) *Article {
	if m.Articles == nil {
		return nil
	}
	return m.Articles[id]
}

package manifest

import (
	"strings"
	"testing"
)

const sampleManifest = `{
  "morning": {
    "label": "Morning Training",
    "tasks": [
      {
        "id": "math-morning",
        "type": "math",
        "title": "Mental Math",
        "icon": "✏️",
        "config": {"addition": 2, "subtraction": 1, "multiplication": 1, "division": 1}
      },
      {
        "id": "outdoor-morning",
        "type": "outdoor",
        "title": "Outdoor Break",
        "durationMinutes": 20
      }
    ]
  },
  "evening": {
    "label": "Evening Training",
    "tasks": [
      {
        "id": "english-evening",
        "type": "english",
        "title": "English Reading",
        "articleId": "raz-whales"
      }
    ]
  },
  "articles": {
    "raz-whales": {
      "title": "Whales",
      "level": "RAZ Level I",
      "content": ["Whales live in the ocean.", "They are very big."],
      "question": "Where do whales live?",
      "options": ["In the ocean", "In the forest", "In the desert"],
      "correctIndex": 0,
      "extraQuestions": [
        {"type": "spell", "prompt": "Spell the word for 鲸鱼", "answer": "whale"}
      ]
    }
  }
}`

func TestParse_Valid(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Morning == nil || len(m.Morning.Tasks) != 2 {
		t.Fatalf("expected 2 morning tasks, got %+v", m.Morning)
	}
	if m.Morning.Tasks[0].Config.Total() != 5 {
		t.Errorf("math config total = %d, want 5", m.Morning.Tasks[0].Config.Total())
	}
	if m.Morning.Tasks[1].DurationMinutes != 20 {
		t.Errorf("outdoor duration = %d, want 20", m.Morning.Tasks[1].DurationMinutes)
	}

	art := m.Article("raz-whales")
	if art == nil {
		t.Fatal("article raz-whales not found")
	}
	qs := art.Questions()
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].Type != QuestionComprehension {
		t.Errorf("first question type = %s, want comprehension", qs[0].Type)
	}
	if qs[1].Type != QuestionSpell || qs[1].Answer != "whale" {
		t.Errorf("unexpected extra question: %+v", qs[1])
	}
}

func TestParse_MissingArticle(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if art := m.Article("nope"); art != nil {
		t.Errorf("expected nil article, got %+v", art)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"articles": `)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestParse_SchemaViolation(t *testing.T) {
	// Task missing its required id.
	bad := strings.Replace(sampleManifest, `"id": "math-morning",`, "", 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected schema validation error for task without id")
	}

	// Unknown task type.
	bad = strings.Replace(sampleManifest, `"type": "math"`, `"type": "piano"`, 1)
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatal("expected schema validation error for unknown task type")
	}
}

func TestSection(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s := m.Section("morning"); s == nil || s.Label != "Morning Training" {
		t.Errorf("morning section = %+v", s)
	}
	if s := m.Section("afternoon"); s != nil {
		t.Errorf("expected nil for unknown period, got %+v", s)
	}
}

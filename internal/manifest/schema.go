package manifest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// manifestSchema is the JSON Schema every manifest must satisfy before the
// app will use it. A manifest that parses but fails validation is treated
// the same as a parse failure: fatal for the run.
var manifestSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"morning": map[string]any{"$ref": "#/$defs/section"},
		"evening": map[string]any{"$ref": "#/$defs/section"},
		"articles": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"$ref": "#/$defs/article"},
		},
	},
	"required": []any{"articles"},
	"$defs": map[string]any{
		"section": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"label": map[string]any{"type": "string"},
				"tasks": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/task"},
				},
			},
			"required": []any{"label", "tasks"},
		},
		"task": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "string", "minLength": 1},
				"type":  map[string]any{"enum": []any{"math", "english", "chinese", "outdoor"}},
				"title": map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"icon":        map[string]any{"type": "string"},
				"config": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"addition":       map[string]any{"type": "integer", "minimum": 0},
						"subtraction":    map[string]any{"type": "integer", "minimum": 0},
						"multiplication": map[string]any{"type": "integer", "minimum": 0},
						"division":       map[string]any{"type": "integer", "minimum": 0},
					},
				},
				"articleId":       map[string]any{"type": "string"},
				"durationMinutes": map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"id", "type", "title"},
		},
		"article": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":        map[string]any{"type": "string"},
				"level":        map[string]any{"type": "string"},
				"content":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"question":     map[string]any{"type": "string"},
				"options":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 2},
				"correctIndex": map[string]any{"type": "integer", "minimum": 0},
				"answer":       map[string]any{"type": "string"},
				"extraQuestions": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/question"},
				},
			},
			"required": []any{"title", "content", "question", "options", "correctIndex"},
		},
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":         map[string]any{"enum": []any{"comprehension", "typo", "vocab", "grammar", "spell"}},
				"prompt":       map[string]any{"type": "string"},
				"options":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"correctIndex": map[string]any{"type": "integer", "minimum": 0},
				"answer":       map[string]any{"type": "string"},
				"note":         map[string]any{"type": "string"},
			},
			"required": []any{"type", "prompt"},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validate checks raw manifest JSON against the schema.
func validate(raw []byte) error {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(manifestSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://tasks.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	if compileErr != nil {
		return compileErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

package questiongen

import "github.com/sidverma/skillgap/internal/llm"

// questionProperties is the JSON schema for a single question object.
var questionProperties = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "Scenario-based question text shown to the student",
		},
		"focus_area": map[string]any{
			"type":        "string",
			"description": "The category focus area this question tests",
		},
		"options": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"a": map[string]any{"type": "string"},
				"b": map[string]any{"type": "string"},
				"c": map[string]any{"type": "string"},
				"d": map[string]any{"type": "string"},
			},
			"required":             []any{"a", "b", "c", "d"},
			"additionalProperties": false,
			"description":          "Exactly 4 answer options keyed by label",
		},
		"correct": map[string]any{
			"type":        "string",
			"enum":        []any{"a", "b", "c", "d"},
			"description": "Label of the correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct option is right",
		},
	},
	"required":             []any{"question", "focus_area", "options", "correct", "explanation"},
	"additionalProperties": false,
}

// QuestionSetSchema is the structured-output schema for one category's
// question batch.
var QuestionSetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A set of 5 multiple-choice workplace skill questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"items":    questionProperties,
				"minItems": QuestionsPerCategory,
				"maxItems": QuestionsPerCategory,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

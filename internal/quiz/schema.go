package quiz

import "taskdeck/internal/llm"

// QuestionSchema defines the JSON schema for LLM quiz generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice question about IELTS Writing Task 1",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 answer choices, exactly one of which is correct",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief justification of the correct answer",
			},
		},
		"required":             []any{"question", "options", "correctIndex", "explanation"},
		"additionalProperties": false,
	},
}

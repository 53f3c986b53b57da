package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"taskdeck/internal/llm"
)

const systemPrompt = `You are a quiz master for IELTS Writing Task 1 preparation.

Rules:
- Create a single difficult, high-quality multiple choice question about the given topic.
- Target Band 7.0+ vocabulary or logic.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible confusions, not random values.
- Keep the question punchy and self-contained.
- The explanation should teach the underlying vocabulary or strategy in one or two sentences.`

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Generate produces a single question for the given topic.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	userMsg := fmt.Sprintf(
		"Create 1 difficult, high-quality multiple choice question about IELTS Writing Task 1 regarding: %q.",
		input.Topic,
	)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:         raw.Question,
		Options:      raw.Options,
		CorrectIndex: raw.CorrectIndex,
		Explanation:  raw.Explanation,
	}

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("generated question invalid: %w", err)
	}

	return q, nil
}

package tutor

import (
	"context"

	"taskdeck/internal/llm"
)

// Canned replies shown when the AI is unavailable. The chat keeps
// working; only the content degrades.
const (
	ReplyNoProvider = "API Key missing. Please check configuration."
	ReplyError      = "Connection interrupted. Please check your internet or API key."
	ReplyEmpty      = "I'm analyzing the data... try asking again!"
)

// Responder produces a reply for one chat exchange.
type Responder interface {
	Respond(ctx context.Context, ex Exchange) string
}

// LLMResponder answers through the configured LLM provider. Failures
// degrade to canned replies rather than surfacing errors; the logging
// middleware still records them.
type LLMResponder struct {
	provider  llm.Provider
	maxTokens int
}

// NewLLMResponder creates a responder backed by the given provider.
func NewLLMResponder(p llm.Provider) *LLMResponder {
	return &LLMResponder{provider: p, maxTokens: 2048}
}

func (r *LLMResponder) Respond(ctx context.Context, ex Exchange) string {
	ctx = llm.WithPurpose(ctx, "tutor-chat")

	messages := make([]llm.Message, 0, len(ex.History)+1)
	for _, m := range ex.History {
		role := llm.RoleUser
		if m.Role == RoleModel {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: ex.Prompt})

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      ex.System,
		Messages:    messages,
		MaxTokens:   r.maxTokens,
		Temperature: ex.Temperature,
	})
	if err != nil {
		return ReplyError
	}

	text := string(resp.Content)
	if text == "" {
		return ReplyEmpty
	}
	return text
}

// StaticResponder is used when no LLM provider is configured. It answers
// every exchange with the same canned reply.
type StaticResponder struct {
	Reply string
}

// NewUnconfiguredResponder returns the responder used when no API key
// was discovered.
func NewUnconfiguredResponder() *StaticResponder {
	return &StaticResponder{Reply: ReplyNoProvider}
}

func (r *StaticResponder) Respond(context.Context, Exchange) string {
	return r.Reply
}

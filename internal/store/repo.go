package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose ("" = all)
	Session string // filter award/quiz events by session ID ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request, as read back from the log.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage and call counts for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ModelUsage aggregates token usage and call counts for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AwardEventData captures a single experience award.
type AwardEventData struct {
	SessionID string
	SlideID   int
	Amount    int
	Reason    string
}

// AwardEvent is a recorded award, as read back from the log.
type AwardEvent struct {
	ID        int64
	Timestamp time.Time
	AwardEventData
}

// QuizEventData captures the outcome of a single quiz round.
type QuizEventData struct {
	SessionID string
	Topic     string
	Correct   bool
	TimedOut  bool
	Fallback  bool
}

// QuizStats aggregates quiz round outcomes.
type QuizStats struct {
	Rounds    int
	Correct   int
	TimedOut  int
	Fallbacks int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates usage grouped by model, for cost
	// estimation.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAward records an experience award.
	AppendAward(ctx context.Context, data AwardEventData) error

	// QueryAwards returns award events, newest first.
	QueryAwards(ctx context.Context, opts QueryOpts) ([]AwardEvent, error)

	// AwardTotal returns the total experience awarded, optionally
	// scoped to one session.
	AwardTotal(ctx context.Context, sessionID string) (int, error)

	// AppendQuizRound records the outcome of a quiz round.
	AppendQuizRound(ctx context.Context, data QuizEventData) error

	// QuizTotals aggregates quiz round outcomes across all sessions.
	QuizTotals(ctx context.Context) (QuizStats, error)
}

package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_events", "award_events", "quiz_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "tutor-chat",
		InputTokens:  120,
		OutputTokens: 45,
		LatencyMs:    830,
		Success:      true,
		RequestBody:  "[user]\nhello\n",
		ResponseBody: `{"reply":"hi"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	ev := events[0]
	if ev.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", ev.Provider)
	}
	if ev.Purpose != "tutor-chat" {
		t.Errorf("purpose = %q, want tutor-chat", ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 45 {
		t.Errorf("tokens = %d/%d, want 120/45", ev.InputTokens, ev.OutputTokens)
	}
	if ev.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestQueryLLMEventsFilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "tutor-chat", Success: true,
		}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: false,
		ErrorMessage: "rate limited",
	}); err != nil {
		t.Fatalf("append quiz-gen: %v", err)
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("quiz-gen events = %d, want 1", len(byPurpose))
	}
	if byPurpose[0].Success {
		t.Error("expected failed event")
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited events = %d, want 2", len(limited))
	}
	// Newest first.
	if limited[0].ID <= limited[1].ID {
		t.Errorf("expected descending IDs, got %d then %d", limited[0].ID, limited[1].ID)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "tutor-chat", Success: true,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	ev, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ev.Purpose != "tutor-chat" {
		t.Errorf("purpose = %q, want tutor-chat", ev.Purpose)
	}

	_, err = repo.GetLLMEvent(ctx, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing event error = %v, want ErrNotFound", err)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "quiz-gen", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "quiz-gen", InputTokens: 5, OutputTokens: 5, Success: false},
		{Provider: "mock", Model: "mock", Purpose: "tutor-chat", InputTokens: 100, OutputTokens: 50, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}

	// Ordered by purpose: quiz-gen, tutor-chat.
	qg := usage[0]
	if qg.Purpose != "quiz-gen" || qg.Calls != 2 || qg.Failures != 1 {
		t.Errorf("quiz-gen usage = %+v", qg)
	}
	if qg.InputTokens != 15 || qg.OutputTokens != 25 {
		t.Errorf("quiz-gen tokens = %d/%d, want 15/25", qg.InputTokens, qg.OutputTokens)
	}

	tc := usage[1]
	if tc.Purpose != "tutor-chat" || tc.Calls != 1 || tc.Failures != 0 {
		t.Errorf("tutor-chat usage = %+v", tc)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor-chat", InputTokens: 30, OutputTokens: 40, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "tutor-chat", InputTokens: 1, OutputTokens: 2, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(usage))
	}

	// Ordered by model: gemini-2.5-flash, gpt-4o-mini.
	g := usage[0]
	if g.Model != "gemini-2.5-flash" || g.Calls != 2 || g.InputTokens != 40 || g.OutputTokens != 60 {
		t.Errorf("gemini usage = %+v", g)
	}
	o := usage[1]
	if o.Model != "gpt-4o-mini" || o.Calls != 1 {
		t.Errorf("openai usage = %+v", o)
	}
}

func TestAwardEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	awards := []AwardEventData{
		{SessionID: "s1", SlideID: 0, Amount: 10, Reason: "complete"},
		{SessionID: "s1", SlideID: 5, Amount: 20, Reason: "chart-action"},
		{SessionID: "s2", SlideID: 1, Amount: 50, Reason: "quiz-correct"},
	}
	for i, a := range awards {
		if err := repo.AppendAward(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryAwards(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("awards = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Reason != "quiz-correct" {
		t.Errorf("first reason = %q, want quiz-correct", all[0].Reason)
	}

	s1, err := repo.QueryAwards(ctx, QueryOpts{Session: "s1"})
	if err != nil {
		t.Fatalf("query s1: %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("s1 awards = %d, want 2", len(s1))
	}

	total, err := repo.AwardTotal(ctx, "")
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 80 {
		t.Errorf("total = %d, want 80", total)
	}

	s1Total, err := repo.AwardTotal(ctx, "s1")
	if err != nil {
		t.Fatalf("s1 total: %v", err)
	}
	if s1Total != 30 {
		t.Errorf("s1 total = %d, want 30", s1Total)
	}
}

func TestQuizTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rounds := []QuizEventData{
		{SessionID: "s1", Topic: "Line: Internet Access (2024)", Correct: true},
		{SessionID: "s1", Topic: "Bar: Transport Spend (2023)", Correct: false, TimedOut: true},
		{SessionID: "s1", Topic: "Pie: Energy Sources (2024)", Correct: true, Fallback: true},
	}
	for i, r := range rounds {
		if err := repo.AppendQuizRound(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.QuizTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if stats.Rounds != 3 || stats.Correct != 2 || stats.TimedOut != 1 || stats.Fallbacks != 1 {
		t.Errorf("stats = %+v, want {3 2 1 1}", stats)
	}
}

package quiz

import "testing"

func activeRound(t *testing.T) *Round {
	t.Helper()
	r := NewRound("Line: Internet Access (2024)")
	r.Begin(FallbackQuestion(), true)
	if r.Phase() != PhaseActive {
		t.Fatalf("phase = %v, want PhaseActive", r.Phase())
	}
	return r
}

func TestRoundStartsLoading(t *testing.T) {
	r := NewRound("topic")
	if r.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want PhaseLoading", r.Phase())
	}
	if r.Question() != nil {
		t.Fatal("expected no question while loading")
	}
	if r.SecondsLeft() != RoundSeconds {
		t.Fatalf("seconds = %d, want %d", r.SecondsLeft(), RoundSeconds)
	}
}

func TestBeginActivatesOnce(t *testing.T) {
	r := NewRound("topic")
	first := FallbackQuestion()
	r.Begin(first, true)

	second := &Question{
		Text:         "Which verb implies growth?",
		Options:      []string{"Soared", "Dipped"},
		CorrectIndex: 0,
		Explanation:  "'Soar' means to rise rapidly.",
	}
	r.Begin(second, false)

	if r.Question() != first {
		t.Fatal("expected the first question to win")
	}
	if !r.Fallback() {
		t.Fatal("expected fallback flag from first Begin")
	}
}

func TestChooseCorrect(t *testing.T) {
	r := activeRound(t)

	if !r.Choose(0) {
		t.Fatal("expected choice to be accepted")
	}
	if r.Phase() != PhaseAnswered {
		t.Fatalf("phase = %v, want PhaseAnswered", r.Phase())
	}
	if !r.Correct() {
		t.Fatal("expected correct answer")
	}
	if r.TimedOut() {
		t.Fatal("expected no timeout")
	}
}

func TestChooseIncorrect(t *testing.T) {
	r := activeRound(t)

	if !r.Choose(2) {
		t.Fatal("expected choice to be accepted")
	}
	if r.Correct() {
		t.Fatal("expected incorrect answer")
	}
}

func TestChooseLocksFurtherChoices(t *testing.T) {
	r := activeRound(t)

	r.Choose(2)
	if r.Choose(0) {
		t.Fatal("expected second choice to be rejected")
	}
	if r.Chosen() != 2 {
		t.Fatalf("chosen = %d, want 2", r.Chosen())
	}
}

func TestChooseOutOfRangeIgnored(t *testing.T) {
	r := activeRound(t)

	if r.Choose(-1) {
		t.Fatal("expected negative index rejected")
	}
	if r.Choose(4) {
		t.Fatal("expected index past options rejected")
	}
	if r.Phase() != PhaseActive {
		t.Fatal("expected round still active")
	}
}

func TestChooseWhileLoadingIgnored(t *testing.T) {
	r := NewRound("topic")
	if r.Choose(0) {
		t.Fatal("expected choice rejected while loading")
	}
}

func TestTickCountsDownToTimeout(t *testing.T) {
	r := activeRound(t)

	for i := 0; i < RoundSeconds-1; i++ {
		if r.Tick() {
			t.Fatalf("resolved early at tick %d", i+1)
		}
	}
	if r.SecondsLeft() != 1 {
		t.Fatalf("seconds = %d, want 1", r.SecondsLeft())
	}

	if !r.Tick() {
		t.Fatal("expected final tick to resolve the round")
	}
	if !r.TimedOut() {
		t.Fatal("expected timeout")
	}
	if r.Correct() {
		t.Fatal("timeout must not count as correct")
	}
}

func TestTickAfterAnswerIgnored(t *testing.T) {
	r := activeRound(t)
	r.Choose(1)

	if r.Tick() {
		t.Fatal("expected tick after answer to be a no-op")
	}
}

func TestChooseAfterTimeoutIgnored(t *testing.T) {
	r := activeRound(t)
	for i := 0; i < RoundSeconds; i++ {
		r.Tick()
	}

	if r.Choose(0) {
		t.Fatal("expected late choice rejected after timeout")
	}
	if !r.TimedOut() {
		t.Fatal("expected timeout to stand")
	}
}

func TestTakeOutcomeExactlyOnce(t *testing.T) {
	r := activeRound(t)

	if _, ok := r.TakeOutcome(); ok {
		t.Fatal("expected no outcome before resolution")
	}

	r.Choose(0)

	out, ok := r.TakeOutcome()
	if !ok {
		t.Fatal("expected outcome after resolution")
	}
	if !out.Correct || out.TimedOut {
		t.Fatalf("outcome = %+v, want correct and not timed out", out)
	}
	if !out.Fallback {
		t.Fatal("expected fallback recorded in outcome")
	}
	if out.Topic != "Line: Internet Access (2024)" {
		t.Fatalf("topic = %q", out.Topic)
	}

	if _, ok := r.TakeOutcome(); ok {
		t.Fatal("expected outcome to be consumed exactly once")
	}
}

func TestTimeoutOutcome(t *testing.T) {
	r := activeRound(t)
	for i := 0; i < RoundSeconds; i++ {
		r.Tick()
	}

	out, ok := r.TakeOutcome()
	if !ok {
		t.Fatal("expected outcome after timeout")
	}
	if out.Correct || !out.TimedOut {
		t.Fatalf("outcome = %+v, want timed out and incorrect", out)
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			name: "valid",
			q: Question{
				Text:         "Which verb implies a rapid decrease?",
				Options:      []string{"Plummeted", "Soared"},
				CorrectIndex: 0,
				Explanation:  "'Plummet' means to fall fast.",
			},
		},
		{
			name:    "empty text",
			q:       Question{Options: []string{"a", "b"}, Explanation: "x"},
			wantErr: true,
		},
		{
			name: "too few options",
			q: Question{
				Text: "q", Options: []string{"only"}, Explanation: "x",
			},
			wantErr: true,
		},
		{
			name: "correct index out of range",
			q: Question{
				Text: "q", Options: []string{"a", "b"}, CorrectIndex: 2, Explanation: "x",
			},
			wantErr: true,
		},
		{
			name: "negative correct index",
			q: Question{
				Text: "q", Options: []string{"a", "b"}, CorrectIndex: -1, Explanation: "x",
			},
			wantErr: true,
		},
		{
			name: "missing explanation",
			q: Question{
				Text: "q", Options: []string{"a", "b"}, CorrectIndex: 0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package quiz

// Phase is the lifecycle stage of a quiz round.
type Phase int

const (
	// PhaseLoading means the question is still being generated.
	PhaseLoading Phase = iota

	// PhaseActive means the question is shown and the countdown is running.
	PhaseActive

	// PhaseAnswered means the round is resolved, by choice or by timeout.
	PhaseAnswered
)

// RoundSeconds is the countdown length for an active round.
const RoundSeconds = 20

// ChoiceTimedOut marks a round resolved by the countdown reaching zero.
const ChoiceTimedOut = -1

// Outcome summarizes a resolved round for scoring and logging.
type Outcome struct {
	Topic    string
	Correct  bool
	TimedOut bool
	Fallback bool
}

// Round is the state machine for one quiz encounter. It starts in
// PhaseLoading, activates when a question arrives, and resolves exactly
// once — either by an answer or by the countdown expiring. Ticks are
// driven externally, one per second.
type Round struct {
	topic       string
	phase       Phase
	question    *Question
	fallback    bool
	secondsLeft int
	chosen      int
	outcomeUsed bool
}

// NewRound creates a round in PhaseLoading for the given topic.
func NewRound(topic string) *Round {
	return &Round{
		topic:       topic,
		phase:       PhaseLoading,
		secondsLeft: RoundSeconds,
	}
}

// Begin activates the round with a generated question. fallback records
// that the canned question was used. Calling Begin on a non-loading round
// is ignored; the first question wins.
func (r *Round) Begin(q *Question, fallback bool) {
	if r.phase != PhaseLoading || q == nil {
		return
	}
	r.question = q
	r.fallback = fallback
	r.phase = PhaseActive
	r.secondsLeft = RoundSeconds
}

// Tick advances the countdown by one second. When it reaches zero the
// round resolves as timed out. Returns true if this tick resolved the
// round. Ticks outside PhaseActive are ignored.
func (r *Round) Tick() bool {
	if r.phase != PhaseActive {
		return false
	}
	r.secondsLeft--
	if r.secondsLeft > 0 {
		return false
	}
	r.secondsLeft = 0
	r.chosen = ChoiceTimedOut
	r.phase = PhaseAnswered
	return true
}

// Choose resolves the round with the learner's answer. Returns true if
// the choice was accepted. Choices outside PhaseActive or out of range
// are ignored, so a late keypress after timeout cannot re-resolve.
func (r *Round) Choose(idx int) bool {
	if r.phase != PhaseActive {
		return false
	}
	if idx < 0 || idx >= len(r.question.Options) {
		return false
	}
	r.chosen = idx
	r.phase = PhaseAnswered
	return true
}

// TakeOutcome returns the round's outcome exactly once. Subsequent calls
// and calls before resolution return false, which keeps scoring
// idempotent even if the caller processes the resolution twice.
func (r *Round) TakeOutcome() (Outcome, bool) {
	if r.phase != PhaseAnswered || r.outcomeUsed {
		return Outcome{}, false
	}
	r.outcomeUsed = true
	return Outcome{
		Topic:    r.topic,
		Correct:  r.chosen == r.question.CorrectIndex,
		TimedOut: r.chosen == ChoiceTimedOut,
		Fallback: r.fallback,
	}, true
}

// Phase returns the current lifecycle stage.
func (r *Round) Phase() Phase { return r.phase }

// Question returns the active question, or nil while loading.
func (r *Round) Question() *Question { return r.question }

// SecondsLeft returns the remaining countdown seconds.
func (r *Round) SecondsLeft() int { return r.secondsLeft }

// Chosen returns the learner's choice, ChoiceTimedOut on timeout.
// Only meaningful in PhaseAnswered.
func (r *Round) Chosen() int { return r.chosen }

// Correct reports whether the resolved choice was the right answer.
func (r *Round) Correct() bool {
	return r.phase == PhaseAnswered && r.chosen == r.question.CorrectIndex
}

// TimedOut reports whether the round resolved by countdown expiry.
func (r *Round) TimedOut() bool {
	return r.phase == PhaseAnswered && r.chosen == ChoiceTimedOut
}

// Fallback reports whether the canned question was used.
func (r *Round) Fallback() bool { return r.fallback }

// Topic returns the topic this round was generated for.
func (r *Round) Topic() string { return r.topic }

package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"taskdeck/internal/deck"
	"taskdeck/internal/persona"
	"taskdeck/internal/progression"
	"taskdeck/internal/quiz"
	"taskdeck/internal/store"
	"taskdeck/internal/tutor"
)

// Award amounts mirror the in-app actions that grant experience.
const (
	AwardComplete      = 10
	AwardChartAction   = 20
	AwardQuizCorrect   = 50
	AwardQuizIncorrect = 5
)

// CelebrationDuration is how long the confetti overlay stays up.
const CelebrationDuration = 2 * time.Second

// InitialStreak seeds the day-streak counter for a fresh session.
const InitialStreak = 3

// Orchestrator is the single source of truth for one learning session:
// the active slide, the progression tracker, the persona selection, the
// chat session, and the celebration overlay. Screens read from it and
// route every state change through it.
type Orchestrator struct {
	id      string
	catalog *deck.Catalog
	tracker *progression.Tracker
	chat    *tutor.Session
	events  store.EventRepo

	mode        persona.Mode
	personality persona.Personality
	active      int

	celebrating    bool
	celebrationGen int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEventRepo enables award and quiz event logging.
func WithEventRepo(repo store.EventRepo) Option {
	return func(o *Orchestrator) { o.events = repo }
}

// New creates a session on slide 0 with the default persona
// (Student mode, Ambivert personality) and a seeded streak.
func New(catalog *deck.Catalog, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		id:          uuid.NewString(),
		catalog:     catalog,
		tracker:     progression.NewTracker(InitialStreak),
		chat:        tutor.NewSession(),
		mode:        persona.ModeStudent,
		personality: persona.Ambivert,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.chat.Reset(o.ActiveSlide().Title, o.mode, o.personality)
	return o
}

// ID returns the session identifier used in event logs.
func (o *Orchestrator) ID() string { return o.id }

// Catalog returns the slide deck.
func (o *Orchestrator) Catalog() *deck.Catalog { return o.catalog }

// Tracker returns the progression state.
func (o *Orchestrator) Tracker() *progression.Tracker { return o.tracker }

// Chat returns the tutoring chat session.
func (o *Orchestrator) Chat() *tutor.Session { return o.chat }

// Mode returns the active interaction mode.
func (o *Orchestrator) Mode() persona.Mode { return o.mode }

// Personality returns the active tutor personality.
func (o *Orchestrator) Personality() persona.Personality { return o.personality }

// Profile returns the resolved persona profile for the current selection.
func (o *Orchestrator) Profile() persona.Profile {
	return persona.Lookup(o.mode, o.personality)
}

// ActiveSlideID returns the id of the slide in view.
func (o *Orchestrator) ActiveSlideID() int { return o.active }

// ActiveSlide returns the slide in view.
func (o *Orchestrator) ActiveSlide() deck.Slide {
	s, err := o.catalog.ByID(o.active)
	if err != nil {
		// The active id is only ever set through NavigateTo, so this
		// indicates a corrupted catalog.
		panic(fmt.Sprintf("active slide %d missing: %v", o.active, err))
	}
	return s
}

// NavigateTo switches the view to the given slide. Unknown ids leave the
// session untouched. A successful switch re-seeds the chat for the new
// slide's topic.
func (o *Orchestrator) NavigateTo(id int) error {
	s, err := o.catalog.ByID(id)
	if err != nil {
		return err
	}
	if id == o.active {
		return nil
	}
	o.active = id
	o.chat.Reset(s.Title, o.mode, o.personality)
	return nil
}

// NextSlide advances to the next slide, clamped at the end of the deck.
func (o *Orchestrator) NextSlide() {
	_ = o.NavigateTo(o.catalog.Next(o.active))
}

// PrevSlide steps back to the previous slide, clamped at the start.
func (o *Orchestrator) PrevSlide() {
	_ = o.NavigateTo(o.catalog.Prev(o.active))
}

// ChangeMode switches the interaction mode and re-seeds the chat.
func (o *Orchestrator) ChangeMode(m persona.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("unknown mode %q", m)
	}
	if m == o.mode {
		return nil
	}
	o.mode = m
	o.chat.Reset(o.ActiveSlide().Title, o.mode, o.personality)
	return nil
}

// ChangePersonality switches the tutor personality and re-seeds the chat.
func (o *Orchestrator) ChangePersonality(p persona.Personality) error {
	if !p.Valid() {
		return fmt.Errorf("unknown personality %q", p)
	}
	if p == o.personality {
		return nil
	}
	o.personality = p
	o.chat.Reset(o.ActiveSlide().Title, o.mode, o.personality)
	return nil
}

// CloseQuiz leaves quiz mode and returns to Student mode. It runs
// unconditionally so the learner never gets stuck in the quiz overlay.
func (o *Orchestrator) CloseQuiz() {
	_ = o.ChangeMode(persona.ModeStudent)
}

// CompleteCurrentSlide marks the active slide mastered. Returns the
// celebration generation and whether a celebration started. Repeating a
// slide still grants experience; completion itself is recorded once.
func (o *Orchestrator) CompleteCurrentSlide() (int, bool) {
	return o.award(AwardComplete, "complete")
}

// PerformChartAction rewards interacting with a chart exercise.
func (o *Orchestrator) PerformChartAction() (int, bool) {
	return o.award(AwardChartAction, "chart-action")
}

// ResolveQuiz scores a finished quiz round and logs its outcome.
// Correct answers earn the big reward; wrong or timed-out rounds still
// earn a consolation amount.
func (o *Orchestrator) ResolveQuiz(out quiz.Outcome) (int, bool) {
	reason := "quiz-incorrect"
	amount := AwardQuizIncorrect
	if out.Correct {
		reason = "quiz-correct"
		amount = AwardQuizCorrect
	}

	if o.events != nil {
		err := o.events.AppendQuizRound(context.Background(), store.QuizEventData{
			SessionID: o.id,
			Topic:     out.Topic,
			Correct:   out.Correct,
			TimedOut:  out.TimedOut,
			Fallback:  out.Fallback,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log quiz round: %v\n", err)
		}
	}

	return o.award(amount, reason)
}

// award applies experience and starts a celebration for any positive
// amount. The returned generation lets the caller expire exactly its own
// celebration: a newer award supersedes the running one, and the stale
// timer's EndCelebration becomes a no-op.
func (o *Orchestrator) award(amount int, reason string) (int, bool) {
	celebrate, err := o.tracker.Award(amount, o.active)
	if err != nil {
		return o.celebrationGen, false
	}

	if o.events != nil {
		logErr := o.events.AppendAward(context.Background(), store.AwardEventData{
			SessionID: o.id,
			SlideID:   o.active,
			Amount:    amount,
			Reason:    reason,
		})
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log award: %v\n", logErr)
		}
	}

	if !celebrate {
		return o.celebrationGen, false
	}
	o.celebrating = true
	o.celebrationGen++
	return o.celebrationGen, true
}

// Celebrating reports whether the confetti overlay is up.
func (o *Orchestrator) Celebrating() bool { return o.celebrating }

// CelebrationEndMsg expires the celebration started at Gen. The type is
// shared by every screen driving the orchestrator: the screen stack only
// delivers messages to the top screen, so whichever screen is up when
// the timer fires must be able to route it back to EndCelebration.
type CelebrationEndMsg struct {
	Gen int
}

// EndCelebration clears the overlay if gen is the latest celebration.
// Stale generations are ignored so an earlier award's timer cannot cut a
// newer celebration short.
func (o *Orchestrator) EndCelebration(gen int) bool {
	if gen != o.celebrationGen || !o.celebrating {
		return false
	}
	o.celebrating = false
	return true
}

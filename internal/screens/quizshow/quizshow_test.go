package quizshow

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"taskdeck/internal/deck"
	"taskdeck/internal/quiz"
	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	sess "taskdeck/internal/session"
)

// mockGenerator implements quiz.Generator for testing.
type mockGenerator struct {
	question *quiz.Question
	err      error
}

func (m *mockGenerator) Generate(_ context.Context, _ quiz.GenerateInput) (*quiz.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.question, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion() *quiz.Question {
	return &quiz.Question{
		Text:         "Which trend verb fits a gradual increase?",
		Options:      []string{"Climbed", "Plunged", "Collapsed", "Halved"},
		CorrectIndex: 0,
		Explanation:  "'Climbed' describes a steady upward movement.",
	}
}

func testQuizScreen() (*QuizScreen, *sess.Orchestrator) {
	orch := sess.New(deck.Default())
	s := New(orch, &mockGenerator{question: testQuestion()})
	return s, orch
}

func activate(s *QuizScreen) {
	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Question: testQuestion()})
	if scr.(*QuizScreen).round.Phase() != quiz.PhaseActive {
		panic("round did not activate")
	}
}

func TestQuizScreen_LoadingView(t *testing.T) {
	s, _ := testQuizScreen()
	if s.round.Phase() != quiz.PhaseLoading {
		t.Fatalf("phase = %v, want loading", s.round.Phase())
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}
}

func TestQuizScreen_QuestionReadyActivates(t *testing.T) {
	s, _ := testQuizScreen()
	activate(s)

	if !s.haveQ {
		t.Error("expected multi-choice component to be set up")
	}
	if s.round.SecondsLeft() != quiz.RoundSeconds {
		t.Errorf("seconds = %d, want %d", s.round.SecondsLeft(), quiz.RoundSeconds)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty active view")
	}
}

func TestQuizScreen_CorrectAnswerAwards(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)

	_, cmd := s.Update(keyPress('1'))

	if s.round.Phase() != quiz.PhaseAnswered {
		t.Fatalf("phase = %v, want answered", s.round.Phase())
	}
	if !s.round.Correct() {
		t.Error("expected option 1 to be correct")
	}
	if got := orch.Tracker().XP(); got != sess.AwardQuizCorrect {
		t.Errorf("XP = %d, want %d", got, sess.AwardQuizCorrect)
	}
	if !orch.Tracker().Completed(orch.ActiveSlideID()) {
		t.Error("expected correct quiz answer to complete the slide")
	}
	if !orch.Celebrating() {
		t.Error("expected a celebration")
	}
	if cmd == nil {
		t.Error("expected a celebration timer command")
	}
}

func TestQuizScreen_WrongAnswerConsolation(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)

	s.Update(keyPress('2'))

	if s.round.Correct() {
		t.Error("expected option 2 to be wrong")
	}
	if got := orch.Tracker().XP(); got != sess.AwardQuizIncorrect {
		t.Errorf("XP = %d, want %d", got, sess.AwardQuizIncorrect)
	}
	if orch.Tracker().Completed(orch.ActiveSlideID()) {
		t.Error("consolation award must not complete the slide")
	}
}

func TestQuizScreen_TimeoutResolves(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)

	var scr screen.Screen = s
	for i := 0; i < quiz.RoundSeconds; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}

	qs := scr.(*QuizScreen)
	if qs.round.Phase() != quiz.PhaseAnswered {
		t.Fatalf("phase = %v, want answered after %d ticks", qs.round.Phase(), quiz.RoundSeconds)
	}
	if !qs.round.TimedOut() {
		t.Error("expected a timeout resolution")
	}
	if got := orch.Tracker().XP(); got != sess.AwardQuizIncorrect {
		t.Errorf("XP = %d, want %d", got, sess.AwardQuizIncorrect)
	}
}

func TestQuizScreen_LateChoiceIgnored(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)

	var scr screen.Screen = s
	for i := 0; i < quiz.RoundSeconds; i++ {
		scr, _ = scr.Update(timerTickMsg{})
	}
	scr.Update(keyPress('1'))

	if got := orch.Tracker().XP(); got != sess.AwardQuizIncorrect {
		t.Errorf("XP = %d after late choice, want %d", got, sess.AwardQuizIncorrect)
	}
}

func TestQuizScreen_CloseRevertsToStudentMode(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)
	s.Update(keyPress('1'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on close")
	}
	if orch.Mode().DisplayName() != "Student" {
		t.Errorf("mode = %v, want Student after close", orch.Mode())
	}
	if orch.Celebrating() {
		t.Error("expected celebration to end with the screen")
	}
}

func TestQuizScreen_EscapeAbandonsRound(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if got := orch.Tracker().XP(); got != 0 {
		t.Errorf("XP = %d after abandoning, want 0", got)
	}
}

func TestQuizScreen_GeneratorFailureFallsBack(t *testing.T) {
	orch := sess.New(deck.Default())
	s := New(orch, &mockGenerator{err: errors.New("rate limited")})

	msg := s.generateQuestion()()
	ready, ok := msg.(questionReadyMsg)
	if !ok {
		t.Fatalf("msg = %T, want questionReadyMsg", msg)
	}
	if !ready.Fallback {
		t.Error("expected fallback question on generator failure")
	}
	if ready.Question.Text != quiz.FallbackQuestion().Text {
		t.Errorf("question = %q, want the built-in fallback", ready.Question.Text)
	}
}

func TestQuizScreen_NilGeneratorFallsBack(t *testing.T) {
	orch := sess.New(deck.Default())
	s := New(orch, nil)

	msg := s.generateQuestion()()
	ready := msg.(questionReadyMsg)
	if !ready.Fallback {
		t.Error("expected fallback question with no generator")
	}
}

func TestQuizScreen_CelebrationEnds(t *testing.T) {
	s, orch := testQuizScreen()
	activate(s)
	s.Update(keyPress('1'))

	if !orch.Celebrating() {
		t.Fatal("expected a celebration")
	}
	s.Update(sess.CelebrationEndMsg{Gen: s.celebrationGen})
	if orch.Celebrating() {
		t.Error("expected celebration to end")
	}
}

func TestQuizScreen_ClearsCelebrationStartedBeforeOpen(t *testing.T) {
	// A celebration started on the learn screen can have its timer fire
	// while the quiz screen is on top of the stack. The quiz screen must
	// route the expiry to the orchestrator instead of dropping it.
	s, orch := testQuizScreen()

	gen, celebrate := orch.CompleteCurrentSlide()
	if !celebrate {
		t.Fatal("expected a celebration")
	}

	s.Update(sess.CelebrationEndMsg{Gen: gen})
	if orch.Celebrating() {
		t.Error("celebration stayed up after its timer fired")
	}
}

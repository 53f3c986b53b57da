package quizshow

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"taskdeck/internal/quiz"
	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	sess "taskdeck/internal/session"
	"taskdeck/internal/ui/components"
	"taskdeck/internal/ui/layout"
	"taskdeck/internal/ui/theme"
)

// generateTimeout bounds how long we wait for a generated question
// before falling back to the built-in one.
const generateTimeout = 15 * time.Second

// questionReadyMsg is sent when a question is ready to play.
type questionReadyMsg struct {
	Question *quiz.Question
	Fallback bool
}

// timerTickMsg drives the one-second countdown.
type timerTickMsg time.Time

// QuizScreen runs one timed quiz round for the active slide's topic.
type QuizScreen struct {
	orch      *sess.Orchestrator
	generator quiz.Generator

	round *quiz.Round
	mc    components.MultiChoice
	haveQ bool

	celebrationGen int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the orchestrator's active slide.
// generator may be nil; the built-in question is used instead.
func New(orch *sess.Orchestrator, generator quiz.Generator) *QuizScreen {
	return &QuizScreen{
		orch:      orch,
		generator: generator,
		round:     quiz.NewRound(orch.ActiveSlide().Title),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.generateQuestion(), tickCmd())
}

func (s *QuizScreen) Title() string {
	return "Quiz Show"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.round.Phase() {
	case quiz.PhaseLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Leave quiz"}}
	case quiz.PhaseActive:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Pick"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		s.round.Begin(msg.Question, msg.Fallback)
		if q := s.round.Question(); q != nil {
			s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
			s.haveQ = true
		}
		return s, nil

	case timerTickMsg:
		if s.round.Tick() {
			return s, s.resolve()
		}
		if s.round.Phase() != quiz.PhaseAnswered {
			return s, tickCmd()
		}
		return s, nil

	case sess.CelebrationEndMsg:
		s.orch.EndCelebration(msg.Gen)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.round.Phase() == quiz.PhaseAnswered {
		switch key {
		case "enter", "esc", " ":
			return s, s.close()
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, s.close()

	case "1", "2", "3", "4":
		if s.round.Phase() != quiz.PhaseActive {
			return s, nil
		}
		idx := int(key[0] - '1')
		return s.choose(idx)

	case "enter":
		if s.round.Phase() != quiz.PhaseActive {
			return s, nil
		}
		return s.choose(s.mc.Selected)
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

func (s *QuizScreen) choose(idx int) (screen.Screen, tea.Cmd) {
	if !s.round.Choose(idx) {
		return s, nil
	}
	return s, s.resolve()
}

// resolve scores the finished round exactly once and starts the
// celebration overlay.
func (s *QuizScreen) resolve() tea.Cmd {
	s.mc.Reveal(s.round.Chosen())

	out, ok := s.round.TakeOutcome()
	if !ok {
		return nil
	}

	gen, celebrate := s.orch.ResolveQuiz(out)
	if !celebrate {
		return nil
	}
	s.celebrationGen = gen
	return tea.Tick(sess.CelebrationDuration, func(time.Time) tea.Msg {
		return sess.CelebrationEndMsg{Gen: gen}
	})
}

// close leaves the quiz and returns to student mode. The round's own
// celebration ends with the screen; one started before the quiz opened
// expires on its own timer once the learn screen is back on top.
func (s *QuizScreen) close() tea.Cmd {
	s.orch.CloseQuiz()
	if s.orch.Celebrating() {
		s.orch.EndCelebration(s.celebrationGen)
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// generateQuestion produces the round's question asynchronously. Any
// failure degrades to the built-in question rather than an error state;
// the show must go on.
func (s *QuizScreen) generateQuestion() tea.Cmd {
	generator := s.generator
	topic := s.round.Topic()
	return func() tea.Msg {
		if generator == nil {
			return questionReadyMsg{Question: quiz.FallbackQuestion(), Fallback: true}
		}
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		q, err := generator.Generate(ctx, quiz.GenerateInput{Topic: topic})
		if err != nil {
			return questionReadyMsg{Question: quiz.FallbackQuestion(), Fallback: true}
		}
		return questionReadyMsg{Question: q}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.round.Phase() == quiz.PhaseLoading || !s.haveQ {
		return s.renderLoading(width, height)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Topic: " + s.round.Topic()))
	b.WriteString("\n\n")

	b.WriteString(s.renderTimer(width))
	b.WriteString("\n\n")

	b.WriteString(s.mc.View())

	if s.round.Phase() == quiz.PhaseAnswered {
		b.WriteString("\n")
		b.WriteString(s.renderResult(width))
	}

	content := lipgloss.NewStyle().Width(min(width-8, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderLoading(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("GET READY...") +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Preparing a question on "+s.round.Topic())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderTimer(width int) string {
	secs := s.round.SecondsLeft()

	fill := theme.Success
	if secs <= 5 {
		fill = theme.Error
	} else if secs <= 10 {
		fill = theme.Accent
	}

	bar := components.ProgressBar{
		Label:   fmt.Sprintf("⏱ %2ds", secs),
		Percent: float64(secs) / float64(quiz.RoundSeconds),
		Width:   min(width-8, 72),
		Fill:    fill,
	}
	return bar.View()
}

func (s *QuizScreen) renderResult(width int) string {
	labels := s.orch.Profile().Labels
	q := s.round.Question()

	var b strings.Builder
	switch {
	case s.round.Correct():
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("✓ %s  +%d XP", labels.FeedbackGood, sess.AwardQuizCorrect)))
	case s.round.TimedOut():
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("⏰ Time's up!"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("✗ " + labels.FeedbackBad))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Italic(true).
		Render(q.Explanation))
	b.WriteString("\n\n")

	if s.orch.Celebrating() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("🎉 🎉 🎉"))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press Enter to continue"))

	return b.String()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

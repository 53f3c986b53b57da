package learn

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"taskdeck/internal/deck"
	"taskdeck/internal/persona"
	"taskdeck/internal/quiz"
	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	"taskdeck/internal/screens/quizshow"
	sess "taskdeck/internal/session"
	"taskdeck/internal/tutor"
	"taskdeck/internal/ui/components"
	"taskdeck/internal/ui/layout"
)

// LearnScreen is the main study surface: the slide deck on the left, the
// slide content in the middle, and the tutor chat on the right.
type LearnScreen struct {
	orch      *sess.Orchestrator
	responder tutor.Responder
	generator quiz.Generator

	input       components.TextInput
	chatFocused bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen with injected dependencies. generator may be
// nil; quiz mode then uses the built-in question.
func New(orch *sess.Orchestrator, responder tutor.Responder, generator quiz.Generator) *LearnScreen {
	return &LearnScreen{
		orch:      orch,
		responder: responder,
		generator: generator,
		input:     components.NewTextInput("Ask your tutor...", 500),
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	// Quiz mode selected from the home screen goes straight to the show.
	if s.orch.Mode() == persona.ModeQuiz {
		return tea.Batch(s.input.Init(), s.pushQuiz())
	}
	return s.input.Init()
}

func (s *LearnScreen) Title() string {
	return s.orch.ActiveSlide().Category
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.chatFocused {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Tab", Description: "Back to slides"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Slides"},
		{Key: "C", Description: s.orch.Profile().Labels.CompleteBtn},
	}
	if s.orch.ActiveSlide().Kind == deck.KindChart {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "Analyze chart"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Q", Description: "Quiz"},
		layout.KeyHint{Key: "M", Description: "Mode"},
		layout.KeyHint{Key: "P", Description: "Personality"},
		layout.KeyHint{Key: "Tab", Description: "Chat"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
	return hints
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		s.orch.Chat().Resolve(msg.Epoch, msg.Text)
		return s, nil

	case sess.CelebrationEndMsg:
		s.orch.EndCelebration(msg.Gen)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.chatFocused {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.chatFocused {
		switch key {
		case "tab", "esc":
			s.chatFocused = false
			return s, nil
		case "enter":
			ex, epoch, ok := s.orch.Chat().Send(s.input.Value())
			if !ok {
				return s, nil
			}
			s.input.Reset()
			return s, s.chatCmd(ex, epoch)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab", "/":
		s.chatFocused = true
		return s, nil

	case "left", "h":
		s.orch.PrevSlide()
		return s, nil

	case "right", "l", "n":
		s.orch.NextSlide()
		return s, nil

	case "c":
		gen, celebrate := s.orch.CompleteCurrentSlide()
		if celebrate {
			return s, celebrationCmd(gen)
		}
		return s, nil

	case "a":
		if s.orch.ActiveSlide().Kind != deck.KindChart {
			return s, nil
		}
		gen, celebrate := s.orch.PerformChartAction()
		if celebrate {
			return s, celebrationCmd(gen)
		}
		return s, nil

	case "q":
		if err := s.orch.ChangeMode(persona.ModeQuiz); err != nil {
			return s, nil
		}
		return s, s.pushQuiz()

	case "m":
		return s.cycleMode()

	case "p":
		s.cyclePersonality()
		return s, nil
	}

	return s, nil
}

// cycleMode advances to the next interaction mode. Landing on quiz mode
// launches the quiz show.
func (s *LearnScreen) cycleMode() (screen.Screen, tea.Cmd) {
	modes := persona.AllModes()
	next := modes[0]
	for i, m := range modes {
		if m == s.orch.Mode() {
			next = modes[(i+1)%len(modes)]
			break
		}
	}
	if err := s.orch.ChangeMode(next); err != nil {
		return s, nil
	}
	if next == persona.ModeQuiz {
		return s, s.pushQuiz()
	}
	return s, nil
}

func (s *LearnScreen) cyclePersonality() {
	all := persona.AllPersonalities()
	next := all[0]
	for i, p := range all {
		if p == s.orch.Personality() {
			next = all[(i+1)%len(all)]
			break
		}
	}
	_ = s.orch.ChangePersonality(next)
}

// chatCmd asks the responder for a reply asynchronously. The epoch rides
// along so a reply that arrives after a persona or slide switch is
// dropped instead of landing in the wrong transcript.
func (s *LearnScreen) chatCmd(ex tutor.Exchange, epoch int) tea.Cmd {
	responder := s.responder
	return func() tea.Msg {
		reply := responder.Respond(context.Background(), ex)
		return chatReplyMsg{Epoch: epoch, Text: reply}
	}
}

func (s *LearnScreen) pushQuiz() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizshow.New(s.orch, s.generator)}
	}
}

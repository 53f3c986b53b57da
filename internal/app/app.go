package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"taskdeck/internal/deck"
	"taskdeck/internal/quiz"
	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	"taskdeck/internal/screens/home"
	sess "taskdeck/internal/session"
	"taskdeck/internal/store"
	"taskdeck/internal/tutor"
	"taskdeck/internal/ui/layout"
	"taskdeck/internal/ui/theme"
)

// Options carries the dependencies built at startup. Responder and
// Generator may be nil when no LLM provider is configured; the app then
// runs on canned content.
type Options struct {
	EventRepo store.EventRepo
	Responder tutor.Responder
	Generator quiz.Generator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	orch   *sess.Orchestrator
	width  int
	height int
}

// newAppModel wires the session orchestrator and the home screen.
func newAppModel(opts Options) AppModel {
	var orchOpts []sess.Option
	if opts.EventRepo != nil {
		orchOpts = append(orchOpts, sess.WithEventRepo(opts.EventRepo))
	}
	orch := sess.New(deck.Default(), orchOpts...)

	responder := opts.Responder
	if responder == nil {
		responder = tutor.NewUnconfiguredResponder()
	}

	homeScreen := home.New(orch, responder, opts.Generator, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
		orch:   orch,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	tracker := m.orch.Tracker()
	st := layout.Status{
		XP:     tracker.XP(),
		Level:  tracker.Level(),
		Streak: tracker.Streak(),
		Labels: m.orch.Profile().Labels,
		Accent: theme.PersonaAccent(m.orch.Personality()),
	}
	header := layout.RenderHeader(title, st, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

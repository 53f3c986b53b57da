package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"taskdeck/internal/persona"
	"taskdeck/internal/quiz"
	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	"taskdeck/internal/screens/learn"
	"taskdeck/internal/screens/stats"
	sess "taskdeck/internal/session"
	"taskdeck/internal/store"
	"taskdeck/internal/tutor"
	"taskdeck/internal/ui/components"
	"taskdeck/internal/ui/layout"
	"taskdeck/internal/ui/theme"
)

// cycleModeMsg advances the interaction mode selector.
type cycleModeMsg struct{}

// cyclePersonalityMsg advances the tutor personality selector.
type cyclePersonalityMsg struct{}

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	orch      *sess.Orchestrator
	responder tutor.Responder
	generator quiz.Generator
	events    store.EventRepo

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with injected dependencies. generator and
// events may be nil; the app then runs with canned content and no log.
func New(orch *sess.Orchestrator, responder tutor.Responder, generator quiz.Generator, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		orch:      orch,
		responder: responder,
		generator: generator,
		events:    events,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Start Learning", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: learn.New(h.orch, h.responder, h.generator),
				}
			}
		}},
		{Label: fmt.Sprintf("Interaction Mode   ‹ %s ›", h.orch.Mode().DisplayName()), Action: func() tea.Cmd {
			return func() tea.Msg { return cycleModeMsg{} }
		}},
		{Label: fmt.Sprintf("Tutor Personality  ‹ %s ›", h.orch.Personality().DisplayName()), Action: func() tea.Cmd {
			return func() tea.Msg { return cyclePersonalityMsg{} }
		}},
		{Label: "Progress", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(h.orch, h.events)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// rebuildMenu refreshes the selector labels without losing the cursor.
func (h *HomeScreen) rebuildMenu() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	h.menu.Selected = selected
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case cycleModeMsg:
		modes := persona.AllModes()
		for i, m := range modes {
			if m == h.orch.Mode() {
				_ = h.orch.ChangeMode(modes[(i+1)%len(modes)])
				break
			}
		}
		h.rebuildMenu()
		return h, nil

	case cyclePersonalityMsg:
		all := persona.AllPersonalities()
		for i, p := range all {
			if p == h.orch.Personality() {
				_ = h.orch.ChangePersonality(all[(i+1)%len(all)])
				break
			}
		}
		h.rebuildMenu()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	tracker := h.orch.Tracker()
	labels := h.orch.Profile().Labels
	accent := theme.PersonaAccent(h.orch.Personality())

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("T A S K D E C K")

	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("IELTS Writing Task 1 Trainer")

	status := lipgloss.NewStyle().
		Foreground(accent).
		Render(fmt.Sprintf("⚡ %d %s   ◆ %s %d   ★ %d %s",
			tracker.XP(), labels.XP,
			labels.Level, tracker.Level(),
			tracker.Streak(), labels.Streak))

	sections := []string{
		title,
		subtitle,
		"",
		status,
		"",
		h.menu.View(),
	}

	content := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

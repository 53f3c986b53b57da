package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"taskdeck/internal/router"
	"taskdeck/internal/screen"
	sess "taskdeck/internal/session"
	"taskdeck/internal/store"
	"taskdeck/internal/ui/components"
	"taskdeck/internal/ui/layout"
	"taskdeck/internal/ui/theme"
)

// StatsScreen shows the session's progression next to the all-time
// totals from the event log.
type StatsScreen struct {
	orch *sess.Orchestrator

	lifetimeXP int
	quizStats  store.QuizStats
	recent     []store.AwardEvent
	haveLog    bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen. repo may be nil; all-time numbers are then
// omitted.
func New(orch *sess.Orchestrator, repo store.EventRepo) *StatsScreen {
	s := &StatsScreen{orch: orch}
	if repo == nil {
		return s
	}

	ctx := context.Background()
	total, err := repo.AwardTotal(ctx, "")
	if err != nil {
		return s
	}
	qs, err := repo.QuizTotals(ctx)
	if err != nil {
		return s
	}
	recent, err := repo.QueryAwards(ctx, store.QueryOpts{Limit: 8})
	if err != nil {
		return s
	}

	s.lifetimeXP = total
	s.quizStats = qs
	s.recent = recent
	s.haveLog = true
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	boxW := min(width-8, 64)
	tracker := s.orch.Tracker()
	labels := s.orch.Profile().Labels

	var b strings.Builder

	b.WriteString(sectionTitle("This Session"))
	b.WriteString("\n")
	b.WriteString(statLine(labels.XP, fmt.Sprintf("%d", tracker.XP())))
	b.WriteString(statLine(labels.Level, fmt.Sprintf("%d", tracker.Level())))
	b.WriteString(statLine(labels.Streak, fmt.Sprintf("%d", tracker.Streak())))
	b.WriteString(statLine("Slides completed",
		fmt.Sprintf("%d / %d", tracker.CompletedCount(), s.orch.Catalog().Len())))
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("%s %d", labels.Level, tracker.Level()),
		tracker.LevelProgress(), true, boxW-4)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.haveLog {
		b.WriteString(sectionTitle("All Time"))
		b.WriteString("\n")
		b.WriteString(statLine("Total "+labels.XP, fmt.Sprintf("%d", s.lifetimeXP)))
		b.WriteString(statLine("Quiz rounds", fmt.Sprintf("%d", s.quizStats.Rounds)))
		if s.quizStats.Rounds > 0 {
			b.WriteString(statLine("Quiz accuracy",
				fmt.Sprintf("%d%%", s.quizStats.Correct*100/s.quizStats.Rounds)))
			b.WriteString(statLine("Timed out", fmt.Sprintf("%d", s.quizStats.TimedOut)))
		}
		b.WriteString("\n")

		if len(s.recent) > 0 {
			b.WriteString(sectionTitle("Recent Awards"))
			b.WriteString("\n")
			for _, a := range s.recent {
				line := fmt.Sprintf("%s  %-14s  +%d",
					a.Timestamp.Local().Format("Jan 02 15:04"), a.Reason, a.Amount)
				b.WriteString(lipgloss.NewStyle().
					Foreground(theme.Text).
					Render("  " + line))
				b.WriteString("\n")
			}
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No event log available."))
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Width(boxW).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func sectionTitle(title string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title)
}

func statLine(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label+": ") +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n"
}

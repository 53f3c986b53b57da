package learn

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"taskdeck/internal/deck"
	"taskdeck/internal/tutor"
	"taskdeck/internal/ui/layout"
	"taskdeck/internal/ui/theme"
)

const (
	sidebarWidth = 26
	chatWidth    = 38
)

func (s *LearnScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width)

	chatW := chatWidth
	if compact {
		chatW = 32
	}
	contentW := width - chatW
	if !compact {
		contentW -= sidebarWidth
	}
	if contentW < 20 {
		contentW = 20
	}

	var cols []string
	if !compact {
		cols = append(cols, s.renderSidebar(sidebarWidth, height))
	}
	cols = append(cols, s.renderSlide(contentW, height))
	cols = append(cols, s.renderChat(chatW, height))

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderSidebar lists the deck grouped by category, marking the active
// and completed slides.
func (s *LearnScreen) renderSidebar(width, height int) string {
	catalog := s.orch.Catalog()
	tracker := s.orch.Tracker()
	active := s.orch.ActiveSlideID()

	var b strings.Builder
	for _, cat := range catalog.Categories() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Bold(true).
			Render(strings.ToUpper(cat)))
		b.WriteString("\n")

		for _, slide := range catalog.ByCategory(cat) {
			marker := "  "
			if tracker.Completed(slide.ID) {
				marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
			}
			title := slide.Title
			if lipgloss.Width(title) > width-6 {
				title = title[:width-7] + "…"
			}
			line := marker + title
			if slide.ID == active {
				line = lipgloss.NewStyle().
					Foreground(theme.Primary).
					Bold(true).
					Render("▸ " + line)
			} else {
				line = lipgloss.NewStyle().
					Foreground(theme.Text).
					Render("  " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(b.String())
}

// renderSlide renders the active slide's content by kind.
func (s *LearnScreen) renderSlide(width, height int) string {
	slide := s.orch.ActiveSlide()
	labels := s.orch.Profile().Labels
	inner := width - 4

	var b strings.Builder

	if s.orch.Celebrating() {
		banner := lipgloss.NewStyle().
			Width(inner).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("🎉  " + labels.FeedbackGood + "  🎉")
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(slide.Title))
	b.WriteString("\n")
	status := fmt.Sprintf("Slide %d/%d", slide.ID+1, s.orch.Catalog().Len())
	if s.orch.Tracker().Completed(slide.ID) {
		status += "  ·  completed"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(status))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", inner)))
	b.WriteString("\n\n")

	switch slide.Kind {
	case deck.KindTheory:
		b.WriteString(renderTheory(slide, inner))
	case deck.KindChart:
		b.WriteString(renderChart(slide.Chart, inner))
	case deck.KindProcess:
		b.WriteString(renderProcess(slide, inner))
	case deck.KindMap:
		b.WriteString(renderMap(slide.Map, inner))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("[C] %s   [→] %s", labels.CompleteBtn, labels.NextBtn)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 2).
		Render(b.String())
}

func renderTheory(slide deck.Slide, width int) string {
	var b strings.Builder
	for _, sec := range slide.Sections {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(sec.Heading))
		b.WriteString("\n")
		if sec.Body != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Foreground(theme.Text).
				Render(sec.Body))
			b.WriteString("\n")
		}
		for _, bullet := range sec.Bullets {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Foreground(theme.Text).
				Render("  • " + bullet))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderChart draws the data as horizontal bars, one row per point and
// series. Terminal cells beat axes here.
func renderChart(chart *deck.ChartData, width int) string {
	if chart == nil {
		return ""
	}

	seriesColors := []color.Color{theme.Primary, theme.Secondary, theme.Accent}

	max := 1
	total := 0
	for _, p := range chart.Points {
		for _, v := range []int{p.Value1, p.Value2, p.Value3} {
			if v > max {
				max = v
			}
			total += v
		}
	}

	labelW := 0
	for _, p := range chart.Points {
		if len(p.Label) > labelW {
			labelW = len(p.Label)
		}
	}
	barMax := width - labelW - 10
	if barMax < 8 {
		barMax = 8
	}

	var b strings.Builder

	if len(chart.Series) > 1 {
		var legend []string
		for i, name := range chart.Series {
			if i >= len(seriesColors) {
				break
			}
			legend = append(legend, lipgloss.NewStyle().
				Foreground(seriesColors[i]).
				Render("■ "+name))
		}
		b.WriteString(strings.Join(legend, "   "))
		b.WriteString("\n\n")
	}

	for _, p := range chart.Points {
		values := []int{p.Value1, p.Value2, p.Value3}
		for i := 0; i < len(chart.Series) && i < len(seriesColors); i++ {
			v := values[i]
			label := ""
			if i == 0 {
				label = fmt.Sprintf("%-*s", labelW, p.Label)
			} else {
				label = strings.Repeat(" ", labelW)
			}

			n := v * barMax / max
			if v > 0 && n == 0 {
				n = 1
			}

			suffix := fmt.Sprintf(" %d", v)
			if chart.Kind == deck.ChartPie && total > 0 {
				suffix = fmt.Sprintf(" %d%%", v*100/total)
			}

			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
			b.WriteString(" ")
			b.WriteString(lipgloss.NewStyle().
				Foreground(seriesColors[i]).
				Render(strings.Repeat("█", n)))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(suffix))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProcess(slide deck.Slide, width int) string {
	var b strings.Builder
	for i, step := range slide.Process {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("%d. %s", step.Step, step.Label)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width-3).
			Foreground(theme.Text).
			Render("   " + step.Description))
		b.WriteString("\n")
		if i < len(slide.Process)-1 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ↓"))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderMap(m *deck.MapData, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%d → %d", m.Year1, m.Year2)))
	b.WriteString("\n\n")

	for _, f := range m.Features {
		var mark string
		switch f.Status {
		case "new":
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("＋")
		case "removed":
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("－")
		case "expanded":
			mark = lipgloss.NewStyle().Foreground(theme.Accent).Render("↗")
		default:
			mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("＝")
		}
		line := fmt.Sprintf(" %s  %-20s %s (%s)", mark, f.Name, f.Location, f.Status)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderChat draws the transcript and the input box.
func (s *LearnScreen) renderChat(width, height int) string {
	chat := s.orch.Chat()
	profile := s.orch.Profile()
	inner := width - 4

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.PersonaAccent(profile.Personality)).
		Bold(true).
		Render(fmt.Sprintf("%s · %s",
			profile.Mode.DisplayName(),
			profile.Personality.DisplayName())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", inner)))
	b.WriteString("\n")

	// Keep the tail of the transcript; older messages scroll away.
	messages := chat.Messages()
	maxMessages := 8
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}

	for _, m := range messages {
		var prefix string
		var style lipgloss.Style
		if m.Role == tutor.RoleUser {
			prefix = "You"
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else {
			prefix = "Tutor"
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		b.WriteString(style.Render(prefix))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(inner).
			Foreground(theme.Text).
			Render(m.Text))
		b.WriteString("\n\n")
	}

	if chat.Pending() {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("typing..."))
		b.WriteString("\n")
	}

	inputBorder := theme.Border
	if s.chatFocused {
		inputBorder = theme.Primary
	}
	inputBox := lipgloss.NewStyle().
		Width(inner).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(inputBorder).
		Render(s.input.View())

	body := lipgloss.NewStyle().
		Height(height - lipgloss.Height(inputBox) - 1).
		Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Render(body + "\n" + inputBox)
}

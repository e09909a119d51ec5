package tracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/mastery/internal/timeutil"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	skill     lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("#B0DB43")
	hint := lipgloss.Color("#767676")

	if !dark {
		accent = lipgloss.Color("#2E7D32")
		hint = lipgloss.Color("#5C5C5C")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Foreground(accent),
		hint:      lipgloss.NewStyle().Foreground(hint),
		skill: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(accent).
			Padding(0, 1).
			MarginRight(1),
	}
}

func (m *Model) timeFormat() string {
	if m.clock24 {
		return "15:04"
	}

	return "03:04 PM"
}

func (m *Model) timerView() string {
	var s strings.Builder

	snap := m.tracker.Snapshot()

	s.WriteString(m.styles.skill.Render(m.skill.Name))

	if snap.Paused {
		s.WriteString(m.styles.secondary.Render("[Paused]"))
	} else {
		s.WriteString(
			m.styles.hint.Render("since " + snap.StartTime.Local().Format(m.timeFormat())),
		)
	}

	total := m.tracker.PriorSeconds() + snap.ElapsedSeconds
	target := m.skill.Target()
	done := float64(total) / timeutil.SecondsInAnHour

	percent := done / target
	if percent > 1 {
		percent = 1
	}

	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(timeutil.FormattedTime(snap.ElapsedSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(percent))
	s.WriteString("\n")
	s.WriteString(m.styles.hint.Render(
		fmt.Sprintf("%.1f of %.0f hours", done, target),
	))
	s.WriteString("\n\n")
	s.WriteString(m.help.View(m.keys))

	return s.String()
}

func (m *Model) View() string {
	if m.summary != nil || m.err != nil {
		return ""
	}

	return m.styles.base.Render(m.timerView())
}

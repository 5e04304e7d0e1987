package parent

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/ui/components"
	"github.com/yuchen/eyebright/internal/ui/theme"
)

const (
	historyWindow = 14
	chartWindow   = 7
)

func (p *ParentScreen) View(width, height int) string {
	switch p.phase {
	case phaseGate:
		return p.renderGate(width, "Enter the parent PIN")
	case phaseNewPIN:
		return p.renderGate(width, "Enter a new 4-digit PIN")
	}
	return p.renderDashboard(width)
}

func (p *ParentScreen) renderGate(width int, prompt string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("🔒 " + prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.input.View()))
	if p.gateErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.gateErr))
	}
	return b.String()
}

func (p *ParentScreen) renderDashboard(width int) string {
	now := time.Now()
	history := p.store.History(now, historyWindow)
	streak := p.store.ComputeStreak(now, progress.DefaultStreakLookback)
	todayStars := p.store.StarsForDate(progress.DayKey(now))

	trained := 0
	for _, hd := range history {
		if hd.Record != nil {
			trained++
		}
	}

	var b strings.Builder

	stats := fmt.Sprintf("🔥 Streak: %d day    📅 Trained %d of last %d days    ★ Today: %d",
		streak, trained, historyWindow, todayStars)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(stats))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Last two weeks", trained, historyWindow, min(width-8, 52))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderChart(history)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLog(history)))

	return b.String()
}

// renderChart draws the last 7 days as star bars with morning/evening
// session markers under each day.
func renderChart(history []progress.HistoryDay) string {
	week := history
	if len(week) > chartWindow {
		week = week[len(week)-chartWindow:]
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success)

	var rows []string
	for _, hd := range week {
		label := hd.Day[5:] // MM-DD

		stars := 0
		var am, pm bool
		if hd.Record != nil {
			stars = hd.Record.Stars()
			_, am = hd.Record.Sessions[progress.PeriodMorning]
			_, pm = hd.Record.Sessions[progress.PeriodEvening]
		}

		bar := barStyle.Render(strings.Repeat("★", stars))
		if stars == 0 {
			bar = dimStyle.Render("·")
		}

		marks := " "
		if am {
			marks = doneStyle.Render("🌅")
		}
		if pm {
			marks += doneStyle.Render(" 🌙")
		}

		rows = append(rows, fmt.Sprintf("%s  %-12s %s", dimStyle.Render(label), bar, marks))
	}
	return strings.Join(rows, "\n")
}

// renderLog lists recent finished sessions, newest first.
func renderLog(history []progress.HistoryDay) string {
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var rows []string
	for i := len(history) - 1; i >= 0; i-- {
		hd := history[i]
		if hd.Record == nil {
			continue
		}
		for _, period := range progress.Periods {
			log, ok := hd.Record.Sessions[period]
			if !ok {
				continue
			}
			mins := log.DurationSeconds / 60
			secs := log.DurationSeconds % 60
			rows = append(rows, textStyle.Render(fmt.Sprintf("%s  %-8s  %2dm %02ds  finished %s",
				hd.Day, period, mins, secs, log.CompletedAt.Format("15:04"))))
		}
	}

	if len(rows) == 0 {
		return dimStyle.Render("No sessions recorded yet.")
	}

	header := dimStyle.Render("Recent sessions")
	if len(rows) > 8 {
		rows = rows[:8]
	}
	return header + "\n" + strings.Join(rows, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package quiz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	engine "github.com/yuchen/eyebright/internal/quiz"
	"github.com/yuchen/eyebright/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.startErr != nil {
		return renderStartError(width, s.startErr.Error())
	}
	if s.sessionOver() {
		return s.renderComplete(width)
	}

	slide, ok := s.eng.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderProgressLine(width, slide))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	switch slide.Kind {
	case engine.SlideMath:
		b.WriteString(s.renderMath(width, slide))
	case engine.SlideReading:
		b.WriteString(s.renderReading(width, slide))
	case engine.SlideOutdoor:
		b.WriteString(s.renderOutdoor(width, slide))
	}

	return b.String()
}

// renderProgressLine shows the task title on the left and deck position
// on the right.
func (s *QuizScreen) renderProgressLine(width int, slide engine.Slide) string {
	title := slide.Task.Title
	if slide.Task.Icon != "" {
		title = slide.Task.Icon + " " + title
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + title)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d", s.eng.Index()+1, s.eng.Len()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *QuizScreen) renderMath(width int, slide engine.Slide) string {
	var b strings.Builder

	counter := fmt.Sprintf("Problem %d of %d", slide.ProblemIndex+1, slide.ProblemTotal)
	b.WriteString(centered(width, theme.TextDim, false, counter))
	b.WriteString("\n\n")

	// The problem is laid out vertically, big-print style, the way it
	// would be written on paper.
	lines := []string{
		fmt.Sprintf("%6d", slide.Problem.A),
		fmt.Sprintf("%s %4d", slide.Problem.Kind.Symbol(), slide.Problem.B),
		"──────",
	}
	problemStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, problemStyle.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	switch s.feedback {
	case feedbackInvalid:
		b.WriteString(centered(width, theme.Error, false, "Numbers only!"))
	case feedbackRetry:
		left := engine.MaxRetries - s.eng.Retries()
		b.WriteString(centered(width, theme.Error, true, fmt.Sprintf("Not quite, try again! (%d left)", left)))
	case feedbackCorrect:
		b.WriteString(centered(width, theme.Success, true, "Correct! ⭐"))
	case feedbackReveal:
		b.WriteString(centered(width, theme.Accent, true, fmt.Sprintf("The answer is %s", s.revealed)))
	}

	return b.String()
}

func (s *QuizScreen) renderReading(width int, slide engine.Slide) string {
	if slide.Article == nil {
		msg := fmt.Sprintf("Article %q is missing from today's tasks.", slide.Task.ArticleID)
		return centered(width, theme.Error, false, msg) + "\n\n" +
			centered(width, theme.TextDim, false, "Press Enter to skip this one.")
	}

	var b strings.Builder

	b.WriteString(centered(width, theme.Primary, true, slide.Article.Title))
	b.WriteString("\n\n")

	bodyStyle := lipgloss.NewStyle().
		Width(min(width-8, 66)).
		Foreground(theme.Text)
	for _, para := range slide.Article.Content {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bodyStyle.Render(para)))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, theme.TextDim, false,
		fmt.Sprintf("Question %d of %d", s.qIdx+1, len(slide.Questions))))
	b.WriteString("\n\n")

	if s.qIdx < len(slide.Questions) {
		q := slide.Questions[s.qIdx]
		if q.Type == manifest.QuestionSpell {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(q.Prompt)))
			b.WriteString("\n\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		} else {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		}
	}
	b.WriteString("\n\n")

	switch s.feedback {
	case feedbackInvalid:
		b.WriteString(centered(width, theme.Error, false, "Type an answer first!"))
	case feedbackCorrect:
		b.WriteString(centered(width, theme.Success, true, "Correct! ⭐"))
	case feedbackWrong:
		if s.revealed != "" {
			b.WriteString(centered(width, theme.Error, true, fmt.Sprintf("The answer is: %s", s.revealed)))
		} else {
			b.WriteString(centered(width, theme.Error, true, "Not quite"))
		}
	}
	if s.note != "" && (s.feedback == feedbackCorrect || s.feedback == feedbackWrong) {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.TextDim, false, s.note))
	}

	return b.String()
}

func (s *QuizScreen) renderOutdoor(width int, slide engine.Slide) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Text, true, "Time to rest your eyes!"))
	b.WriteString("\n")
	if slide.Task.Description != "" {
		b.WriteString(centered(width, theme.TextDim, false, slide.Task.Description))
	}
	b.WriteString("\n\n")

	remaining := s.eng.OutdoorRemaining()
	clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
	clockStyle := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, clockStyle.Render(clock)))
	b.WriteString("\n\n")

	if remaining == 0 {
		b.WriteString(centered(width, theme.Success, true, "Great job! Eyes all rested. ⭐"))
	} else {
		b.WriteString(centered(width, theme.TextDim, false, "Look far away, at something green if you can."))
	}

	return b.String()
}

func (s *QuizScreen) renderComplete(width int) string {
	now := time.Now()
	stars := s.store.StarsForDate(progress.DayKey(now))
	streak := s.store.ComputeStreak(now, progress.DefaultStreakLookback)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Accent, true, "🎉 Training complete! 🎉"))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Text, false, fmt.Sprintf("Stars today: %d ★", stars)))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Text, false, fmt.Sprintf("Streak: %d day", streak)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.TextDim, false, "Press any key to go back."))
	return b.String()
}

func renderStartError(width int, msg string) string {
	return "\n\n" +
		centered(width, theme.Error, false, msg) + "\n\n" +
		centered(width, theme.TextDim, false, "Press any key to go back.")
}

// centered renders one line of styled text centered in the width.
func centered(width int, fg color.Color, bold bool, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Bold(bold).
		Render(text)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

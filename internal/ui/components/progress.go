package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yuchen/eyebright/internal/ui/theme"
)

// ProgressBar shows completion over a fixed number of slots (days of a
// window, problems of a set) as a filled bar with a done/total count.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a progress bar. Done is clamped to [0, Total].
func NewProgressBar(label string, done, total, width int) ProgressBar {
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	return ProgressBar{
		Label: label,
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View renders the bar: label, fill, and the done/total count.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	count := fmt.Sprintf("  %d/%d", p.Done, p.Total)

	barWidth := p.Width - lipgloss.Width(b.String()) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Done / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("░", barWidth-filled)))

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(count))

	return b.String()
}

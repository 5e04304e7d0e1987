package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/router"
	"github.com/yuchen/eyebright/internal/screen"
	"github.com/yuchen/eyebright/internal/screens/parent"
	quizscreen "github.com/yuchen/eyebright/internal/screens/quiz"
	"github.com/yuchen/eyebright/internal/tracker"
	"github.com/yuchen/eyebright/internal/ui/components"
	"github.com/yuchen/eyebright/internal/ui/theme"
)

const logo = `
  ___  _  _  ___  ___  ___  ___  ___  _  _  _____
 | __|| \| || __|| _ )| _ \|_ _|/ __|| || ||_   _|
 | _| |  _ || _| | _ \|   / | || (_ ||   _|  | |
 |___||_|\_||___||___/|_|_\|___|\___||_||_|  |_|
`

// HomeScreen is the app's landing screen: start a training session,
// open the parent dashboard, or quit.
type HomeScreen struct {
	m     *manifest.Manifest
	store *progress.Store
	tr    *tracker.Tracker
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(m *manifest.Manifest, store *progress.Store, tr *tracker.Tracker) *HomeScreen {
	h := &HomeScreen{m: m, store: store, tr: tr}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

// buildItems assembles the menu with today's completion state baked into
// the labels.
func (h *HomeScreen) buildItems() []components.MenuItem {
	day := progress.DayKey(time.Now())

	items := make([]components.MenuItem, 0, 4)
	for _, p := range progress.Periods {
		p := p
		label := periodLabel(p)
		done := h.store.IsSessionDone(day, p)
		if done {
			label += "  ✓ done"
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: done,
			Action: func() tea.Cmd {
				return router.Push(quizscreen.New(h.m, p, h.store, h.tr))
			},
		})
	}

	items = append(items, components.MenuItem{
		Label: "Parent Dashboard",
		Action: func() tea.Cmd {
			return router.Push(parent.New(h.store))
		},
	})
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

// refresh rebuilds the menu so done-markers picked up from a finished
// session show without restarting the app. The selection survives when
// it is still selectable.
func (h *HomeScreen) refresh() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		h.refresh()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(logo))

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Daily eye-care training"))

	now := time.Now()
	stars := h.store.StarsForDate(progress.DayKey(now))
	streak := h.store.ComputeStreak(now, progress.DefaultStreakLookback)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("★ %d today   🔥 %d day streak", stars, streak)))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func periodLabel(p progress.Period) string {
	switch p {
	case progress.PeriodMorning:
		return "🌅 Morning Training"
	case progress.PeriodEvening:
		return "🌙 Evening Training"
	}
	return string(p)
}

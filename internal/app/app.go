package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/router"
	"github.com/yuchen/eyebright/internal/screen"
	"github.com/yuchen/eyebright/internal/screens/home"
	quizscreen "github.com/yuchen/eyebright/internal/screens/quiz"
	"github.com/yuchen/eyebright/internal/tracker"
	"github.com/yuchen/eyebright/internal/ui/layout"
)

// AppModel is the root Bubble Tea model: the screen router framed by the
// header (stars, streak) and footer (key hints).
type AppModel struct {
	store  *progress.Store
	router *router.Router

	stars  int
	streak int
	width  int
	height int
}

// newAppModel creates the model with the given root screen.
func newAppModel(store *progress.Store, root screen.Screen) AppModel {
	m := AppModel{
		store:  store,
		router: router.New(root),
	}
	m.refreshStats()
	return m
}

// refreshStats re-reads the header counters from the store.
func (m *AppModel) refreshStats() {
	now := time.Now()
	m.stars = m.store.StarsForDate(progress.DayKey(now))
	m.streak = m.store.ComputeStreak(now, progress.DefaultStreakLookback)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatsChangedMsg:
		m.refreshStats()
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

	header := layout.RenderHeader(title, m.stars, m.streak, m.width)

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

// Run starts the full app at the home screen.
func Run(m *manifest.Manifest, store *progress.Store, tr *tracker.Tracker) error {
	return RunScreen(store, home.New(m, store, tr))
}

// RunSession starts the app directly inside one period's training
// session, skipping the home menu.
func RunSession(m *manifest.Manifest, period progress.Period, store *progress.Store, tr *tracker.Tracker) error {
	return RunScreen(store, quizscreen.New(m, period, store, tr))
}

// RunScreen starts the app with an arbitrary root screen.
func RunScreen(store *progress.Store, root screen.Screen) error {
	p := tea.NewProgram(newAppModel(store, root))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package parent

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/router"
	"github.com/yuchen/eyebright/internal/screen"
	"github.com/yuchen/eyebright/internal/ui/components"
	"github.com/yuchen/eyebright/internal/ui/layout"
)

// phase is the dashboard's gate state.
type phase int

const (
	phaseGate phase = iota
	phaseDash
	phaseNewPIN
)

// ParentScreen is the PIN-gated parent dashboard: streak, training
// history, and session logs. Nothing here is writable except the PIN.
type ParentScreen struct {
	store *progress.Store

	phase   phase
	input   components.TextInput
	gateErr string
}

var _ screen.Screen = (*ParentScreen)(nil)
var _ screen.KeyHintProvider = (*ParentScreen)(nil)

// New creates the screen in its locked state.
func New(store *progress.Store) *ParentScreen {
	return &ParentScreen{
		store: store,
		phase: phaseGate,
		input: newPINInput(),
	}
}

func newPINInput() components.TextInput {
	ti := components.NewTextInput("····", true, 4)
	ti.Model.EchoMode = textinput.EchoPassword
	return ti
}

func (p *ParentScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *ParentScreen) Title() string {
	return "Parent Dashboard"
}

func (p *ParentScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseGate:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseNewPIN:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "C", Description: "Change PIN"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ParentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	key := kmsg.String()

	switch p.phase {
	case phaseGate:
		switch key {
		case "esc":
			return p, router.Pop()
		case "enter":
			if p.input.Value() == p.store.PIN() {
				p.phase = phaseDash
				p.gateErr = ""
				return p, nil
			}
			p.gateErr = "Wrong PIN, try again."
			p.input = newPINInput()
			return p, p.input.Init()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd

	case phaseNewPIN:
		switch key {
		case "esc":
			p.phase = phaseDash
			p.gateErr = ""
			return p, nil
		case "enter":
			if err := p.store.SetPIN(p.input.Value()); err != nil {
				p.gateErr = err.Error()
				return p, nil
			}
			p.phase = phaseDash
			p.gateErr = ""
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	// Dashboard.
	switch key {
	case "esc", "q":
		return p, router.Pop()
	case "c", "C":
		p.phase = phaseNewPIN
		p.gateErr = ""
		p.input = newPINInput()
		return p, p.input.Init()
	}
	return p, nil
}

package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/yuchen/eyebright/internal/screen"
)

// PushScreenMsg pushes a new screen onto the navigation stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg pops the current screen off the stack.
type PopScreenMsg struct{}

// Push returns a command that pushes the given screen.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return PushScreenMsg{Screen: s}
	}
}

// Pop returns a command that pops the current screen.
func Pop() tea.Cmd {
	return func() tea.Msg {
		return PopScreenMsg{}
	}
}

// Router manages a stack of screens. The top of the stack is the
// active screen; only it receives messages.
type Router struct {
	stack []screen.Screen
}

// New creates a router with the given root screen.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Active returns the current (top) screen, or nil if the stack is empty.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes a message to the active screen, handling push/pop
// messages itself.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case PopScreenMsg:
		top := r.stack[len(r.stack)-1]
		if c, ok := top.(screen.Closer); ok {
			c.Close()
		}
		// Popping the last screen quits the program (a session started
		// straight from the command line has nothing underneath it).
		if len(r.stack) == 1 {
			return tea.Quit
		}
		r.stack = r.stack[:len(r.stack)-1]
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

// Package timer operates the tally stopwatch in the terminal. It turns key
// presses and ticks into machine intents and renders the machine's state.
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/tally/internal/machine"
)

const (
	padding   = 2
	maxWidth  = 80
	charLimit = 256
)

// tickMsg is delivered once per machine.Resolution while the stopwatch runs.
// Ticks carrying an old id belong to a cancelled subscription.
type tickMsg struct {
	id int
}

// Timer is the bubbletea model for the stopwatch screens.
type Timer struct {
	machine       *machine.Machine
	err           error
	help          help.Model
	style         Style
	taskInput     textinput.Model
	settingsInput textinput.Model
	tickID        int
	ticking       bool
}

// New returns a model driving m.
func New(m *machine.Machine, style Style) *Timer {
	task := textinput.New()
	task.Placeholder = "What did you work on?"
	task.CharLimit = charLimit
	task.Width = maxWidth - padding*2
	task.Prompt = "> "

	path := textinput.New()
	path.Placeholder = "records file path"
	path.CharLimit = charLimit
	path.Width = maxWidth - padding*2
	path.Prompt = "> "

	return &Timer{
		machine:       m,
		help:          help.New(),
		style:         style,
		taskInput:     task,
		settingsInput: path,
	}
}

// Err returns the error that stopped the program, if any.
func (t *Timer) Err() error {
	return t.err
}

func (t *Timer) Init() tea.Cmd {
	return t.syncTicks()
}

// syncTicks starts or cancels the tick subscription so that it matches the
// machine's current state.
func (t *Timer) syncTicks() tea.Cmd {
	src, ok := machine.ActiveSubscription(t.machine.State())

	switch {
	case ok && !t.ticking:
		t.tickID++
		t.ticking = true

		return t.tick(src)
	case !ok && t.ticking:
		t.tickID++
		t.ticking = false
	}

	return nil
}

func (t *Timer) tick(src machine.TickSource) tea.Cmd {
	id := t.tickID

	return tea.Tick(src.Interval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

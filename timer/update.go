package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tally/internal/machine"
)

// dispatch hands intent to the machine and brings the inputs and the tick
// subscription in line with the resulting state.
func (t *Timer) dispatch(intent machine.Intent) (tea.Model, tea.Cmd) {
	slog.Debug("dispatching intent", slog.String("intent", spew.Sdump(intent)))

	from := t.machine.State()

	err := t.machine.Handle(intent)
	if err != nil {
		t.err = err

		return t, tea.Quit
	}

	if t.machine.Quitting() {
		return t, tea.Quit
	}

	to := t.machine.State()

	var cmds []tea.Cmd

	if from != to {
		cmds = append(cmds, t.enter(to))
	}

	cmds = append(cmds, t.syncTicks())

	return t, tea.Batch(cmds...)
}

// enter prepares the input belonging to state s.
func (t *Timer) enter(s machine.State) tea.Cmd {
	t.taskInput.Blur()
	t.settingsInput.Blur()

	switch s {
	case machine.StateFinished:
		t.taskInput.Reset()

		return t.taskInput.Focus()
	case machine.StateSettings:
		t.settingsInput.SetValue(t.machine.SettingsInput())
		t.settingsInput.CursorEnd()

		return t.settingsInput.Focus()
	}

	return nil
}

func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.id != t.tickID || !t.ticking {
		return t, nil
	}

	model, cmd := t.dispatch(machine.Tick{})

	// still the same subscription, so schedule the next tick
	if t.err == nil && t.ticking && msg.id == t.tickID {
		src, _ := machine.ActiveSubscription(t.machine.State())
		cmd = tea.Batch(cmd, t.tick(src))
	}

	return model, cmd
}

func (t *Timer) handleStopwatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t.dispatch(machine.Quit{})
	case key.Matches(msg, defaultKeymap.startStop):
		return t.dispatch(machine.StartStop{})
	case key.Matches(msg, defaultKeymap.reset):
		return t.dispatch(machine.Reset{})
	case key.Matches(msg, defaultKeymap.record):
		return t.dispatch(machine.Record{})
	case key.Matches(msg, defaultKeymap.settings):
		return t.dispatch(machine.OpenSettings{})
	}

	return t, nil
}

func (t *Timer) handleTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.forceQuit):
		return t.dispatch(machine.Quit{})
	case key.Matches(msg, defaultKeymap.submit):
		return t.dispatch(machine.Save{Task: t.taskInput.Value()})
	case key.Matches(msg, defaultKeymap.cancel):
		return t.dispatch(machine.Cancel{})
	}

	var cmd tea.Cmd
	t.taskInput, cmd = t.taskInput.Update(msg)

	return t, cmd
}

func (t *Timer) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.forceQuit):
		return t.dispatch(machine.Quit{})
	case key.Matches(msg, defaultKeymap.submit):
		return t.dispatch(machine.ChangeSettings{Path: t.settingsInput.Value()})
	case key.Matches(msg, defaultKeymap.cancel):
		return t.dispatch(machine.Cancel{})
	}

	var cmd tea.Cmd
	t.settingsInput, cmd = t.settingsInput.Update(msg)

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		switch t.machine.State() {
		case machine.StateFinished:
			return t.handleTaskKey(msg)
		case machine.StateSettings:
			return t.handleSettingsKey(msg)
		default:
			return t.handleStopwatchKey(msg)
		}

	case tea.WindowSizeMsg:
		width := msg.Width - padding*2 - 4
		if width > maxWidth {
			width = maxWidth
		}

		t.taskInput.Width = width
		t.settingsInput.Width = width
		t.help.Width = width

		return t, nil
	}

	var cmd tea.Cmd

	switch t.machine.State() {
	case machine.StateFinished:
		t.taskInput, cmd = t.taskInput.Update(msg)
	case machine.StateSettings:
		t.settingsInput, cmd = t.settingsInput.Update(msg)
	}

	return t, cmd
}

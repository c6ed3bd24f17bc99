package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/tally/internal/machine"
)

func (t *Timer) stopwatchView() string {
	var s strings.Builder

	status := "[Paused]"
	if t.machine.State() == machine.StateRunning {
		status = "[Running]"
	}

	s.WriteString(t.style.Secondary.Render(status))
	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(t.machine.Elapsed()))

	if rec, ok := t.machine.LastSaved(); ok {
		s.WriteString("\n\n")
		s.WriteString(t.style.Hint.Render(
			"saved " + rec.Length + " min to " + rec.Task,
		))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.startStop,
		defaultKeymap.reset,
		defaultKeymap.record,
		defaultKeymap.settings,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) recordView() string {
	var s strings.Builder

	s.WriteString(t.style.Main.Render("Session finished"))
	s.WriteString(t.style.Hint.Render(" (" + t.machine.Elapsed() + ")"))
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.Render("What did you work on?"))
	s.WriteString("\n\n")
	s.WriteString(t.taskInput.View())
	s.WriteString("\n\n" + t.inputHelpView())

	return s.String()
}

func (t *Timer) settingsView() string {
	var s strings.Builder

	s.WriteString(t.style.Main.Render("Settings"))
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.Render("Records file"))
	s.WriteString("\n\n")
	s.WriteString(t.settingsInput.View())
	s.WriteString("\n\n")
	s.WriteString(t.style.Hint.Render(
		"Relative paths start from the settings directory. A new path is used the next time tally starts.",
	))
	s.WriteString("\n\n" + t.inputHelpView())

	return s.String()
}

func (t *Timer) inputHelpView() string {
	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.submit,
		defaultKeymap.cancel,
		defaultKeymap.forceQuit,
	})
}

func (t *Timer) View() string {
	if t.machine.Quitting() {
		return ""
	}

	var view string

	switch t.machine.State() {
	case machine.StateFinished:
		view = t.recordView()
	case machine.StateSettings:
		view = t.settingsView()
	default:
		view = t.stopwatchView()
	}

	return t.style.Base.Render(view)
}

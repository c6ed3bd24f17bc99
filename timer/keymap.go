package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	startStop key.Binding
	reset     key.Binding
	record    key.Binding
	settings  key.Binding
	quit      key.Binding
	submit    key.Binding
	cancel    key.Binding
	forceQuit key.Binding
}

var defaultKeymap = keymap{
	startStop: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("space", "start/stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	record: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "record"),
	),
	settings: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "settings"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

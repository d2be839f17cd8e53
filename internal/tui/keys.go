package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab           key.Binding
	ShiftTab      key.Binding
	Quit          key.Binding
	Help          key.Binding
	Refresh       key.Binding
	Dismiss       key.Binding
	ResetTutorial key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss reminder"),
		),
		ResetTutorial: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "reset tutorial"),
		),
	}
}

package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the playground keybindings.
type keyMap struct {
	Home    key.Binding
	Feed    key.Binding
	Profile key.Binding
	Open    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var defaultKeyMap = keyMap{
	Home: key.NewBinding(
		key.WithKeys("1", "h"),
		key.WithHelp("1", "home tab"),
	),
	Feed: key.NewBinding(
		key.WithKeys("2", "f"),
		key.WithHelp("2", "feed tab"),
	),
	Profile: key.NewBinding(
		key.WithKeys("3", "p"),
		key.WithHelp("3", "profile tab"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "o"),
		key.WithHelp("enter", "open post"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Home, k.Feed, k.Profile, k.Open, k.Back, k.Quit}
}

package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rfhold/brim/internal/toolbar"
)

// appKeyMap defines the application-level keybindings. The toolbar carries
// its own bindings for the overflow menu.
type appKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

var appKeys = appKeyMap{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view
func (k appKeyMap) ShortHelp() []key.Binding {
	bindings := toolbar.Keys.ShortHelp()
	return append(bindings, k.Help, k.Quit)
}

// FullHelp returns keybindings for the full help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	groups := toolbar.Keys.FullHelp()
	return append(groups, []key.Binding{k.Help, k.Quit})
}

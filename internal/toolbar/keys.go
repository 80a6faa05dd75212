package toolbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the toolbar keybindings
type KeyMap struct {
	// Menu navigation
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Escape key.Binding

	// Overflow trigger
	OpenMenu key.Binding
}

// Keys is the default keybinding configuration
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	OpenMenu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "open menu"),
	),
}

// ShortHelp returns keybindings for the short help view
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenMenu, k.Escape}
}

// FullHelp returns keybindings for the full help view
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.OpenMenu, k.Escape},
	}
}

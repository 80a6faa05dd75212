package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/brim/internal/toolbar"
	"github.com/rfhold/brim/internal/ui"
)

// handleKeyPress handles all keyboard events
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open overflow menu owns the keyboard
	if m.ui.Toolbar.MenuOpen() {
		cmd, _ := m.ui.Toolbar.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, appKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, appKeys.Help):
		m.ui.Help.ShowAll = !m.ui.Help.ShowAll
		return m, nil
	}

	// Overflow trigger in collapsed mode
	if cmd, handled := m.ui.Toolbar.Update(msg); handled {
		return m, cmd
	}

	// Direct action keys while the toolbar is expanded
	if m.ui.Toolbar.Mode() == toolbar.ModeExpanded {
		for _, a := range m.deps.Config.Actions {
			if a.Key != "" && msg.String() == a.Key {
				cmd, err := m.ui.Toolbar.Activate(a.ID)
				if err != nil {
					return m, m.ui.Toast.Show(err.Error(), ui.ToastError)
				}
				return m, cmd
			}
		}
	}

	return m, nil
}

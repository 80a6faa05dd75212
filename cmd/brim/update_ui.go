package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSize handles terminal resize events. The toolbar reclassifies
// its layout mode from the new width; everything else just stores sizes.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ui.Width = msg.Width
	m.ui.Height = msg.Height
	m.ui.Toolbar.SetSize(msg.Width, msg.Height)
	m.ui.Help.Width = msg.Width
	return m, nil
}

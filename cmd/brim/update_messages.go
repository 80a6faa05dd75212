package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/brim/internal/toolbar"
	"github.com/rfhold/brim/internal/ui"
)

// handleMessage handles all non-input messages
func (m Model) handleMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toolbar.ActivatedMsg:
		return m.handleActivated(msg.ID)
	case actionResultMsg:
		return m, m.ui.Toast.Show(msg.Info, ui.ToastInfo)
	case actionErrMsg:
		m.deps.Logger.Error("action failed", "action", msg.ID, "error", msg.Err)
		return m, m.ui.Toast.Show(msg.Err.Error(), ui.ToastError)
	case ui.ToastHideMsg:
		m.ui.Toast.Hide()
		return m, nil
	}
	return m, nil
}

// handleActivated runs the application side of an action activation. The
// toolbar has already invoked the action's own handler, if any.
func (m Model) handleActivated(id string) (tea.Model, tea.Cmd) {
	m.deps.Logger.Debug("action activated", "action", id)

	for _, a := range m.deps.Config.Actions {
		if a.ID != id {
			continue
		}
		if a.URL != "" {
			return m, openInBrowser(a.ID, a.URL)
		}
		switch id {
		case "bold", "italic", "underline":
			m.formats[id] = !m.formats[id]
			state := "off"
			if m.formats[id] {
				state = "on"
			}
			return m, m.ui.Toast.Show(fmt.Sprintf("%s %s", a.Label, state), ui.ToastInfo)
		default:
			return m, m.ui.Toast.Show(fmt.Sprintf("%s activated", a.Label), ui.ToastInfo)
		}
	}

	// Plugin-contributed actions carry a "<plugin>." prefix
	if strings.Contains(id, ".") {
		return m, m.invokePlugin(id)
	}

	return m, m.ui.Toast.Show(fmt.Sprintf("unknown action %q", id), ui.ToastError)
}

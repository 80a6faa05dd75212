package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

// invokePlugin dispatches a plugin-contributed action in the background and
// reports the result through the program loop.
func (m Model) invokePlugin(id string) tea.Cmd {
	deps := m.deps
	ctx := m.ctx
	return func() tea.Msg {
		if deps.Plugins == nil {
			return actionErrMsg{ID: id, Err: fmt.Errorf("no plugins loaded")}
		}
		info, err := deps.Plugins.Invoke(ctx, id)
		if err != nil {
			return actionErrMsg{ID: id, Err: err}
		}
		return actionResultMsg{ID: id, Info: info}
	}
}

// openInBrowser opens a URL in the default browser
func openInBrowser(id, url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenURL(url); err != nil {
			return actionErrMsg{ID: id, Err: fmt.Errorf("failed to open browser: %w", err)}
		}
		return actionResultMsg{ID: id, Info: "opened " + url}
	}
}

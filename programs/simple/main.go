// A minimal embedding of the brim toolbar in a Bubble Tea program. Actions
// carry their own handlers; the host model only routes messages.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/brim/internal/toolbar"
)

type savedMsg struct{}

type model struct {
	tb     *toolbar.Toolbar
	status string
	width  int
	height int
}

func newModel() (model, error) {
	reg, err := toolbar.NewRegistry(
		toolbar.Action{ID: "save", Label: "Save", Icon: "S", Handler: func() tea.Msg {
			return savedMsg{}
		}},
		toolbar.Action{ID: "quit", Label: "Quit", Icon: "Q", Handler: func() tea.Msg {
			return tea.Quit()
		}},
	)
	if err != nil {
		return model{}, err
	}

	tb := toolbar.New(reg)
	tb.SetBreakpoint(60)
	return model{tb: tb, status: "ready"}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tb.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd, _ := m.tb.Update(msg)
		return m, cmd
	case savedMsg:
		m.status = "saved"
		return m, nil
	case toolbar.ActivatedMsg:
		m.status = "activated " + msg.ID
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.tb.MenuOpen() {
		return m.tb.MenuView()
	}
	status := toolbar.DimStyle.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, m.tb.View(), status)
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

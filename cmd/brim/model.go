package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/brim/internal/toolbar"
)

// Model is the main application model
type Model struct {
	ctx  context.Context
	deps *Dependencies

	ui *UIState

	// Text format flags toggled by the formatting actions
	formats map[string]bool

	err      error
	quitting bool
}

func initialModel(ctx context.Context, appCtx AppContext, deps *Dependencies) Model {
	m := Model{
		ctx:     ctx,
		deps:    deps,
		formats: make(map[string]bool),
	}

	reg, err := buildRegistry(deps)
	if err != nil {
		m.err = err
		reg, _ = toolbar.NewRegistry()
	}

	tb := toolbar.New(reg)
	if deps.Config.Breakpoint > 0 {
		tb.SetBreakpoint(deps.Config.Breakpoint)
	}
	if deps.Translator != nil {
		tb.SetTranslator(deps.Translator)
	}

	m.ui = NewUIState(tb)
	return m
}

// buildRegistry merges the configured actions with the ones discovered from
// plugins, in that order.
func buildRegistry(deps *Dependencies) (*toolbar.Registry, error) {
	var actions []toolbar.Action
	for _, a := range deps.Config.Actions {
		actions = append(actions, toolbar.Action{
			ID:    a.ID,
			Label: a.Label,
			Icon:  a.Icon,
		})
	}
	if deps.Plugins != nil {
		for _, a := range deps.Plugins.Actions() {
			actions = append(actions, toolbar.Action{
				ID:    a.ID,
				Label: a.Label,
				Icon:  a.Icon,
			})
		}
	}
	return toolbar.NewRegistry(actions...)
}

// Init is a no-op; all state is built up front and the first window size
// message drives the initial layout.
func (m Model) Init() tea.Cmd {
	return nil
}

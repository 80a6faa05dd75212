package main

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/rfhold/brim/internal/toolbar"
	"github.com/rfhold/brim/internal/ui"
)

// UIState holds all UI component state, separate from application state.
type UIState struct {
	// Layout dimensions
	Width  int
	Height int

	// UI Components
	Toolbar *toolbar.Toolbar
	Toast   *ui.Toast
	Help    help.Model
}

// NewUIState creates a new UIState around the given toolbar.
func NewUIState(tb *toolbar.Toolbar) *UIState {
	return &UIState{
		Toolbar: tb,
		Toast:   ui.NewToast(),
		Help:    help.New(),
	}
}

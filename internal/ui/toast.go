package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long the toast is visible
const ToastDuration = 4 * time.Second

// ToastLevel selects the toast styling
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
)

// Toast is a temporary notification message
type Toast struct {
	message string
	level   ToastLevel
	visible bool
}

// ToastHideMsg hides the toast after timeout
type ToastHideMsg struct{}

// NewToast creates a new toast component
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast message and schedules its dismissal
func (t *Toast) Show(message string, level ToastLevel) tea.Cmd {
	t.message = message
	t.level = level
	t.visible = true

	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastHideMsg{}
	})
}

// Hide hides the toast
func (t *Toast) Hide() {
	t.visible = false
	t.message = ""
}

// Visible returns whether the toast is visible
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the current toast text
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast centered in the given width
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 2).
		Bold(true)
	if t.level == ToastError {
		style = style.Foreground(lipgloss.Color("#f7768e"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(t.message))
}

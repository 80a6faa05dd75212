package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestToastShowHide(t *testing.T) {
	toast := NewToast()
	if toast.Visible() {
		t.Error("toast visible at construction")
	}

	cmd := toast.Show("saved", ToastInfo)
	if cmd == nil {
		t.Error("Show returned no hide command")
	}
	if !toast.Visible() {
		t.Error("toast hidden after Show")
	}
	if !strings.Contains(toast.View(40), "saved") {
		t.Errorf("View() missing message: %q", toast.View(40))
	}

	toast.Hide()
	if toast.Visible() {
		t.Error("toast visible after Hide")
	}
	if toast.View(40) != "" {
		t.Errorf("View() after Hide = %q, want empty", toast.View(40))
	}
}

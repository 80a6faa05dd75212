package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/brim/internal/toolbar"
)

const sampleText = `The quick brown fox jumps over the lazy dog.

Resize the terminal below the breakpoint to collapse the toolbar into an
overflow menu; widen it again to bring the inline controls back.`

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ui.Width == 0 {
		// No size yet; the first WindowSizeMsg will trigger a render
		return ""
	}
	if m.err != nil {
		return toolbar.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	// The open overflow menu takes over the screen, like any modal
	if m.ui.Toolbar.MenuOpen() {
		return m.ui.Toolbar.MenuView()
	}

	header := m.renderHeader()
	bar := m.ui.Toolbar.View()
	footer := m.ui.Help.View(appKeys)

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(bar) + lipgloss.Height(footer)
	contentHeight := max(m.ui.Height-chromeHeight-1, 1)

	content := lipgloss.NewStyle().
		Width(m.ui.Width).
		Height(contentHeight).
		Padding(0, 1).
		Render(m.renderContent())

	if m.ui.Toast.Visible() {
		toastLine := m.ui.Toast.View(m.ui.Width)
		return lipgloss.JoinVertical(lipgloss.Left, header, content, toastLine, bar, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, bar, footer)
}

// renderHeader renders the title row with the current layout mode
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(toolbar.ColorPrimary).Render("brim")
	mode := toolbar.DimStyle.Render(fmt.Sprintf("%s · %d cols", m.ui.Toolbar.Mode(), m.ui.Width))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode)
}

// renderContent renders the sample text with the toggled formats applied
func (m Model) renderContent() string {
	style := lipgloss.NewStyle().Foreground(toolbar.ColorText)
	if m.formats["bold"] {
		style = style.Bold(true)
	}
	if m.formats["italic"] {
		style = style.Italic(true)
	}
	if m.formats["underline"] {
		style = style.Underline(true)
	}
	return style.Render(sampleText)
}

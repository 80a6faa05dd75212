package toolbar

import "github.com/charmbracelet/lipgloss"

// Color palette (Tokyo Night)
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorText      = lipgloss.Color("#c0caf5")
	ColorDim       = lipgloss.Color("#565f89")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBg        = lipgloss.Color("#1a1b26")
	ColorAccent    = lipgloss.Color("#7dcfff")
)

// Styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	ButtonIconStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	TriggerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	BarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	MenuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)

// TriggerGlyph is the overflow trigger label shown in collapsed mode.
const TriggerGlyph = "≡"

package toolbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Translator resolves display text for action labels. Implementations are
// injected at construction; the toolbar never consults process-wide state
// for locale resolution.
type Translator interface {
	Translate(key string, args ...any) string
}

// ActivatedMsg is emitted through the program loop when a menu entry or
// inline control is activated.
type ActivatedMsg struct {
	ID string
}

// Toolbar is a responsive action bar. Above the breakpoint every action is
// rendered as an inline control; below it the actions collapse behind a
// single overflow trigger that opens a menu with the same entries in the
// same order.
type Toolbar struct {
	reg        *Registry
	classifier Classifier
	menu       *Menu

	mode   Mode
	width  int
	height int

	translator Translator
	keys       KeyMap
}

// New creates a toolbar over the given registry using the default
// breakpoint. The initial mode is collapsed until the first resize arrives.
func New(reg *Registry) *Toolbar {
	return &Toolbar{
		reg:        reg,
		classifier: NewClassifier(DefaultBreakpoint),
		menu:       NewMenu(reg),
		mode:       ModeCollapsed,
		keys:       Keys,
	}
}

// SetBreakpoint reconfigures the width threshold and reclassifies the
// current width against it.
func (t *Toolbar) SetBreakpoint(breakpoint float64) {
	t.classifier = NewClassifier(breakpoint)
	t.applyWidth(t.width)
}

// SetTranslator injects a translator for label resolution.
func (t *Toolbar) SetTranslator(tr Translator) {
	t.translator = tr
}

// SetSize sets the viewport dimensions. The width drives mode
// classification; the height is used to center the overflow menu overlay.
func (t *Toolbar) SetSize(width, height int) {
	t.height = height
	t.applyWidth(width)
}

// applyWidth reclassifies the mode for a new width. Invalid widths leave
// the previous mode untouched. Entering expanded mode forces the menu
// closed: its trigger is gone, so an open menu must not be observable.
// A resize that keeps the mode unchanged is a no-op.
func (t *Toolbar) applyWidth(width int) {
	mode, err := t.classifier.Classify(float64(width))
	if err != nil {
		return
	}
	t.width = width
	if mode == t.mode {
		return
	}
	t.mode = mode
	if mode == ModeExpanded {
		t.menu.Close()
	}
}

// Mode returns the current layout mode.
func (t *Toolbar) Mode() Mode {
	return t.mode
}

// MenuOpen returns whether the overflow menu is open.
func (t *Toolbar) MenuOpen() bool {
	return t.menu.IsOpen()
}

// Registry returns the toolbar's action registry.
func (t *Toolbar) Registry() *Registry {
	return t.reg
}

// Plan returns the current render plan.
func (t *Toolbar) Plan() RenderPlan {
	return BuildPlan(t.mode, t.reg.Actions())
}

// Activate invokes the action with the given id through the menu
// controller. Works in both modes so applications can bind direct keys to
// inline controls.
func (t *Toolbar) Activate(id string) (tea.Cmd, error) {
	cmd, err := t.menu.Activate(id)
	if err != nil {
		return nil, err
	}
	activated := func() tea.Msg { return ActivatedMsg{ID: id} }
	if cmd == nil {
		return activated, nil
	}
	return tea.Batch(activated, cmd), nil
}

// Update handles key events. It returns true when the event was consumed by
// the toolbar.
func (t *Toolbar) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if t.menu.IsOpen() {
		switch {
		case key.Matches(msg, t.keys.Up):
			t.menu.CursorUp()
			return nil, true
		case key.Matches(msg, t.keys.Down):
			t.menu.CursorDown()
			return nil, true
		case key.Matches(msg, t.keys.Select):
			a, ok := t.reg.At(t.menu.Cursor())
			if !ok {
				return nil, true
			}
			cmd, err := t.Activate(a.ID)
			if err != nil {
				return nil, true
			}
			return cmd, true
		case key.Matches(msg, t.keys.Escape):
			t.menu.Dismiss()
			return nil, true
		}
		// An open menu swallows everything else
		return nil, true
	}

	if t.mode == ModeCollapsed && key.Matches(msg, t.keys.OpenMenu) {
		t.menu.Open()
		return nil, true
	}

	return nil, false
}

// label resolves an action label through the translator when one is set.
func (t *Toolbar) label(raw string) string {
	if t.translator == nil {
		return raw
	}
	return t.translator.Translate(raw)
}

// labelOr resolves a fixed chrome label, falling back to a literal when no
// translator is injected.
func (t *Toolbar) labelOr(key, fallback string) string {
	if t.translator == nil {
		return fallback
	}
	return t.translator.Translate(key)
}

// View renders the bar itself: inline controls when expanded, the overflow
// trigger when collapsed. The open menu is rendered separately by MenuView
// so callers can overlay it.
func (t *Toolbar) View() string {
	plan := t.Plan()

	if plan.TriggerVisible {
		trigger := TriggerStyle.Render(TriggerGlyph + " " + t.labelOr("toolbar.menu", "Menu"))
		hint := DimStyle.Render("m")
		return BarStyle.Width(max(t.width-2, 0)).Render(trigger + " " + hint)
	}

	parts := make([]string, 0, len(plan.Controls))
	for _, c := range plan.Controls {
		if !c.Visible {
			continue
		}
		label := t.label(c.Label)
		if c.Icon != "" {
			label = ButtonIconStyle.Render(c.Icon) + " " + label
		}
		parts = append(parts, ButtonStyle.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return BarStyle.Width(max(t.width-2, 0)).Render(row)
}

// MenuView renders the open overflow menu centered in the viewport. Returns
// an empty string when the menu is closed.
func (t *Toolbar) MenuView() string {
	if !t.menu.IsOpen() {
		return ""
	}

	plan := t.Plan()

	var lines []string
	for i, e := range plan.Entries {
		cursor := "  "
		style := DimStyle
		if i == t.menu.Cursor() {
			cursor = CursorStyle.Render("> ")
			style = ValueStyle
		}
		label := t.label(e.Label)
		if e.Icon != "" {
			label = e.Icon + " " + label
		}
		lines = append(lines, cursor+style.Render(label))
	}

	title := MenuTitleStyle.Render(t.labelOr("toolbar.menu", "Menu"))
	footer := DimStyle.Render("↑/↓ navigate  enter activate  esc dismiss")
	dialog := MenuStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
		"",
		footer,
	))

	return lipgloss.Place(t.width, t.height, lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg),
	)
}

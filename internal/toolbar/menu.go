package toolbar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Menu is the overflow menu controller. It owns the open/closed flag and
// dispatches entry activations against the registry. All transitions are
// synchronous; the menu is only ever mutated from the program's event loop.
type Menu struct {
	reg    *Registry
	open   bool
	cursor int
}

// NewMenu creates a closed menu over the given registry.
func NewMenu(reg *Registry) *Menu {
	return &Menu{reg: reg}
}

// Open opens the menu and resets the cursor to the first entry.
func (m *Menu) Open() {
	m.open = true
	m.cursor = 0
}

// Close closes the menu. Used both for the expanded-mode transition and for
// post-activation cleanup.
func (m *Menu) Close() {
	m.open = false
}

// Dismiss closes the menu without invoking any handler. Outside-dismiss
// events (escape, click-away) route here.
func (m *Menu) Dismiss() {
	m.open = false
}

// IsOpen returns whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Cursor returns the index of the highlighted entry.
func (m *Menu) Cursor() int {
	return m.cursor
}

// CursorUp moves the highlight up one entry.
func (m *Menu) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the highlight down one entry.
func (m *Menu) CursorDown() {
	if m.cursor < m.reg.Len()-1 {
		m.cursor++
	}
}

// Activate invokes the handler of the entry with the given id exactly once,
// synchronously, then closes the menu. The handler's message, if any, is
// returned wrapped as a command for the program loop. Unknown ids fail with
// ErrUnknownAction and leave the menu state untouched.
func (m *Menu) Activate(id string) (tea.Cmd, error) {
	a, ok := m.reg.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}

	m.open = false

	if a.Handler == nil {
		return nil, nil
	}
	msg := a.Handler()
	if msg == nil {
		return nil, nil
	}
	return func() tea.Msg { return msg }, nil
}

// ActivateCursor activates the currently highlighted entry.
func (m *Menu) ActivateCursor() (tea.Cmd, error) {
	a, ok := m.reg.At(m.cursor)
	if !ok {
		return nil, fmt.Errorf("%w: cursor %d", ErrUnknownAction, m.cursor)
	}
	return m.Activate(a.ID)
}

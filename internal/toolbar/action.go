package toolbar

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUnknownAction   = errors.New("unknown toolbar action")
	ErrDuplicateAction = errors.New("duplicate toolbar action")
	ErrEmptyActionID   = errors.New("toolbar action id must not be empty")
)

// Handler runs when an action is activated. It runs synchronously on the
// event loop; long work should be returned to the program as a message and
// dispatched from there.
type Handler func() tea.Msg

// Action is a single toolbar command. It is rendered either as an inline
// control or as an overflow menu entry, never both.
type Action struct {
	// ID uniquely identifies the action within a registry
	ID string
	// Label is the display text (or a translation key when a Translator is set)
	Label string
	// Icon is a symbolic glyph shown before the label
	Icon string
	// Handler is invoked on activation. Optional.
	Handler Handler
}

// Registry holds the fixed, ordered set of actions available to a toolbar.
// Actions are immutable once registered.
type Registry struct {
	actions []Action
	byID    map[string]int
}

// NewRegistry builds a registry from the given actions, preserving order.
func NewRegistry(actions ...Action) (*Registry, error) {
	r := &Registry{
		byID: make(map[string]int, len(actions)),
	}
	for _, a := range actions {
		if err := r.add(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(a Action) error {
	if a.ID == "" {
		return ErrEmptyActionID
	}
	if _, exists := r.byID[a.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.ID)
	}
	r.byID[a.ID] = len(r.actions)
	r.actions = append(r.actions, a)
	return nil
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// Actions returns the actions in registration order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Lookup returns the action with the given id.
func (r *Registry) Lookup(id string) (Action, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Action{}, false
	}
	return r.actions[idx], true
}

// At returns the action at the given position in registration order.
func (r *Registry) At(i int) (Action, bool) {
	if i < 0 || i >= len(r.actions) {
		return Action{}, false
	}
	return r.actions[i], true
}

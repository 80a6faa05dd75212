package plugins

import (
	"context"
	"fmt"
)

// FakeProvider is a Provider test double backed by in-memory actions.
type FakeProvider struct {
	Discovered []DiscoveredAction
	// Invocations records every Invoke call in order
	Invocations []string
	// InvokeErr, when set, is returned from every Invoke
	InvokeErr error
	Closed    bool
}

// Actions returns the configured actions.
func (f *FakeProvider) Actions() []DiscoveredAction {
	return f.Discovered
}

// Invoke records the call and returns a canned message.
func (f *FakeProvider) Invoke(_ context.Context, id string) (string, error) {
	f.Invocations = append(f.Invocations, id)
	if f.InvokeErr != nil {
		return "", f.InvokeErr
	}
	return fmt.Sprintf("invoked %s", id), nil
}

// Close marks the provider closed.
func (f *FakeProvider) Close() {
	f.Closed = true
}

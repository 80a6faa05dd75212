package main

import (
	"context"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/brim/internal/config"
	"github.com/rfhold/brim/internal/plugins"
	"github.com/rfhold/brim/internal/toolbar"
	"github.com/rfhold/brim/internal/ui"
)

// discardWriter is an io.Writer that discards all output
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// newTestDependencies creates a Dependencies struct with fakes for testing.
func newTestDependencies() *Dependencies {
	return &Dependencies{
		Config: &config.Config{
			Breakpoint: 80,
			Actions: []config.ActionConfig{
				{ID: "bold", Label: "Bold", Icon: "B", Key: "b"},
				{ID: "italic", Label: "Italic", Icon: "I", Key: "i"},
				{ID: "docs", Label: "Docs", Key: "d", URL: "https://example.com/docs"},
			},
		},
		Plugins: &plugins.FakeProvider{
			Discovered: []plugins.DiscoveredAction{
				{ID: "wc.count", Label: "Word count", Plugin: "wc"},
			},
		},
		Logger: slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return initialModel(context.Background(), AppContext{WorkDir: t.TempDir()}, newTestDependencies())
}

func resize(m tea.Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func press(m tea.Model, k tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func TestInitialModelMergesConfigAndPluginActions(t *testing.T) {
	m := newTestModel(t)

	if m.err != nil {
		t.Fatalf("unexpected model error: %v", m.err)
	}

	reg := m.ui.Toolbar.Registry()
	want := []string{"bold", "italic", "docs", "wc.count"}
	if reg.Len() != len(want) {
		t.Fatalf("registry has %d actions, want %d", reg.Len(), len(want))
	}
	for i, id := range want {
		a, ok := reg.At(i)
		if !ok || a.ID != id {
			t.Errorf("registry[%d] = %v, want %s", i, a.ID, id)
		}
	}
}

func TestInitialModelReportsDuplicateIDs(t *testing.T) {
	deps := newTestDependencies()
	deps.Plugins = &plugins.FakeProvider{
		Discovered: []plugins.DiscoveredAction{
			{ID: "bold", Label: "Shadowing bold", Plugin: "bad"},
		},
	}

	m := initialModel(context.Background(), AppContext{}, deps)
	if m.err == nil {
		t.Error("model accepted duplicate action ids, want error")
	}
}

func TestResizeDrivesLayoutMode(t *testing.T) {
	m := newTestModel(t)

	m = resize(m, 40, 24)
	if m.ui.Toolbar.Mode() != toolbar.ModeCollapsed {
		t.Errorf("Mode() at 40 cols = %v, want collapsed", m.ui.Toolbar.Mode())
	}

	m = resize(m, 120, 24)
	if m.ui.Toolbar.Mode() != toolbar.ModeExpanded {
		t.Errorf("Mode() at 120 cols = %v, want expanded", m.ui.Toolbar.Mode())
	}
}

func TestMenuFlowOpenSelectInvokesPlugin(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 40, 24)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !m.ui.Toolbar.MenuOpen() {
		t.Fatal("menu closed after trigger key")
	}

	// Move to the plugin entry (4th) and select it
	for i := 0; i < 3; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ui.Toolbar.MenuOpen() {
		t.Error("menu open after selection")
	}
	if cmd == nil {
		t.Fatal("no command from selection")
	}

	// Deliver the activation and run the resulting plugin command
	next, pluginCmd := m.Update(cmd())
	m = next.(Model)
	if pluginCmd == nil {
		t.Fatal("activation of plugin action produced no command")
	}
	pluginCmd()

	fake := m.deps.Plugins.(*plugins.FakeProvider)
	if len(fake.Invocations) != 1 || fake.Invocations[0] != "wc.count" {
		t.Errorf("plugin invocations = %v, want [wc.count]", fake.Invocations)
	}
}

func TestResizeToExpandedClosesOpenMenu(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 40, 24)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})

	m = resize(m, 120, 24)
	if m.ui.Toolbar.MenuOpen() {
		t.Error("menu open after expanding resize")
	}
}

func TestActivatedFormatToggleShowsToast(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 120, 24)

	next, cmd := m.Update(toolbar.ActivatedMsg{ID: "bold"})
	m = next.(Model)
	if !m.formats["bold"] {
		t.Error("bold format not toggled on")
	}
	if cmd == nil {
		t.Fatal("no toast command from format toggle")
	}
	if !m.ui.Toast.Visible() {
		t.Error("toast hidden after format toggle")
	}

	next, _ = m.Update(toolbar.ActivatedMsg{ID: "bold"})
	m = next.(Model)
	if m.formats["bold"] {
		t.Error("bold format not toggled off")
	}
}

func TestDirectKeyActivatesActionWhenExpanded(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 120, 24)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if cmd == nil {
		t.Fatal("direct key produced no command")
	}
	msg := cmd()
	if am, ok := msg.(toolbar.ActivatedMsg); !ok || am.ID != "bold" {
		t.Errorf("cmd() = %v, want ActivatedMsg{bold}", msg)
	}
}

func TestDirectKeyIgnoredWhenCollapsed(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 40, 24)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if cmd != nil {
		t.Error("direct action key handled in collapsed mode")
	}
}

func TestToastHideMessage(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 120, 24)

	next, _ := m.Update(toolbar.ActivatedMsg{ID: "bold"})
	m = next.(Model)
	next, _ = m.Update(ui.ToastHideMsg{})
	m = next.(Model)
	if m.ui.Toast.Visible() {
		t.Error("toast visible after ToastHideMsg")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	m = resize(m, 120, 24)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting {
		t.Error("model not quitting after q")
	}
	if cmd == nil {
		t.Error("no quit command returned")
	}
}

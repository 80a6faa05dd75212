// Package plugins hosts external action-provider plugins. Plugins are
// separate processes declared in the brim config; each contributes toolbar
// actions that the host merges into the registry under a name prefix.
package plugins

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/rfhold/brim/internal/config"
	"github.com/rfhold/brim/pkg/plugin"
)

var ErrUnknownPluginAction = errors.New("action does not belong to a loaded plugin")

// DiscoveredAction is a toolbar action contributed by a plugin. The ID is
// prefixed with the plugin name ("wordcount.count") so separately authored
// plugins cannot collide.
type DiscoveredAction struct {
	ID     string
	Label  string
	Icon   string
	Plugin string
}

// Provider is the host-side view of the loaded plugin set.
type Provider interface {
	// Actions returns every discovered action in stable order
	Actions() []DiscoveredAction
	// Invoke dispatches a prefixed action id to its plugin
	Invoke(ctx context.Context, id string) (string, error)
	// Close shuts down all plugin processes
	Close()
}

type instance struct {
	client   *goplugin.Client
	provider plugin.ActionProvider
}

// Manager loads and owns external plugin processes.
type Manager struct {
	mu        sync.Mutex
	logger    hclog.Logger
	instances map[string]*instance
	actions   []DiscoveredAction
}

// NewManager creates an empty plugin manager.
func NewManager() *Manager {
	return &Manager{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: hclog.DefaultOutput,
			Level:  hclog.Warn,
		}),
		instances: make(map[string]*instance),
	}
}

// Load starts every configured plugin and collects its actions. Plugins are
// loaded in name order so the merged action list is deterministic.
func (m *Manager) Load(ctx context.Context, cfgs map[string]config.PluginConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, inst := range m.instances {
		inst.client.Kill()
	}
	m.instances = make(map[string]*instance)
	m.actions = nil

	names := make([]string, 0, len(cfgs))
	for name := range cfgs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := m.load(ctx, name, cfgs[name]); err != nil {
			return fmt.Errorf("failed to load plugin %s: %w", name, err)
		}
	}
	return nil
}

func (m *Manager) load(ctx context.Context, name string, cfg config.PluginConfig) error {
	cmd := exec.CommandContext(ctx, cfg.Cmd, cfg.Args...) //nolint:gosec // G204: plugin command comes from user config

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: plugin.Handshake,
		Plugins:         plugin.PluginMap,
		Cmd:             cmd,
		Logger:          m.logger,
		AllowedProtocols: []goplugin.Protocol{
			goplugin.ProtocolNetRPC,
		},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return fmt.Errorf("failed to connect: %w", err)
	}

	raw, err := rpcClient.Dispense("actions")
	if err != nil {
		client.Kill()
		return fmt.Errorf("failed to dispense actions interface: %w", err)
	}

	provider, ok := raw.(plugin.ActionProvider)
	if !ok {
		client.Kill()
		return fmt.Errorf("plugin does not implement ActionProvider")
	}

	specs, err := provider.Actions()
	if err != nil {
		client.Kill()
		return fmt.Errorf("failed to list actions: %w", err)
	}

	for _, spec := range specs {
		m.actions = append(m.actions, DiscoveredAction{
			ID:     name + "." + spec.ID,
			Label:  spec.Label,
			Icon:   spec.Icon,
			Plugin: name,
		})
	}

	m.instances[name] = &instance{client: client, provider: provider}
	return nil
}

// Actions returns the discovered actions in load order.
func (m *Manager) Actions() []DiscoveredAction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]DiscoveredAction, len(m.actions))
	copy(out, m.actions)
	return out
}

// Invoke dispatches a prefixed action id to the owning plugin.
func (m *Manager) Invoke(ctx context.Context, id string) (string, error) {
	name, local, found := strings.Cut(id, ".")
	if !found {
		return "", fmt.Errorf("%w: %q", ErrUnknownPluginAction, id)
	}

	m.mu.Lock()
	inst, ok := m.instances[name]
	m.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPluginAction, id)
	}

	type result struct {
		msg string
		err error
	}
	done := make(chan result, 1)
	go func() {
		msg, err := inst.provider.Invoke(local)
		done <- result{msg: msg, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("plugin %s: %w", name, r.err)
		}
		return r.msg, nil
	}
}

// Close shuts down all plugin processes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inst := range m.instances {
		inst.client.Kill()
	}
	m.instances = make(map[string]*instance)
	m.actions = nil
}

// Package plugin provides shared types and helpers for brim plugin authors.
// Plugin authors should import this package and implement the ActionProvider
// interface.
//
// Plugins run as separate processes and communicate over go-plugin's net/rpc
// transport; a plugin binary's main() calls Serve with its implementation.
package plugin

import (
	"fmt"
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"
)

// ActionSpec describes a toolbar action contributed by a plugin.
type ActionSpec struct {
	// ID identifies the action within the plugin; the host prefixes it
	// with the plugin name to keep registries collision-free
	ID string
	// Label is the display text
	Label string
	// Icon is an optional glyph
	Icon string
}

// ActionProvider is the interface plugins must implement.
type ActionProvider interface {
	// Actions returns the toolbar actions this plugin contributes
	Actions() ([]ActionSpec, error)
	// Invoke runs the action with the given (unprefixed) id and returns a
	// short status message for the host to display
	Invoke(id string) (string, error)
}

// Handshake is the handshake config for plugins. Both the host and plugin
// must agree on this configuration.
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "BRIM_PLUGIN",
	MagicCookieValue: "v0",
}

// PluginMap is the map of plugins the host can dispense.
var PluginMap = map[string]goplugin.Plugin{
	"actions": &ActionProviderPlugin{},
}

// Serve starts the plugin server with the given implementation. This should
// be called from the plugin's main() function.
func Serve(impl ActionProvider) {
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			"actions": &ActionProviderPlugin{Impl: impl},
		},
	})
}

// ActionProviderPlugin is the goplugin.Plugin implementation carrying an
// ActionProvider over net/rpc.
type ActionProviderPlugin struct {
	// Impl is the actual plugin implementation (plugin side only)
	Impl ActionProvider
}

// Server returns the RPC server for this plugin (plugin side).
func (p *ActionProviderPlugin) Server(*goplugin.MuxBroker) (any, error) {
	return &RPCServer{Impl: p.Impl}, nil
}

// Client returns the RPC client for this plugin (host side).
func (p *ActionProviderPlugin) Client(_ *goplugin.MuxBroker, c *rpc.Client) (any, error) {
	return &RPCClient{client: c}, nil
}

// InvokeArgs is the wire request for Invoke.
type InvokeArgs struct {
	ID string
}

// InvokeReply is the wire response for Invoke.
type InvokeReply struct {
	Message string
}

// ActionsReply is the wire response for Actions.
type ActionsReply struct {
	Actions []ActionSpec
}

// RPCClient is the host-side ActionProvider backed by the plugin process.
type RPCClient struct {
	client *rpc.Client
}

// Actions calls the plugin's Actions RPC.
func (c *RPCClient) Actions() ([]ActionSpec, error) {
	var reply ActionsReply
	if err := c.client.Call("Plugin.Actions", new(any), &reply); err != nil {
		return nil, fmt.Errorf("plugin actions call failed: %w", err)
	}
	return reply.Actions, nil
}

// Invoke calls the plugin's Invoke RPC.
func (c *RPCClient) Invoke(id string) (string, error) {
	var reply InvokeReply
	if err := c.client.Call("Plugin.Invoke", InvokeArgs{ID: id}, &reply); err != nil {
		return "", fmt.Errorf("plugin invoke call failed: %w", err)
	}
	return reply.Message, nil
}

// RPCServer wraps the actual plugin implementation (plugin side).
type RPCServer struct {
	Impl ActionProvider
}

// Actions handles the Actions RPC.
func (s *RPCServer) Actions(_ *any, reply *ActionsReply) error {
	actions, err := s.Impl.Actions()
	if err != nil {
		return err
	}
	reply.Actions = actions
	return nil
}

// Invoke handles the Invoke RPC.
func (s *RPCServer) Invoke(args InvokeArgs, reply *InvokeReply) error {
	msg, err := s.Impl.Invoke(args.ID)
	if err != nil {
		return err
	}
	reply.Message = msg
	return nil
}

// Package config loads the toolbar definition from brim.toml or brim.yaml
// in the working directory. TOML is preferred; YAML is accepted for projects
// that already carry YAML tooling config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ActionConfig declares a single toolbar action.
type ActionConfig struct {
	// ID uniquely identifies the action
	ID string `toml:"id" yaml:"id"`
	// Label is the display text, or a translation key when a locale is set
	Label string `toml:"label" yaml:"label"`
	// Icon is an optional glyph shown before the label
	Icon string `toml:"icon,omitempty" yaml:"icon,omitempty"`
	// Key is an optional direct keybinding used while the toolbar is expanded
	Key string `toml:"key,omitempty" yaml:"key,omitempty"`
	// URL, when set, makes activation open the URL in the default browser
	URL string `toml:"url,omitempty" yaml:"url,omitempty"`
}

// PluginConfig declares an external action-provider plugin.
type PluginConfig struct {
	// Cmd is the command to run the plugin (path to executable)
	Cmd string `toml:"cmd" yaml:"cmd"`
	// Args are optional arguments to pass to the plugin command
	Args []string `toml:"args,omitempty" yaml:"args,omitempty"`
}

// Config is the full brim configuration.
type Config struct {
	// Breakpoint is the viewport width separating expanded and collapsed
	// layout. Zero means the built-in default.
	Breakpoint float64 `toml:"breakpoint,omitempty" yaml:"breakpoint,omitempty"`
	// Locale selects the translation catalog; empty disables translation
	Locale string `toml:"locale,omitempty" yaml:"locale,omitempty"`

	Actions []ActionConfig          `toml:"actions" yaml:"actions"`
	Plugins map[string]PluginConfig `toml:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Default returns the configuration used when no config file exists: a
// small formatting toolbar.
func Default() *Config {
	return &Config{
		Actions: []ActionConfig{
			{ID: "bold", Label: "Bold", Icon: "B", Key: "b"},
			{ID: "italic", Label: "Italic", Icon: "I", Key: "i"},
			{ID: "underline", Label: "Underline", Icon: "U", Key: "u"},
			{ID: "link", Label: "Link", Icon: "🔗", Key: "l"},
			{ID: "docs", Label: "Docs", Icon: "?", Key: "d", URL: "https://github.com/rfhold/brim"},
		},
	}
}

// Load reads brim.toml (preferred) or brim.yaml / brim.yml from dir. When
// neither exists the default config is returned.
func Load(dir string) (*Config, error) {
	tomlPath := filepath.Join(dir, "brim.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return loadTOML(tomlPath)
	}

	for _, name := range []string{"brim.yaml", "brim.yml"} {
		yamlPath := filepath.Join(dir, name)
		if _, err := os.Stat(yamlPath); err == nil {
			return loadYAML(yamlPath)
		}
	}

	return Default(), nil
}

func loadTOML(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Actions) == 0 {
		return errors.New("at least one action is required")
	}
	seen := make(map[string]bool, len(c.Actions))
	for _, a := range c.Actions {
		if a.ID == "" {
			return errors.New("action id must not be empty")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate action id %q", a.ID)
		}
		seen[a.ID] = true
	}
	for name, p := range c.Plugins {
		if p.Cmd == "" {
			return fmt.Errorf("plugin %s: cmd is required", name)
		}
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.toml", `
breakpoint = 100
locale = "de"

[[actions]]
id = "bold"
label = "Bold"
icon = "B"
key = "b"

[[actions]]
id = "italic"
label = "Italic"

[plugins.wordcount]
cmd = "./wordcount"
args = ["-v"]
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Breakpoint != 100 {
		t.Errorf("Breakpoint = %v, want 100", cfg.Breakpoint)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de", cfg.Locale)
	}
	if len(cfg.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, want 2", len(cfg.Actions))
	}
	if cfg.Actions[0].ID != "bold" || cfg.Actions[1].ID != "italic" {
		t.Errorf("action order = %s, %s", cfg.Actions[0].ID, cfg.Actions[1].ID)
	}
	p, ok := cfg.Plugins["wordcount"]
	if !ok {
		t.Fatal("plugin wordcount missing")
	}
	if p.Cmd != "./wordcount" || len(p.Args) != 1 {
		t.Errorf("plugin config = %+v", p)
	}
}

func TestLoadYAMLFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.yaml", `
breakpoint: 90
actions:
  - id: save
    label: Save
  - id: quit
    label: Quit
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Breakpoint != 90 {
		t.Errorf("Breakpoint = %v, want 90", cfg.Breakpoint)
	}
	if len(cfg.Actions) != 2 {
		t.Errorf("len(Actions) = %d, want 2", len(cfg.Actions))
	}
}

func TestLoadPrefersTOMLOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.toml", `
[[actions]]
id = "from-toml"
label = "TOML"
`)
	writeFile(t, dir, "brim.yaml", `
actions:
  - id: from-yaml
    label: YAML
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Actions[0].ID != "from-toml" {
		t.Errorf("Actions[0].ID = %q, want from-toml", cfg.Actions[0].ID)
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Actions) == 0 {
		t.Error("default config has no actions")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.toml", `
[[actions]]
id = "bold"
label = "Bold"

[[actions]]
id = "bold"
label = "Bold again"
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate action id") {
		t.Errorf("error = %v, want duplicate action id", err)
	}
}

func TestLoadRejectsEmptyActions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.toml", `breakpoint = 100`)

	if _, err := Load(dir); err == nil {
		t.Error("Load succeeded with no actions, want error")
	}
}

func TestLoadRejectsPluginWithoutCmd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "brim.toml", `
[[actions]]
id = "bold"
label = "Bold"

[plugins.broken]
args = ["-v"]
`)

	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "cmd is required") {
		t.Errorf("error = %v, want cmd is required", err)
	}
}

// Package i18n provides a translation catalog for toolbar labels. The
// catalog is handed to components at construction; nothing here reads
// process-wide state, so locale resolution stays testable.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Catalog maps translation keys to localized strings for a single locale.
type Catalog struct {
	locale  string
	entries map[string]string
}

// New creates a catalog from an in-memory entry map.
func New(locale string, entries map[string]string) *Catalog {
	if entries == nil {
		entries = map[string]string{}
	}
	return &Catalog{locale: locale, entries: entries}
}

// Load reads locales/<locale>.toml from dir. The file is a flat table of
// key = "value" pairs.
func Load(dir, locale string) (*Catalog, error) {
	path := filepath.Join(dir, "locales", locale+".toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %s: %w", locale, err)
	}

	entries := map[string]string{}
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse locale %s: %w", locale, err)
	}

	return &Catalog{locale: locale, entries: entries}, nil
}

// Locale returns the catalog's locale tag.
func (c *Catalog) Locale() string {
	return c.locale
}

// Translate resolves a key, formatting any arguments into the localized
// template. Unknown keys fall back to the key itself so missing entries
// stay visible instead of rendering blank chrome.
func (c *Catalog) Translate(key string, args ...any) string {
	tmpl, ok := c.entries[key]
	if !ok {
		tmpl = key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

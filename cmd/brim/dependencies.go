package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rfhold/brim/internal/config"
	"github.com/rfhold/brim/internal/i18n"
	"github.com/rfhold/brim/internal/plugins"
	"github.com/rfhold/brim/internal/toolbar"
)

// AppContext carries launch parameters resolved in main.
type AppContext struct {
	WorkDir string
}

// Dependencies holds all external dependencies for the application.
// These can be replaced with test doubles for unit testing.
type Dependencies struct {
	Config     *config.Config
	Plugins    plugins.Provider
	Translator toolbar.Translator // nil when no locale is configured
	Logger     *slog.Logger
}

// Close shuts down dependency-owned resources.
func (d *Dependencies) Close() {
	if d.Plugins != nil {
		d.Plugins.Close()
	}
}

// NewProductionDependencies creates dependencies configured for production
// use. workDir is used for config, locale, and plugin discovery.
func NewProductionDependencies(ctx context.Context, workDir string, logger *slog.Logger) (*Dependencies, error) {
	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Locale != "" {
		catalog, err := i18n.Load(workDir, cfg.Locale)
		if err != nil {
			// Missing catalogs fall back to raw labels
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			deps.Translator = catalog
		}
	}

	if len(cfg.Plugins) > 0 {
		mgr := plugins.NewManager()
		if err := mgr.Load(ctx, cfg.Plugins); err != nil {
			// Plugins are optional; the toolbar still works without them
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			mgr.Close()
		} else {
			deps.Plugins = mgr
		}
	}

	return deps, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/brim/internal/telemetry"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	default:
		return m.handleMessage(msg)
	}
}

func main() {
	var workDir string
	var debug bool

	flag.StringVar(&workDir, "C", "", "Run as if brim was started in `path`")
	flag.StringVar(&workDir, "cwd", "", "Run as if brim was started in `path`")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: brim [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A responsive action toolbar demo. Configuration is read from\n")
		fmt.Fprintf(os.Stderr, "brim.toml (or brim.yaml) in the working directory.\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()

	tel, err := telemetry.Setup(ctx, telemetry.Options{Debug: debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := tel.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: telemetry shutdown: %v\n", err)
		}
	}()

	deps, err := NewProductionDependencies(ctx, workDir, tel.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	p := tea.NewProgram(initialModel(ctx, AppContext{WorkDir: workDir}, deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

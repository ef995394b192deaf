// cmd/foyer/main.go
//
// This is the entry point for the foyer CLI.
// When you run `foyer` from any directory, this is what executes.
//
// Flow:
// 1. Initialize the .foyer folder in the current directory
// 2. Load the project configuration
// 3. Launch the TUI

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rowanvale/foyer/internal/config"
	"github.com/rowanvale/foyer/internal/tui"
)

func main() {
	// The current working directory is the "venue" we're operating in
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitFoyerDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .foyer directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting foyer: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

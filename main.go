package main

import (
	"fmt"
	"os"

	"calatorie/cmd"
	"calatorie/internal/storage"
	"calatorie/internal/store"
	"calatorie/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if config.ShowVersion {
		fmt.Println("calatorie", version)
		return
	}

	// Open database
	db, err := storage.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Load the persisted plan; a missing or damaged snapshot falls back
	// to an empty one.
	s := store.New(db)

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

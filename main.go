package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"gymbuddy/internal/api"
	"gymbuddy/internal/config"
	"gymbuddy/internal/service"
	"gymbuddy/internal/store"
	"gymbuddy/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nA default config was written to:\n  %s/config.json\n\n", configDir)
		fmt.Println("Edit it to point at your workout service, or set " + config.TokenEnvVar + ".")
		fmt.Println("The defaults work against a local demo server on port 8000.")

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Create services
	client := api.NewClient(cfg.Service.BaseURL, cfg.Service.Token)
	svc := service.New(client, db)
	if err := svc.Load(); err != nil {
		return fmt.Errorf("loading saved state: %w", err)
	}

	// Launch TUI
	app := tui.NewApp(svc, tui.NewUnits(cfg.Display))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

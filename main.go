package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/config"
	"quicklaunch/internal/discovery"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/history"
	"quicklaunch/internal/rank"
	"quicklaunch/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file or directory")
	flag.StringVar(&configPath, "c", "", "Path to config file or directory (shorthand)")
	flag.Parse()

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("quicklaunch.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration: explicit path first, then the default chain
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Printf("Error loading config from %s: %v\n", configPath, err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			log.Printf("Error loading config: %v", err)
			cfg = config.DefaultConfig()
		}
	}

	// Build the ranking engine; bad matcher configuration is fatal here,
	// never at query time
	emptyQuery, err := rank.ParseEmptyQueryMode(cfg.Ranking.EmptyQuery)
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	ranker, err := rank.New(rank.Config{
		NameWeight:  cfg.Ranking.NameWeight,
		EmptyQuery:  emptyQuery,
		MinParallel: 512,
	})
	if err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Launch history is best effort; the launcher works without it
	hist, err := history.Open(history.DefaultPath())
	if err != nil {
		log.Printf("Launch history unavailable: %v", err)
		hist = nil
	} else {
		defer hist.Close()
	}

	// Initialize services
	discoverySvc := discovery.NewDiscoveryService(bus)

	// Create UI model
	uiModel := ui.NewModel(cfg, ranker, hist, bus)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventScanStarted, forward)
	bus.Subscribe(eventbus.EventEntryDiscovered, forward)
	bus.Subscribe(eventbus.EventScanCompleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start initial scan over the configured directories
	if len(cfg.Directories) > 0 {
		go discoverySvc.StartScan(ctx, cfg.Directories)
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"galleria/internal/clipboard"
	"galleria/internal/config"
	"galleria/internal/domain"
	"galleria/internal/eventbus"
	"galleria/internal/gallery"
	"galleria/internal/selection"
	"galleria/internal/settings"
	"galleria/internal/storage"
	"galleria/internal/tooltip"
	"galleria/internal/ui"
)

func main() {
	var targetDir string
	var verbose bool
	flag.StringVar(&targetDir, "dir", "", "Gallery directory to browse")
	flag.StringVar(&targetDir, "d", "", "Gallery directory to browse (shorthand)")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Parse()

	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// Set up logging; the TUI owns stdout
	logFile, err := os.OpenFile("galleria.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Warnf("could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	bus := eventbus.New()

	// Load configuration
	configService := config.NewConfigServiceWithBus(bus)
	cfg, err := configService.Load()
	if err != nil {
		log.Errorf("failed to load config: %v", err)
		cfg = config.DefaultConfig()
	}

	if targetDir == "" {
		targetDir = cfg.GalleryDir
	}
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}
	cfg.GalleryDir = absDir

	// Session-scoped snapshot store for the tag clipboard
	var store storage.Store
	fileStore, err := storage.NewFileStore(storage.DefaultSessionDir())
	if err != nil {
		log.Warnf("session store unavailable, clipboard will not persist: %v", err)
		store = storage.NewMemoryStore()
	} else {
		store = fileStore
	}

	// Shared item stores
	listing := gallery.NewItemStore()
	media := gallery.NewItemStore()

	// Core services
	sel := selection.NewService(bus)
	clip := clipboard.NewService(store, bus)
	clip.Restore()
	tip := tooltip.New(listing, media, tooltip.Capabilities{})
	settingsMgr := settings.NewManager()

	discovery := gallery.NewDiscoveryService(bus)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	model := ui.NewModel(bus, cfg, listing, media, sel, clip, tip, settingsMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward domain events into the UI loop
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, eventType := range []domain.EventType{
		eventbus.EventItemDiscovered,
		eventbus.EventScanStarted,
		eventbus.EventScanCompleted,
		eventbus.EventSelectionModeEntered,
		eventbus.EventSelectionModeExited,
		eventbus.EventNotification,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	if err := discovery.StartScan(ctx, absDir); err != nil {
		log.Errorf("failed to start scan: %v", err)
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	discovery.StopScan()

	if cfg.UISettings.AutosaveOnExit {
		if err := configService.Save(cfg); err != nil {
			log.Errorf("failed to save config: %v", err)
		}
	}
}

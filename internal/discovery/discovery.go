package discovery

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"quicklaunch/internal/desktop"
	"quicklaunch/internal/eventbus"
)

// DiscoveryService finds desktop descriptors in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ds.StartScan(context.Background(), event.Paths)
		}
	})

	return ds
}

// StartScan starts scanning the configured directories for .desktop files
func (ds *discoveryService) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Paths: roots})

	entriesFound := 0

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()

			ds.bus.Publish(eventbus.ScanCompletedEvent{EntriesFound: entriesFound})
		}()

		for _, root := range roots {
			select {
			case <-scanCtx.Done():
				return
			default:
				entriesFound += ds.scanDirectory(scanCtx, root)
			}
		}
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// scanDirectory reads every .desktop file directly under root. Application
// directories are flat, so there is no recursion. Unreadable or malformed
// files are logged and skipped; a missing directory only ends that root.
func (ds *discoveryService) scanDirectory(ctx context.Context, root string) int {
	entriesFound := 0

	files, err := os.ReadDir(root)
	if err != nil {
		log.Printf("Error reading directory %s: %v", root, err)
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
		return 0
	}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return entriesFound
		default:
		}

		if file.IsDir() || !strings.HasSuffix(file.Name(), ".desktop") {
			continue
		}

		path := filepath.Join(root, file.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading %s: %v", path, err)
			continue
		}

		desc, err := desktop.Parse(string(content))
		if err != nil {
			log.Printf("Skipping malformed descriptor %s: %v", path, err)
			continue
		}
		desc.Path = path

		ds.bus.Publish(eventbus.EntryDiscoveredEvent{Descriptor: desc})
		entriesFound++
	}

	return entriesFound
}

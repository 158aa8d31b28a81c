package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestScanPublishesDiscoveredEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "firefox.desktop", "[Desktop Entry]\nType=Application\nName=Firefox\nExec=firefox\n")
	writeFile(t, dir, "broken.desktop", "Name=No header\n")
	writeFile(t, dir, "notes.txt", "not a descriptor")

	bus := eventbus.New()
	defer bus.Close()

	discovered := make(chan domain.Descriptor, 16)
	done := make(chan int, 1)
	bus.Subscribe(eventbus.EventEntryDiscovered, func(e eventbus.DomainEvent) {
		discovered <- e.(eventbus.EntryDiscoveredEvent).Descriptor
	})
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent).EntriesFound
	})

	svc := NewDiscoveryService(bus)
	require.NoError(t, svc.StartScan(context.Background(), []string{dir}))

	select {
	case found := <-done:
		require.Equal(t, 1, found)
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
	}

	desc := <-discovered
	require.Equal(t, "Firefox", desc.Name)
	require.Equal(t, filepath.Join(dir, "firefox.desktop"), desc.Path)
}

func TestScanMissingDirectoryCompletes(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	done := make(chan int, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent).EntriesFound
	})

	svc := NewDiscoveryService(bus)
	require.NoError(t, svc.StartScan(context.Background(), []string{"/does/not/exist"}))

	select {
	case found := <-done:
		require.Equal(t, 0, found)
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
	}
}

func TestConcurrentScanRejected(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 200; i++ {
		writeFile(t, dir, fmt.Sprintf("app-%03d.desktop", i), "[Desktop Entry]\nType=Application\nName=X\nExec=x\n")
	}

	bus := eventbus.New()
	defer bus.Close()

	svc := NewDiscoveryService(bus)
	require.NoError(t, svc.StartScan(context.Background(), []string{dir}))

	// A second scan while the first runs must fail; if the first already
	// finished the second legitimately succeeds, so only assert when busy.
	if err := svc.StartScan(context.Background(), []string{dir}); err != nil {
		require.Contains(t, err.Error(), "already in progress")
	}
	svc.StopScan()
}

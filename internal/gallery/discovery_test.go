package gallery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleria/internal/domain"
	"galleria/internal/eventbus"
)

func TestScanClassifiesMediaFiles(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"sunset.jpg":    "x",
		"clip.MP4":      "x",
		"mix.m3u":       "x",
		"notes.txt":     "x",
		".hidden.png":   "x",
		"sub/beach.png": "x",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	bus := eventbus.New()

	var mu sync.Mutex
	found := make(map[string]domain.ItemType)
	bus.Subscribe(eventbus.EventItemDiscovered, func(e eventbus.DomainEvent) {
		event := e.(eventbus.ItemDiscoveredEvent)
		mu.Lock()
		found[event.Item.Name] = event.Item.Type
		mu.Unlock()
	})

	done := make(chan eventbus.ScanCompletedEvent, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent)
	})

	ds := NewDiscoveryService(bus)
	require.NoError(t, ds.StartScan(context.Background(), root))

	select {
	case completed := <-done:
		assert.Equal(t, 5, completed.ItemsFound)
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
	}
	ds.StopScan()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, domain.ItemTypeImage, found["sunset.jpg"])
	assert.Equal(t, domain.ItemTypeVideo, found["clip.MP4"], "extension match is case-insensitive")
	assert.Equal(t, domain.ItemTypePlaylist, found["mix.m3u"])
	assert.Equal(t, domain.ItemTypeFolder, found["sub"])
	assert.Equal(t, domain.ItemTypeImage, found["beach.png"])
	assert.NotContains(t, found, "notes.txt")
	assert.NotContains(t, found, ".hidden.png")
}

func TestScanPrunesHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".thumbnails"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".thumbnails", "thumb.jpg"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "visible.jpg"), []byte("x"), 0644))

	bus := eventbus.New()

	var mu sync.Mutex
	var names []string
	bus.Subscribe(eventbus.EventItemDiscovered, func(e eventbus.DomainEvent) {
		event := e.(eventbus.ItemDiscoveredEvent)
		mu.Lock()
		names = append(names, event.Item.Name)
		mu.Unlock()
	})

	done := make(chan eventbus.ScanCompletedEvent, 1)
	bus.Subscribe(eventbus.EventScanCompleted, func(e eventbus.DomainEvent) {
		done <- e.(eventbus.ScanCompletedEvent)
	})

	ds := NewDiscoveryService(bus)
	require.NoError(t, ds.StartScan(context.Background(), root))

	select {
	case completed := <-done:
		assert.Equal(t, 1, completed.ItemsFound)
	case <-time.After(5 * time.Second):
		t.Fatal("scan did not complete")
	}
	ds.StopScan()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"visible.jpg"}, names,
		"files inside hidden directories must not be discovered")
}

func TestConcurrentScanRejected(t *testing.T) {
	bus := eventbus.New()
	done := make(chan struct{}, 2)
	bus.Subscribe(eventbus.EventScanCompleted, func(eventbus.DomainEvent) {
		done <- struct{}{}
	})

	root := t.TempDir()
	// Enough entries that the first scan is still running when the second starts
	for i := 0; i < 200; i++ {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "d", string(rune('a'+i%26)), "x"), 0755))
	}

	ds := NewDiscoveryService(bus)
	require.NoError(t, ds.StartScan(context.Background(), root))
	err := ds.StartScan(context.Background(), root)
	if err == nil {
		// The first scan may already have finished on a fast machine
		<-done
	}
	ds.StopScan()
}

func TestClassify(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.webm"), nil, 0644))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var entry fs.DirEntry = entries[0]
	item := classify(filepath.Join(root, "a.webm"), entry)
	require.NotNil(t, item)
	assert.Equal(t, domain.ItemTypeVideo, item.Type)
	assert.Equal(t, "a.webm", item.Name)
}

package gallery

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"galleria/internal/domain"
	"galleria/internal/eventbus"
)

// DiscoveryService finds gallery items in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, root string) error
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

	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ds.StartScan(context.Background(), event.Root)
		}
	})

	return ds
}

// StartScan starts scanning for gallery items
func (ds *discoveryService) StartScan(ctx context.Context, root string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Root: root})

	itemsFound := 0

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()

			ds.bus.Publish(eventbus.ScanCompletedEvent{ItemsFound: itemsFound})
		}()

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Debugf("discovery: skipping %s: %v", path, err)
				return nil
			}

			select {
			case <-scanCtx.Done():
				return filepath.SkipAll
			default:
			}

			if path == root {
				return nil
			}

			// Prune hidden directories so their contents never surface
			if d.IsDir() && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			item := classify(path, d)
			if item == nil {
				return nil
			}

			itemsFound++
			ds.bus.Publish(eventbus.ItemDiscoveredEvent{Item: *item})
			return nil
		})
		if err != nil {
			ds.bus.Publish(eventbus.ErrorEvent{Message: "gallery scan failed", Err: err})
		}
	}()

	return nil
}

// StopScan cancels a running scan and waits for it to finish
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	cancel := ds.cancelFunc
	ds.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	ds.wg.Wait()
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".svg": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".mov": true,
	".avi": true, ".m4v": true,
}

var playlistExts = map[string]bool{
	".m3u": true, ".m3u8": true, ".pls": true,
}

// classify maps a directory entry to a gallery item, or nil for files the
// gallery does not show.
func classify(path string, d fs.DirEntry) *domain.MediaItem {
	name := d.Name()
	if strings.HasPrefix(name, ".") {
		return nil
	}

	item := &domain.MediaItem{
		Path: path,
		Name: name,
	}

	if d.IsDir() {
		item.Type = domain.ItemTypeFolder
		return item
	}

	switch ext := strings.ToLower(filepath.Ext(name)); {
	case imageExts[ext]:
		item.Type = domain.ItemTypeImage
	case videoExts[ext]:
		item.Type = domain.ItemTypeVideo
	case playlistExts[ext]:
		item.Type = domain.ItemTypePlaylist
	default:
		return nil
	}

	if info, err := d.Info(); err == nil {
		item.Size = info.Size()
		item.ModifiedAt = info.ModTime()
	}
	return item
}

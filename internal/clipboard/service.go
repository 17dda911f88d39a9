package clipboard

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"galleria/internal/eventbus"
	"galleria/internal/storage"
)

// Service is the tag clipboard: a copied tag set plus its source item,
// persisted to the session store on every populate and restorable after a
// navigation. Constructed explicitly and shared by reference.
type Service struct {
	store storage.Store
	bus   eventbus.EventBus

	copiedTags []string
	newlyAdded []string
	sourceName string
	sourcePath string
}

// NewService creates a new tag clipboard backed by the given store
func NewService(store storage.Store, bus eventbus.EventBus) *Service {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &Service{
		store: store,
		bus:   bus,
	}
}

// CopyTagsDirect replaces the clipboard contents with a copy of tags.
// An empty tag list is rejected with a user notification and no state
// change. Returns whether the copy happened.
func (s *Service) CopyTagsDirect(tags []string, sourcePath, sourceName string) bool {
	if len(tags) == 0 {
		s.bus.Publish(eventbus.NotificationEvent{Message: "No tags to copy", IsError: true})
		return false
	}

	s.copiedTags = append([]string(nil), tags...)
	s.newlyAdded = nil
	s.sourcePath = sourcePath
	s.sourceName = sourceName

	if err := s.Save(); err != nil {
		log.Errorf("clipboard: %v", err)
	}
	s.bus.Publish(eventbus.ClipboardCopiedEvent{SourcePath: sourcePath, TagCount: len(s.copiedTags)})
	return true
}

// MergeTags appends the tags not already on the clipboard, tracking them
// separately from the originally copied set. Returns how many were added.
func (s *Service) MergeTags(tags []string, sourcePath, sourceName string) int {
	if len(tags) == 0 {
		s.bus.Publish(eventbus.NotificationEvent{Message: "No tags to merge", IsError: true})
		return 0
	}

	present := make(map[string]bool, len(s.copiedTags))
	for _, tag := range s.copiedTags {
		present[tag] = true
	}

	var added []string
	for _, tag := range tags {
		if present[tag] {
			continue
		}
		present[tag] = true
		added = append(added, tag)
	}

	s.copiedTags = append(s.copiedTags, added...)
	s.newlyAdded = append([]string(nil), added...)
	s.sourcePath = sourcePath
	s.sourceName = sourceName

	if err := s.Save(); err != nil {
		log.Errorf("clipboard: %v", err)
	}
	s.bus.Publish(eventbus.ClipboardMergedEvent{SourcePath: sourcePath, Added: len(added)})
	return len(added)
}

// HasTags reports whether the clipboard holds anything
func (s *Service) HasTags() bool {
	return len(s.copiedTags) > 0
}

// Tags returns a fresh copy of the copied tags
func (s *Service) Tags() []string {
	return append([]string{}, s.copiedTags...)
}

// NewlyAddedTags returns a fresh copy of the tags added by the last merge
func (s *Service) NewlyAddedTags() []string {
	return append([]string{}, s.newlyAdded...)
}

// SourcePath returns the path the clipboard was populated from
func (s *Service) SourcePath() string {
	return s.sourcePath
}

// SourceItemName returns the display name of the source item
func (s *Service) SourceItemName() string {
	return s.sourceName
}

// Clear empties the clipboard and removes the persisted snapshot entirely
func (s *Service) Clear() {
	s.copiedTags = nil
	s.newlyAdded = nil
	s.sourceName = ""
	s.sourcePath = ""

	if err := s.store.Delete(SnapshotKey); err != nil {
		log.Errorf("clipboard: %v", err)
	}
	s.bus.Publish(eventbus.ClipboardClearedEvent{})
}

// Save persists the clipboard to the session store. An empty clipboard is
// never written: absence of the key, not an empty value, means "nothing
// copied".
func (s *Service) Save() error {
	if len(s.copiedTags) == 0 {
		return nil
	}

	snap := snapshot{
		CopiedTags:     s.copiedTags,
		SourceItemName: nullable(s.sourceName),
		SourcePath:     nullable(s.sourcePath),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal clipboard snapshot: %w", err)
	}
	if err := s.store.Set(SnapshotKey, data); err != nil {
		return fmt.Errorf("failed to persist clipboard snapshot: %w", err)
	}
	return nil
}

// Restore loads the last persisted snapshot. A missing key leaves the
// defaults in place; corrupt data is swallowed and likewise leaves the
// clipboard empty.
func (s *Service) Restore() RestoreResult {
	data, ok := s.store.Get(SnapshotKey)
	if !ok {
		return RestoreEmpty
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Debugf("clipboard: ignoring corrupt snapshot: %v", err)
		return RestoreCorrupt
	}

	s.copiedTags = snap.CopiedTags
	s.newlyAdded = nil
	s.sourceName = deref(snap.SourceItemName)
	s.sourcePath = deref(snap.SourcePath)
	return RestoreLoaded
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

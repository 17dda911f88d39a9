package gallery

import (
	"sort"
	"sync"

	"galleria/internal/domain"
)

// ItemStore is a mutex-guarded collection of gallery items keyed by path.
// Two instances back the shared application state: the current listing
// (everything visible, folders included) and the flat media-file index.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]*domain.MediaItem
}

// NewItemStore creates an empty item store
func NewItemStore() *ItemStore {
	return &ItemStore{
		items: make(map[string]*domain.MediaItem),
	}
}

// Get retrieves an item by path
func (s *ItemStore) Get(path string) (*domain.MediaItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[path]
	if !ok {
		return nil, false
	}
	copied := *item
	copied.Tags = append([]string(nil), item.Tags...)
	return &copied, true
}

// Add inserts or replaces an item
func (s *ItemStore) Add(item *domain.MediaItem) {
	if item == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.Path] = item
}

// Remove deletes an item by path
func (s *ItemStore) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, path)
}

// All returns every item ordered by path
func (s *ItemStore) All() []*domain.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MediaItem, 0, len(s.items))
	for _, item := range s.items {
		copied := *item
		copied.Tags = append([]string(nil), item.Tags...)
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Len returns the number of stored items
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items
func (s *ItemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*domain.MediaItem)
}

// TagCounts aggregates tag usage across all stored items
func (s *ItemStore) TagCounts() []domain.TagCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, item := range s.items {
		for _, tag := range item.Tags {
			counts[tag]++
		}
	}

	out := make([]domain.TagCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.TagCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

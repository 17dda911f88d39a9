package selection

import (
	"sort"

	"galleria/internal/domain"
	"galleria/internal/eventbus"
)

// Service owns the selection-mode state machine. It is constructed
// explicitly and shared by reference; there is no package-level instance.
type Service struct {
	state   *State
	bus     eventbus.EventBus
	surface Surface
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = &eventbus.NullBus{}
	}
	return &Service{
		state: newState(),
		bus:   bus,
	}
}

// SetSurface sets the surface that mirrors selection mode visually
func (s *Service) SetSurface(surface Surface) {
	s.surface = surface
}

// IsSelectableType reports whether items of this type can be selected.
// Anything outside the four gallery item kinds is rejected, including the
// empty string.
func IsSelectableType(t domain.ItemType) bool {
	switch t {
	case domain.ItemTypeImage, domain.ItemTypeVideo, domain.ItemTypeFolder, domain.ItemTypePlaylist:
		return true
	}
	return false
}

// EnterSelectionMode activates selection mode. Calling it while already
// active is a no-op: selections are cleared and the history notification
// fires only on the Inactive->Active edge.
func (s *Service) EnterSelectionMode() {
	if s.state.Active {
		return
	}

	s.state.Active = true
	s.state.Entries = make(map[string]domain.SelectionEntry)
	s.state.AllSelected = false

	if s.surface != nil {
		s.surface.SetSelectionMarker(true)
	}
	s.bus.Publish(eventbus.SelectionModeEnteredEvent{})
}

// ExitSelectionMode deactivates selection mode and clears all selection
// state, including the cached select-all universe.
func (s *Service) ExitSelectionMode() {
	if !s.state.Active {
		return
	}

	s.state.Active = false
	s.state.Entries = make(map[string]domain.SelectionEntry)
	s.state.AllSelected = false
	s.state.AllPaths = nil

	if s.surface != nil {
		s.surface.SetSelectionMarker(false)
	}
	s.bus.Publish(eventbus.SelectionModeExitedEvent{})
}

// SelectItemByData selects an item, caching its display metadata.
// Re-selecting a path is idempotent; name and type take the latest values.
// Non-selectable types are silently rejected.
func (s *Service) SelectItemByData(path, name string, t domain.ItemType) {
	if !IsSelectableType(t) {
		return
	}

	_, existed := s.state.Entries[path]
	s.state.Entries[path] = domain.SelectionEntry{Name: name, Type: t}

	var added []string
	if !existed {
		added = []string{path}
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Added: added,
		Total: len(s.state.Entries),
	})
}

// DeselectItemByPath removes an item from the selection. An absent path is
// a silent no-op, but the all-selected flag is always reset.
func (s *Service) DeselectItemByPath(path string) {
	_, existed := s.state.Entries[path]
	delete(s.state.Entries, path)
	s.state.AllSelected = false

	var removed []string
	if existed {
		removed = []string{path}
	}
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Removed: removed,
		Total:   len(s.state.Entries),
	})
}

// SelectAll selects every selectable item and caches the universe so a
// later toggle can flip back.
func (s *Service) SelectAll(items []*domain.MediaItem) {
	paths := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil || !IsSelectableType(item.Type) {
			continue
		}
		s.state.Entries[item.Path] = domain.SelectionEntry{Name: item.Name, Type: item.Type}
		paths = append(paths, item.Path)
	}
	s.state.AllPaths = paths
	s.state.AllSelected = true

	s.bus.Publish(eventbus.AllSelectedEvent{Paths: paths})
}

// ToggleSelectAll flips between all-selected and nothing-selected while
// staying in selection mode.
func (s *Service) ToggleSelectAll(items []*domain.MediaItem) {
	if s.state.AllSelected {
		s.state.Entries = make(map[string]domain.SelectionEntry)
		s.state.AllSelected = false
		s.bus.Publish(eventbus.SelectionChangedEvent{Total: 0})
		return
	}
	s.SelectAll(items)
}

// SelectedPaths returns a snapshot of the selected paths, sorted for
// deterministic iteration.
func (s *Service) SelectedPaths() []string {
	paths := make([]string, 0, len(s.state.Entries))
	for path := range s.state.Entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Entry returns the cached metadata for a selected path
func (s *Service) Entry(path string) (domain.SelectionEntry, bool) {
	entry, ok := s.state.Entries[path]
	return entry, ok
}

// IsSelected checks if an item is selected
func (s *Service) IsSelected(path string) bool {
	_, ok := s.state.Entries[path]
	return ok
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return len(s.state.Entries)
}

// IsActive reports whether selection mode is on
func (s *Service) IsActive() bool {
	return s.state.Active
}

// IsAllSelected reports whether the all-selected flag is set
func (s *Service) IsAllSelected() bool {
	return s.state.AllSelected
}

// Reset returns the service to its initial state without publishing events.
func (s *Service) Reset() {
	if s.state.Active && s.surface != nil {
		s.surface.SetSelectionMarker(false)
	}
	s.state = newState()
}

package selection

import "galleria/internal/domain"

// State holds selection-mode state. Selection membership is defined by key
// presence in Entries; there is no separate path set to keep in sync.
type State struct {
	Active      bool
	Entries     map[string]domain.SelectionEntry // path -> cached metadata
	AllSelected bool
	AllPaths    []string // cached select-all universe, nil outside select-all
}

// newState returns the initial (inactive, empty) state.
func newState() *State {
	return &State{
		Entries: make(map[string]domain.SelectionEntry),
	}
}

// Surface reflects selection mode onto the rendering surface (the document
// root in a browser, the gallery view here). A nil surface degrades
// silently; in-memory state transitions still succeed.
type Surface interface {
	SetSelectionMarker(on bool)
}

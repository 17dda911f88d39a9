package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleria/internal/domain"
	"galleria/internal/eventbus"
)

type fakeSurface struct {
	marker bool
	setOn  int
	setOff int
}

func (f *fakeSurface) SetSelectionMarker(on bool) {
	f.marker = on
	if on {
		f.setOn++
	} else {
		f.setOff++
	}
}

// assertConsistent checks the core invariant: the derived path set and the
// entry map describe the same selection.
func assertConsistent(t *testing.T, s *Service) {
	t.Helper()
	paths := s.SelectedPaths()
	assert.Equal(t, s.Count(), len(paths))
	for _, path := range paths {
		_, ok := s.Entry(path)
		assert.True(t, ok, "path %s has no entry", path)
		assert.True(t, s.IsSelected(path))
	}
}

func TestIsSelectableType(t *testing.T) {
	assert.True(t, IsSelectableType(domain.ItemTypeImage))
	assert.True(t, IsSelectableType(domain.ItemTypeVideo))
	assert.True(t, IsSelectableType(domain.ItemTypeFolder))
	assert.True(t, IsSelectableType(domain.ItemTypePlaylist))

	assert.False(t, IsSelectableType(domain.ItemTypeOther))
	assert.False(t, IsSelectableType(""))
	assert.False(t, IsSelectableType("document"))
}

func TestSelectDeselectKeepsStateConsistent(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()

	ops := []func(){
		func() { s.SelectItemByData("/a.jpg", "a", domain.ItemTypeImage) },
		func() { s.SelectItemByData("/b.mp4", "b", domain.ItemTypeVideo) },
		func() { s.DeselectItemByPath("/a.jpg") },
		func() { s.SelectItemByData("/c", "c", domain.ItemTypeFolder) },
		func() { s.DeselectItemByPath("/missing") },
		func() { s.SelectItemByData("/b.mp4", "b2", domain.ItemTypeVideo) },
		func() { s.DeselectItemByPath("/b.mp4") },
	}
	for _, op := range ops {
		op()
		assertConsistent(t, s)
	}

	assert.Equal(t, []string{"/c"}, s.SelectedPaths())
}

func TestSelectIsIdempotentWithOverwrite(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()

	s.SelectItemByData("/a.jpg", "first", domain.ItemTypeImage)
	s.SelectItemByData("/a.jpg", "second", domain.ItemTypeVideo)

	assert.Equal(t, 1, s.Count())
	entry, ok := s.Entry("/a.jpg")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Name)
	assert.Equal(t, domain.ItemTypeVideo, entry.Type)
}

func TestSelectRejectsNonSelectableTypes(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()

	s.SelectItemByData("/doc.pdf", "doc", domain.ItemTypeOther)
	s.SelectItemByData("/x", "x", "")

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.SelectedPaths())
}

func TestDeselectAbsentPathResetsAllSelected(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()
	s.SelectAll([]*domain.MediaItem{
		{Path: "/a.jpg", Name: "a", Type: domain.ItemTypeImage},
	})
	require.True(t, s.IsAllSelected())

	assert.NotPanics(t, func() { s.DeselectItemByPath("/not-there") })
	assert.False(t, s.IsAllSelected())
	assert.Equal(t, 1, s.Count(), "absent-path deselect leaves selections alone")
}

func TestEnterSelectionModeEdgeTriggered(t *testing.T) {
	bus := eventbus.New()
	pushes := 0
	bus.Subscribe(eventbus.EventSelectionModeEntered, func(eventbus.DomainEvent) {
		pushes++
	})

	surface := &fakeSurface{}
	s := NewService(bus)
	s.SetSurface(surface)

	s.EnterSelectionMode()
	assert.Equal(t, 1, pushes, "one history push per activation")
	assert.True(t, surface.marker)

	s.SelectItemByData("/a.jpg", "a", domain.ItemTypeImage)
	require.Equal(t, 1, s.Count())

	// Re-entering while active must not re-push or re-clear
	s.EnterSelectionMode()
	assert.Equal(t, 1, pushes)
	assert.Equal(t, 1, s.Count())

	// A fresh activation after exit clears the old selection and pushes again
	s.ExitSelectionMode()
	s.EnterSelectionMode()
	assert.Equal(t, 2, pushes)
	assert.Equal(t, 0, s.Count())
}

func TestExitSelectionModeClearsEverything(t *testing.T) {
	surface := &fakeSurface{}
	s := NewService(nil)
	s.SetSurface(surface)

	s.EnterSelectionMode()
	s.SelectAll([]*domain.MediaItem{
		{Path: "/a.jpg", Name: "a", Type: domain.ItemTypeImage},
		{Path: "/b.mp4", Name: "b", Type: domain.ItemTypeVideo},
	})

	s.ExitSelectionMode()

	assert.False(t, s.IsActive())
	assert.False(t, s.IsAllSelected())
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.state.AllPaths)
	assert.False(t, surface.marker)

	// Exiting while inactive is a no-op
	s.ExitSelectionMode()
	assert.Equal(t, 1, surface.setOff)
}

func TestSelectAllSkipsNonSelectable(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()

	s.SelectAll([]*domain.MediaItem{
		{Path: "/a.jpg", Name: "a", Type: domain.ItemTypeImage},
		{Path: "/readme.txt", Name: "readme", Type: domain.ItemTypeOther},
		{Path: "/list.m3u", Name: "list", Type: domain.ItemTypePlaylist},
		nil,
	})

	assert.True(t, s.IsAllSelected())
	assert.Equal(t, []string{"/a.jpg", "/list.m3u"}, s.SelectedPaths())
	assertConsistent(t, s)
}

func TestToggleSelectAll(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()
	items := []*domain.MediaItem{
		{Path: "/a.jpg", Name: "a", Type: domain.ItemTypeImage},
		{Path: "/b.mp4", Name: "b", Type: domain.ItemTypeVideo},
	}

	s.ToggleSelectAll(items)
	assert.Equal(t, 2, s.Count())
	assert.True(t, s.IsAllSelected())

	s.ToggleSelectAll(items)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsAllSelected())
	assert.True(t, s.IsActive(), "toggling off stays in selection mode")
}

func TestIndividualDeselectDropsAllSelectedFlag(t *testing.T) {
	s := NewService(nil)
	s.EnterSelectionMode()
	s.SelectAll([]*domain.MediaItem{
		{Path: "/a.jpg", Name: "a", Type: domain.ItemTypeImage},
		{Path: "/b.mp4", Name: "b", Type: domain.ItemTypeVideo},
	})

	s.DeselectItemByPath("/a.jpg")
	assert.False(t, s.IsAllSelected())
	assert.Equal(t, []string{"/b.mp4"}, s.SelectedPaths())
}

func TestReset(t *testing.T) {
	surface := &fakeSurface{}
	s := NewService(nil)
	s.SetSurface(surface)

	s.EnterSelectionMode()
	s.SelectItemByData("/a.jpg", "a", domain.ItemTypeImage)
	s.Reset()

	assert.False(t, s.IsActive())
	assert.Equal(t, 0, s.Count())
	assert.False(t, surface.marker)
}

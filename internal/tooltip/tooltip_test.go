package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleria/internal/domain"
	"galleria/internal/gallery"
)

type fakeSurface struct {
	visible bool
	calls   int
}

func (f *fakeSurface) SetVisible(on bool) {
	f.visible = on
	f.calls++
}

func newStores(t *testing.T) (*gallery.ItemStore, *gallery.ItemStore) {
	t.Helper()
	listing := gallery.NewItemStore()
	media := gallery.NewItemStore()
	listing.Add(&domain.MediaItem{
		Path: "/g/a.jpg", Name: "a.jpg", Type: domain.ItemTypeImage,
		Tags: []string{"listing-tag"},
	})
	media.Add(&domain.MediaItem{
		Path: "/g/b.mp4", Name: "b.mp4", Type: domain.ItemTypeVideo,
		Tags: []string{"media-tag"},
	})
	return listing, media
}

func TestTagsFromAttribute(t *testing.T) {
	listing, media := newStores(t)
	tip := New(listing, media, Capabilities{})

	tags := tip.TagsForItem(&Item{Path: "/g/a.jpg", TagsAttr: `["x","y"]`})
	assert.Equal(t, []string{"x", "y"}, tags, "attribute wins over the listing store")
}

func TestEmptyAttributeStopsResolution(t *testing.T) {
	listing, media := newStores(t)
	tip := New(listing, media, Capabilities{})

	tags := tip.TagsForItem(&Item{Path: "/g/a.jpg", TagsAttr: `[]`})
	assert.Empty(t, tags, "a present-but-empty attribute is a final answer")
}

func TestCorruptAttributeFallsThrough(t *testing.T) {
	listing, media := newStores(t)
	tip := New(listing, media, Capabilities{})

	var tags []string
	assert.NotPanics(t, func() {
		tags = tip.TagsForItem(&Item{Path: "/g/a.jpg", TagsAttr: `[not json`})
	})
	assert.Equal(t, []string{"listing-tag"}, tags)
}

func TestResolutionOrder(t *testing.T) {
	listing, media := newStores(t)
	tip := New(listing, media, Capabilities{})

	// Not in the listing, found in the media-file store
	assert.Equal(t, []string{"media-tag"}, tip.TagsForItem(&Item{Path: "/g/b.mp4"}))

	// Present in the listing with no tags: resolution stops there
	listing.Add(&domain.MediaItem{Path: "/g/c.png", Name: "c.png", Type: domain.ItemTypeImage})
	media.Add(&domain.MediaItem{Path: "/g/c.png", Name: "c.png", Tags: []string{"never-seen"}})
	assert.Empty(t, tip.TagsForItem(&Item{Path: "/g/c.png"}))

	// Unknown everywhere
	assert.Empty(t, tip.TagsForItem(&Item{Path: "/nowhere"}))
	assert.Empty(t, tip.TagsForItem(nil))
}

func TestIsPointInElement(t *testing.T) {
	tip := New(nil, nil, Capabilities{})
	el := &Element{Bounds: Rect{Left: 10, Top: 20, Right: 50, Bottom: 60}}

	assert.True(t, tip.IsPointInElement(30, 40, el), "center")
	assert.True(t, tip.IsPointInElement(7, 20, el), "inside the buffer")
	assert.True(t, tip.IsPointInElement(5, 15, el), "exact buffered corner")
	assert.True(t, tip.IsPointInElement(55, 65, el), "opposite buffered corner")
	assert.False(t, tip.IsPointInElement(4.9, 40, el))
	assert.False(t, tip.IsPointInElement(100, 100, el))
	assert.False(t, tip.IsPointInElement(30, 40, nil), "nil element is never hit")
}

func TestShowHide(t *testing.T) {
	surface := &fakeSurface{}
	tip := New(nil, nil, Capabilities{})
	tip.SetSurface(surface)

	item := &Item{Path: "/g/a.jpg"}
	tip.Show(item)
	require.True(t, tip.Visible())
	assert.Equal(t, item, tip.Current())
	assert.Equal(t, 1, surface.calls)

	// Showing the same target again is idempotent
	tip.Show(&Item{Path: "/g/a.jpg"})
	assert.Equal(t, 1, surface.calls)

	tip.Hide()
	assert.False(t, tip.Visible())
	assert.Nil(t, tip.Current())
	assert.False(t, surface.visible)

	// Hiding when already hidden is safe
	assert.NotPanics(t, func() { tip.Hide() })

	// Show with nil target does nothing
	tip.Show(nil)
	assert.False(t, tip.Visible())
}

func TestMobileDetection(t *testing.T) {
	assert.False(t, New(nil, nil, Capabilities{}).Mobile())
	assert.True(t, New(nil, nil, Capabilities{TouchStart: true}).Mobile())
	assert.True(t, New(nil, nil, Capabilities{MaxTouchPoints: 2}).Mobile())
	assert.False(t, New(nil, nil, Capabilities{MaxTouchPoints: 0}).Mobile())
}

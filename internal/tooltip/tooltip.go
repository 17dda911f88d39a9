// Package tooltip resolves the tags shown when hovering a gallery item and
// computes the hover-zone geometry around it.
package tooltip

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"galleria/internal/gallery"
)

// hoverBuffer expands the hover zone on every side so the pointer can
// overshoot an item slightly without dismissing the tooltip.
const hoverBuffer = 5

// Item is a hovered gallery item as the tooltip sees it: its path plus the
// optional pre-serialized tag list attached to its tag display element.
type Item struct {
	Path     string
	TagsAttr string // JSON array of tag strings, "" when absent
}

// Rect is an element bounding box.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Element is a rectangular hover region.
type Element struct {
	Bounds Rect
}

// Capabilities are the touch signals sampled once at construction time.
type Capabilities struct {
	TouchStart     bool
	MaxTouchPoints int
}

// Surface mirrors the tooltip's visible state onto the hover surface.
// A nil surface degrades silently.
type Surface interface {
	SetVisible(on bool)
}

// Tooltip reads tag data for hovered items. Tag resolution prefers the
// item's own serialized attribute, then the shared listing store, then the
// media-file store; the first source that yields a present value wins, even
// when that value is empty.
type Tooltip struct {
	listing *gallery.ItemStore
	media   *gallery.ItemStore
	surface Surface
	mobile  bool

	current *Item
	visible bool
}

// New creates a tooltip helper. Mobile detection happens here, once; it is
// never re-evaluated.
func New(listing, media *gallery.ItemStore, caps Capabilities) *Tooltip {
	return &Tooltip{
		listing: listing,
		media:   media,
		mobile:  caps.TouchStart || caps.MaxTouchPoints > 0,
	}
}

// SetSurface sets the surface that mirrors tooltip visibility
func (t *Tooltip) SetSurface(surface Surface) {
	t.surface = surface
}

// Mobile reports whether the tooltip triggers on tap instead of hover
func (t *Tooltip) Mobile() bool {
	return t.mobile
}

// TagsForItem resolves the tag list for an item. A corrupt serialized
// attribute never raises; it falls through to the shared stores.
func (t *Tooltip) TagsForItem(item *Item) []string {
	if item == nil {
		return []string{}
	}

	if item.TagsAttr != "" {
		var tags []string
		if err := json.Unmarshal([]byte(item.TagsAttr), &tags); err == nil {
			if tags == nil {
				tags = []string{}
			}
			return tags
		}
		log.Debugf("tooltip: corrupt tag attribute on %s, falling back", item.Path)
	}

	if t.listing != nil {
		if stored, ok := t.listing.Get(item.Path); ok {
			return tagsOf(stored.Tags)
		}
	}
	if t.media != nil {
		if stored, ok := t.media.Get(item.Path); ok {
			return tagsOf(stored.Tags)
		}
	}
	return []string{}
}

// IsPointInElement reports whether (x, y) falls within the element's
// bounding box expanded by the hover buffer, boundary included. A nil
// element is never hit.
func (t *Tooltip) IsPointInElement(x, y float64, el *Element) bool {
	if el == nil {
		return false
	}
	b := el.Bounds
	return x >= b.Left-hoverBuffer && x <= b.Right+hoverBuffer &&
		y >= b.Top-hoverBuffer && y <= b.Bottom+hoverBuffer
}

// Show records the item as the current hover subject. Showing the same
// item again is idempotent.
func (t *Tooltip) Show(item *Item) {
	if item == nil {
		return
	}
	if t.visible && t.current != nil && t.current.Path == item.Path {
		return
	}
	t.current = item
	t.visible = true
	if t.surface != nil {
		t.surface.SetVisible(true)
	}
}

// Hide clears the hover subject. Safe to call when already hidden.
func (t *Tooltip) Hide() {
	t.current = nil
	t.visible = false
	if t.surface != nil {
		t.surface.SetVisible(false)
	}
}

// Current returns the item the tooltip is showing, or nil
func (t *Tooltip) Current() *Item {
	return t.current
}

// Visible reports whether the tooltip is showing
func (t *Tooltip) Visible() bool {
	return t.visible
}

func tagsOf(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return append([]string{}, tags...)
}

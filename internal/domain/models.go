package domain

import "time"

// ItemType classifies a gallery item.
type ItemType string

const (
	ItemTypeImage    ItemType = "image"
	ItemTypeVideo    ItemType = "video"
	ItemTypeFolder   ItemType = "folder"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeOther    ItemType = "other"
)

// MediaItem represents a single item in the gallery listing
type MediaItem struct {
	Path       string
	Name       string
	Type       ItemType
	Size       int64
	ModifiedAt time.Time
	Tags       []string
}

// SelectionEntry is the metadata cached for a selected item
type SelectionEntry struct {
	Name string
	Type ItemType
}

// TagCount pairs a tag with the number of items carrying it
type TagCount struct {
	Name  string
	Count int
}

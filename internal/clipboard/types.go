package clipboard

// SnapshotKey is the session-store key holding the persisted clipboard.
// The key is absent whenever the clipboard is empty.
const SnapshotKey = "tagClipboard"

// snapshot is the persisted wire form of the clipboard.
type snapshot struct {
	CopiedTags     []string `json:"copiedTags"`
	SourceItemName *string  `json:"sourceItemName"`
	SourcePath     *string  `json:"sourcePath"`
}

// RestoreResult says how a Restore call resolved. Corrupt and missing
// snapshots both collapse to empty defaults at the boundary; the distinct
// results keep the fallback path observable.
type RestoreResult int

const (
	RestoreEmpty RestoreResult = iota
	RestoreLoaded
	RestoreCorrupt
)

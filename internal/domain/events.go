package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemDiscovered       EventType = "ItemDiscovered"
	EventScanStarted          EventType = "ScanStarted"
	EventScanCompleted        EventType = "ScanCompleted"
	EventScanRequested        EventType = "ScanRequested"
	EventSelectionModeEntered EventType = "SelectionModeEntered"
	EventSelectionModeExited  EventType = "SelectionModeExited"
	EventSelectionChanged     EventType = "SelectionChanged"
	EventAllSelected          EventType = "AllSelected"
	EventClipboardCopied      EventType = "ClipboardCopied"
	EventClipboardMerged      EventType = "ClipboardMerged"
	EventClipboardCleared     EventType = "ClipboardCleared"
	EventNotification         EventType = "Notification"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemDiscoveredEvent is emitted when the scanner finds a gallery item
type ItemDiscoveredEvent struct {
	Item MediaItem
}

func (e ItemDiscoveredEvent) Type() EventType { return EventItemDiscovered }

// ScanStartedEvent is emitted when gallery scanning begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when gallery scanning completes
type ScanCompletedEvent struct {
	ItemsFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Root string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// SelectionModeEnteredEvent is emitted once per Inactive->Active transition.
// The navigation-history collaborator subscribes to it so a back action can
// leave selection mode again.
type SelectionModeEnteredEvent struct{}

func (e SelectionModeEnteredEvent) Type() EventType { return EventSelectionModeEntered }

// SelectionModeExitedEvent is emitted once per Active->Inactive transition
type SelectionModeExitedEvent struct{}

func (e SelectionModeExitedEvent) Type() EventType { return EventSelectionModeExited }

// SelectionChangedEvent is emitted whenever the selected set changes
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// AllSelectedEvent is emitted when every visible item becomes selected
type AllSelectedEvent struct {
	Paths []string
}

func (e AllSelectedEvent) Type() EventType { return EventAllSelected }

// ClipboardCopiedEvent is emitted when tags are copied to the tag clipboard
type ClipboardCopiedEvent struct {
	SourcePath string
	TagCount   int
}

func (e ClipboardCopiedEvent) Type() EventType { return EventClipboardCopied }

// ClipboardMergedEvent is emitted when tags are merged into the tag clipboard
type ClipboardMergedEvent struct {
	SourcePath string
	Added      int
}

func (e ClipboardMergedEvent) Type() EventType { return EventClipboardMerged }

// ClipboardClearedEvent is emitted when the tag clipboard is cleared
type ClipboardClearedEvent struct{}

func (e ClipboardClearedEvent) Type() EventType { return EventClipboardCleared }

// NotificationEvent carries a user-visible message (the toast collaborator)
type NotificationEvent struct {
	Message string
	IsError bool
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	GalleryDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

package eventbus

import (
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"

	"galleria/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventItemDiscovered       = domain.EventItemDiscovered
	EventScanStarted          = domain.EventScanStarted
	EventScanCompleted        = domain.EventScanCompleted
	EventScanRequested        = domain.EventScanRequested
	EventSelectionModeEntered = domain.EventSelectionModeEntered
	EventSelectionModeExited  = domain.EventSelectionModeExited
	EventSelectionChanged     = domain.EventSelectionChanged
	EventAllSelected          = domain.EventAllSelected
	EventClipboardCopied      = domain.EventClipboardCopied
	EventClipboardMerged      = domain.EventClipboardMerged
	EventClipboardCleared     = domain.EventClipboardCleared
	EventNotification         = domain.EventNotification
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
	EventError                = domain.EventError
)

// Re-export domain event types
type ItemDiscoveredEvent = domain.ItemDiscoveredEvent
type ScanStartedEvent = domain.ScanStartedEvent
type ScanCompletedEvent = domain.ScanCompletedEvent
type ScanRequestedEvent = domain.ScanRequestedEvent
type SelectionModeEnteredEvent = domain.SelectionModeEnteredEvent
type SelectionModeExitedEvent = domain.SelectionModeExitedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type AllSelectedEvent = domain.AllSelectedEvent
type ClipboardCopiedEvent = domain.ClipboardCopiedEvent
type ClipboardMergedEvent = domain.ClipboardMergedEvent
type ClipboardClearedEvent = domain.ClipboardClearedEvent
type NotificationEvent = domain.NotificationEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent) {}

func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Dispatch is synchronous:
// every operation runs to completion on the UI turn that triggered it, so a
// handler always observes the mutation that preceded the Publish call.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   int
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventSelectionChanged:
		// Too frequent to log
	default:
		log.Debugf("eventbus: publishing %s", event.Type())
	}

	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers can subscribe/unsubscribe while we dispatch
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.RUnlock()

	for _, sub := range subsCopy {
		safeCall(sub.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// safeCall invokes a handler, containing any panic so one bad subscriber
// cannot take the whole UI turn down with it.
func safeCall(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("event handler panic for %s: %v\nstack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

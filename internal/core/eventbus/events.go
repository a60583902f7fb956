package eventbus

import (
	"github.com/tandemview/tandem/internal/core/notify"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// DocumentLoadedPayload is emitted when a recognition result is loaded.
type DocumentLoadedPayload struct {
	Name     string
	Blocks   int
	Sections int
}

// MappingComputedPayload is emitted after the matcher runs for a document.
type MappingComputedPayload struct {
	Matched  int
	Blocks   int
	Sections int
}

// SyncNavigatePayload asks the renderer owning View to scroll entity ID
// into view.
type SyncNavigatePayload struct {
	View docsync.View
	ID   int
}

// SyncPrimaryPayload reports the new primary visible entity in a view.
type SyncPrimaryPayload struct {
	View docsync.View
	ID   int
}

// SyncSelectedPayload reports an explicit block selection.
type SyncSelectedPayload struct {
	Block int
}

// SyncToggledPayload reports a change of the scroll-sync toggle.
type SyncToggledPayload struct {
	Enabled bool
}

// NotificationPublishedPayload carries a transient user-facing message.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}

// PublishDocumentLoaded publishes a document.loaded event.
func (bus *EventBus) PublishDocumentLoaded(p DocumentLoadedPayload) {
	bus.send(EventDocumentLoaded, p)
}

// SubscribeDocumentLoaded registers a handler for document.loaded events.
func (bus *EventBus) SubscribeDocumentLoaded(fn func(DocumentLoadedPayload)) {
	bus.subscribe(EventDocumentLoaded, func(payload any) {
		if p, ok := payload.(DocumentLoadedPayload); ok {
			fn(p)
		}
	})
}

// PublishMappingComputed publishes a mapping.computed event.
func (bus *EventBus) PublishMappingComputed(p MappingComputedPayload) {
	bus.send(EventMappingComputed, p)
}

// SubscribeMappingComputed registers a handler for mapping.computed events.
func (bus *EventBus) SubscribeMappingComputed(fn func(MappingComputedPayload)) {
	bus.subscribe(EventMappingComputed, func(payload any) {
		if p, ok := payload.(MappingComputedPayload); ok {
			fn(p)
		}
	})
}

// PublishSyncNavigate publishes a sync.navigate event.
func (bus *EventBus) PublishSyncNavigate(p SyncNavigatePayload) {
	bus.send(EventSyncNavigate, p)
}

// SubscribeSyncNavigate registers a handler for sync.navigate events.
func (bus *EventBus) SubscribeSyncNavigate(fn func(SyncNavigatePayload)) {
	bus.subscribe(EventSyncNavigate, func(payload any) {
		if p, ok := payload.(SyncNavigatePayload); ok {
			fn(p)
		}
	})
}

// PublishSyncPrimary publishes a sync.primary event.
func (bus *EventBus) PublishSyncPrimary(p SyncPrimaryPayload) {
	bus.send(EventSyncPrimary, p)
}

// SubscribeSyncPrimary registers a handler for sync.primary events.
func (bus *EventBus) SubscribeSyncPrimary(fn func(SyncPrimaryPayload)) {
	bus.subscribe(EventSyncPrimary, func(payload any) {
		if p, ok := payload.(SyncPrimaryPayload); ok {
			fn(p)
		}
	})
}

// PublishSyncSelected publishes a sync.selected event.
func (bus *EventBus) PublishSyncSelected(p SyncSelectedPayload) {
	bus.send(EventSyncSelected, p)
}

// SubscribeSyncSelected registers a handler for sync.selected events.
func (bus *EventBus) SubscribeSyncSelected(fn func(SyncSelectedPayload)) {
	bus.subscribe(EventSyncSelected, func(payload any) {
		if p, ok := payload.(SyncSelectedPayload); ok {
			fn(p)
		}
	})
}

// PublishSyncToggled publishes a sync.toggled event.
func (bus *EventBus) PublishSyncToggled(p SyncToggledPayload) {
	bus.send(EventSyncToggled, p)
}

// SubscribeSyncToggled registers a handler for sync.toggled events.
func (bus *EventBus) SubscribeSyncToggled(fn func(SyncToggledPayload)) {
	bus.subscribe(EventSyncToggled, func(payload any) {
		if p, ok := payload.(SyncToggledPayload); ok {
			fn(p)
		}
	})
}

// PublishNotificationPublished publishes a notification.published event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeNotificationPublished registers a handler for notification.published events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(payload any) {
		if p, ok := payload.(NotificationPublishedPayload); ok {
			fn(p)
		}
	})
}

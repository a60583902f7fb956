package eventbus

import docsync "github.com/tandemview/tandem/internal/core/sync"

// SyncNotifier adapts the bus to the sync engine's Notifier interface,
// turning engine notifications into typed bus events for the renderers
// and status UI.
type SyncNotifier struct {
	bus *EventBus
}

// NewSyncNotifier wraps a bus for use as the engine's notifier.
func NewSyncNotifier(bus *EventBus) *SyncNotifier {
	return &SyncNotifier{bus: bus}
}

func (n *SyncNotifier) NavigateTo(view docsync.View, id int) {
	n.bus.PublishSyncNavigate(SyncNavigatePayload{View: view, ID: id})
}

func (n *SyncNotifier) PrimaryChanged(view docsync.View, id int) {
	n.bus.PublishSyncPrimary(SyncPrimaryPayload{View: view, ID: id})
}

func (n *SyncNotifier) Selected(blockIdx int) {
	n.bus.PublishSyncSelected(SyncSelectedPayload{Block: blockIdx})
}

func (n *SyncNotifier) SyncToggled(enabled bool) {
	n.bus.PublishSyncToggled(SyncToggledPayload{Enabled: enabled})
}

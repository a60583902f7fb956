package eventbus_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemview/tandem/internal/core/eventbus"
	"github.com/tandemview/tandem/internal/core/eventbus/testbus"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

func TestEventBus_typed_publish_reaches_subscriber(t *testing.T) {
	tb := testbus.New(t)

	tb.PublishSyncNavigate(eventbus.SyncNavigatePayload{View: docsync.ViewMarkup, ID: 4})

	tb.AssertPublished(t, eventbus.EventSyncNavigate)
	events := tb.Events()
	require.NotEmpty(t, events)
	payload, ok := events[0].Payload.(eventbus.SyncNavigatePayload)
	require.True(t, ok)
	assert.Equal(t, docsync.ViewMarkup, payload.View)
	assert.Equal(t, 4, payload.ID)
}

func TestEventBus_subscriber_panic_is_recovered(t *testing.T) {
	tb := testbus.New(t)

	var panicked atomic.Bool
	tb.OnPanic(func(_ eventbus.Event, _ any, _ any) {
		panicked.Store(true)
	})
	tb.SubscribeSyncToggled(func(eventbus.SyncToggledPayload) {
		panic("boom")
	})

	tb.PublishSyncToggled(eventbus.SyncToggledPayload{Enabled: true})

	// The panicking subscriber must not take down dispatch; the
	// recording subscriber still sees the event.
	tb.AssertPublished(t, eventbus.EventSyncToggled)
	assert.Eventually(t, panicked.Load, time.Second, 5*time.Millisecond)
}

func TestEventBus_full_buffer_drops_with_hook(t *testing.T) {
	bus := eventbus.New(1) // never started, so the buffer fills

	var drops atomic.Int32
	bus.OnDrop(func(eventbus.Event, any) {
		drops.Add(1)
	})

	bus.PublishSyncSelected(eventbus.SyncSelectedPayload{Block: 1})
	bus.PublishSyncSelected(eventbus.SyncSelectedPayload{Block: 2})

	assert.Equal(t, int32(1), drops.Load())
}

func TestSyncNotifier_forwards_engine_notifications(t *testing.T) {
	tb := testbus.New(t)
	notifier := eventbus.NewSyncNotifier(tb.EventBus)

	notifier.NavigateTo(docsync.ViewPage, 3)
	notifier.PrimaryChanged(docsync.ViewMarkup, 1)
	notifier.Selected(3)
	notifier.SyncToggled(false)

	tb.AssertPublished(t, eventbus.EventSyncNavigate)
	tb.AssertPublished(t, eventbus.EventSyncPrimary)
	tb.AssertPublished(t, eventbus.EventSyncSelected)
	tb.AssertPublished(t, eventbus.EventSyncToggled)
}

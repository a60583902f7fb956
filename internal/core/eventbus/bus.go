// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within tandem.
package eventbus

import (
	"context"
	"sync"
)

// Event names a bus event type.
type Event string

// All event types, kept sorted A-Z.
const (
	EventDocumentLoaded        Event = "document.loaded"
	EventMappingComputed       Event = "mapping.computed"
	EventNotificationPublished Event = "notification.published"
	EventSyncNavigate          Event = "sync.navigate"
	EventSyncPrimary           Event = "sync.primary"
	EventSyncSelected          Event = "sync.selected"
	EventSyncToggled           Event = "sync.toggled"
)

type envelope struct {
	event   Event
	payload any
}

// EventBus dispatches typed events to subscribers from a single
// buffered channel. Publishing never blocks; events are dropped (and
// the drop hook fired) when the buffer is full.
type EventBus struct {
	ch    chan envelope
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates a bus with the given buffer size.
func New(buffer int) *EventBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
	}
}

// Start runs the dispatch loop until ctx is cancelled. Subscriber
// panics are recovered and reported through the panic hook.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					bus.runOnPanic(env.event, env.payload, r)
				}
			}()
			fn(env.payload)
		}()
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()
	bus.runOnSubscribe(event)
}

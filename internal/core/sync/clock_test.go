package sync

import (
	"sort"
	"sync"
	"time"
)

// fakeClock is a manually advanced clock for deterministic timer tests.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, when: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward, firing due timers in deadline order.
// Callbacks run without the clock lock held so they may re-enter the
// clock or the engine.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.when.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].when.Before(due[j].when) })
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

// recordingNotifier captures engine notifications for assertions.
type recordingNotifier struct {
	mu          sync.Mutex
	navigations []EntityRef
	primaries   []EntityRef
	selections  []int
	toggles     []bool
}

func (r *recordingNotifier) NavigateTo(view View, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigations = append(r.navigations, EntityRef{View: view, ID: id})
}

func (r *recordingNotifier) PrimaryChanged(view View, id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.primaries = append(r.primaries, EntityRef{View: view, ID: id})
}

func (r *recordingNotifier) Selected(blockIdx int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections = append(r.selections, blockIdx)
}

func (r *recordingNotifier) SyncToggled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toggles = append(r.toggles, enabled)
}

func (r *recordingNotifier) Navigations() []EntityRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EntityRef, len(r.navigations))
	copy(out, r.navigations)
	return out
}

func (r *recordingNotifier) NavigationCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.navigations)
}

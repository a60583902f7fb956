package sync

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
	"github.com/tandemview/tandem/internal/core/match"
)

// Default timing constants; tunable via Options / config.
const (
	DefaultThrottle      = 100 * time.Millisecond
	DefaultQuietPeriod   = 150 * time.Millisecond
	DefaultHighlightTTL  = 2000 * time.Millisecond
	DefaultClickFeedback = 300 * time.Millisecond
)

// Notifier receives the engine's navigation notifications. Callbacks
// run on the goroutine that triggered them, after the engine lock is
// released; implementations must not block.
type Notifier interface {
	// NavigateTo asks the renderer owning view to programmatically
	// scroll entity id into view.
	NavigateTo(view View, id int)
	// PrimaryChanged reports the new primary visible entity in a view.
	PrimaryChanged(view View, id int)
	// Selected reports a new explicit block selection.
	Selected(blockIdx int)
	// SyncToggled reports a change of the scroll-sync toggle.
	SyncToggled(enabled bool)
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Throttle        time.Duration
	QuietPeriod     time.Duration
	HighlightTTL    time.Duration
	ClickFeedback   time.Duration
	MinVisibleRatio float64
	MinMatchScore   float64

	Clock    Clock
	Notifier Notifier
	Logger   zerolog.Logger
}

func (o *Options) applyDefaults() {
	if o.Throttle <= 0 {
		o.Throttle = DefaultThrottle
	}
	if o.QuietPeriod <= 0 {
		o.QuietPeriod = DefaultQuietPeriod
	}
	if o.HighlightTTL <= 0 {
		o.HighlightTTL = DefaultHighlightTTL
	}
	if o.ClickFeedback <= 0 {
		o.ClickFeedback = DefaultClickFeedback
	}
	if o.MinVisibleRatio <= 0 {
		o.MinVisibleRatio = DefaultMinVisibleRatio
	}
	if o.Clock == nil {
		o.Clock = RealClock()
	}
}

// note is a pending notification gathered under the engine lock and
// emitted after it is released, so notifier callbacks can safely call
// back into the engine.
type note struct {
	kind    noteKind
	ref     EntityRef
	enabled bool
}

type noteKind int

const (
	noteNavigate noteKind = iota
	notePrimary
	noteSelected
	noteToggled
)

// Engine is the facade over the sync state, viewport scanner, scroll
// coordinator, and interaction handling. Timers fire on their own
// goroutines, so all state is guarded by one mutex; timer callbacks
// re-check a sequence token so a stale callback against a torn-down
// session is a no-op.
type Engine struct {
	mu       sync.Mutex
	opts     Options
	log      zerolog.Logger
	clock    Clock
	notifier Notifier

	matcher   *match.Matcher
	state     State
	scanner   Scanner
	positions map[View]*PositionIndex

	coord    coordinator
	inter    interactions
	timerSeq uint64
	closed   bool
}

// NewEngine creates an engine with no document loaded.
func NewEngine(opts Options) *Engine {
	opts.applyDefaults()

	return &Engine{
		opts:     opts,
		log:      opts.Logger,
		clock:    opts.Clock,
		notifier: opts.Notifier,
		matcher:  match.New(opts.MinMatchScore, opts.Logger),
		state:    newState(),
		scanner:  Scanner{MinRatio: opts.MinVisibleRatio},
		positions: map[View]*PositionIndex{
			ViewPage:   newPositionIndex(),
			ViewMarkup: newPositionIndex(),
		},
	}
}

// SwitchDocument synchronously tears down the previous document's sync
// session — cancelling every pending timer and resetting state — before
// matching the new document's sections against its blocks. The computed
// mapping is returned for observability.
func (e *Engine) SwitchDocument(catalog *block.Catalog, sections []markup.Section) match.Mapping {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelAllTimersLocked()
	e.state.reset()
	for _, idx := range e.positions {
		idx.clear()
	}

	mapping := e.matcher.Match(catalog, sections)
	e.state.mapping = mapping

	e.log.Info().
		Int("blocks", catalog.Len()).
		Int("sections", len(sections)).
		Int("matched", mapping.Len()).
		Msg("document matched")

	return mapping
}

// OnScroll processes a scroll notification from a view.
func (e *Engine) OnScroll(source View, scrollTop, viewportHeight float64) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	notes := e.onScrollLocked(source, scrollTop, viewportHeight)
	e.mu.Unlock()
	e.emit(notes)
}

// Click processes an explicit click on an entity.
func (e *Engine) Click(view View, id int) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	notes := e.clickLocked(EntityRef{View: view, ID: id})
	e.mu.Unlock()
	e.emit(notes)
}

// Hover applies a preview highlight to the hovered entity's counterpart.
func (e *Engine) Hover(view View, id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.hoverLocked(EntityRef{View: view, ID: id})
}

// HoverEnd clears the preview highlight.
func (e *Engine) HoverEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hoverEndLocked()
}

// SetSyncEnabled toggles scroll sync. Disabling it also abandons any
// in-flight scroll session.
func (e *Engine) SetSyncEnabled(enabled bool) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state.syncEnabled = enabled
	if !enabled {
		e.cancelQuietTimer()
	}
	e.mu.Unlock()
	e.emit([]note{{kind: noteToggled, enabled: enabled}})
}

// ToggleSync flips the scroll-sync toggle and returns the new value.
func (e *Engine) ToggleSync() bool {
	e.mu.Lock()
	enabled := !e.state.syncEnabled
	e.mu.Unlock()
	e.SetSyncEnabled(enabled)
	return enabled
}

// SetExtents replaces a view's rendered entity positions wholesale.
// Renderers call this after every layout pass.
func (e *Engine) SetExtents(view View, extents map[int]Extent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := newPositionIndex()
	for id, ext := range extents {
		idx.set(id, ext)
	}
	e.positions[view] = idx
}

// Snapshot returns a read-only copy of the current sync state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.snapshot()
}

// Counterpart resolves an entity's mapped partner.
func (e *Engine) Counterpart(ref EntityRef) (EntityRef, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.counterpart(ref)
}

// Mapping returns the current block/section mapping.
func (e *Engine) Mapping() match.Mapping {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.mapping
}

// SyncEnabled reports the scroll-sync toggle.
func (e *Engine) SyncEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.syncEnabled
}

// Close cancels all pending timers. The engine ignores events after
// closing; a stale timer that already escaped Stop sees closed and does
// nothing.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelAllTimersLocked()
	e.closed = true
}

func (e *Engine) cancelAllTimersLocked() {
	e.cancelQuietTimer()
	e.cancelInteractionTimers()
}

func (e *Engine) emit(notes []note) {
	if e.notifier == nil {
		return
	}
	for _, n := range notes {
		switch n.kind {
		case noteNavigate:
			e.notifier.NavigateTo(n.ref.View, n.ref.ID)
		case notePrimary:
			e.notifier.PrimaryChanged(n.ref.View, n.ref.ID)
		case noteSelected:
			e.notifier.Selected(n.ref.ID)
		case noteToggled:
			e.notifier.SyncToggled(n.enabled)
		}
	}
}

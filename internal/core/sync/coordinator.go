package sync

import "time"

// phase is the coordinator's scroll-session state.
type phase int

const (
	phaseIdle phase = iota
	phaseScrolling
)

// coordinator is the scroll-sync state machine: IDLE until a view
// scrolls, SCROLLING(source) while that view drives, back to IDLE after
// a quiet period with no further events. While SCROLLING(A), events
// from B are echoes of our own programmatic scroll and are ignored —
// that is the feedback-loop guard.
type coordinator struct {
	phase         phase
	source        View
	lastProcessed time.Time
	quietTimer    Timer
	quietSeq      uint64
}

// OnScroll handles a scroll notification from a view. Caller holds the
// engine lock.
func (e *Engine) onScrollLocked(source View, scrollTop, viewportHeight float64) []note {
	if !e.state.syncEnabled {
		return nil
	}

	c := &e.coord
	now := e.clock.Now()

	switch c.phase {
	case phaseScrolling:
		if c.source != source {
			// Echo from the view we are programmatically scrolling.
			return nil
		}
		e.armQuietTimer()
		if now.Sub(c.lastProcessed) < e.opts.Throttle {
			// Throttled; the quiet timer was still pushed out.
			return nil
		}
	case phaseIdle:
		c.phase = phaseScrolling
		c.source = source
		e.armQuietTimer()
	}

	c.lastProcessed = now

	visible := e.scanner.Visible(scrollTop, viewportHeight, e.positions[source])
	if len(visible) == 0 {
		return nil
	}
	primary := visible[0]

	notes := []note{{kind: notePrimary, ref: EntityRef{View: source, ID: primary}}}

	counterpart, ok := e.state.counterpart(EntityRef{View: source, ID: primary})
	if !ok {
		// Unmapped content; nothing to reveal on the other side.
		return notes
	}

	e.log.Debug().
		Stringer("source", source).
		Int("primary", primary).
		Int("counterpart", counterpart.ID).
		Msg("scroll sync")

	return append(notes, note{kind: noteNavigate, ref: counterpart})
}

// scrollToLocked drives the counterpart view to reveal target after an
// explicit selection in origin. It enters SCROLLING(origin) so the echo
// events fired by the programmatic scroll are guarded exactly like
// scroll-sync echoes. Caller holds the engine lock.
func (e *Engine) scrollToLocked(origin View, target EntityRef) []note {
	e.coord.phase = phaseScrolling
	e.coord.source = origin
	e.coord.lastProcessed = e.clock.Now()
	e.armQuietTimer()
	return []note{{kind: noteNavigate, ref: target}}
}

// armQuietTimer (re)starts the quiet-period countdown. A stale timer
// that fires after being superseded sees a sequence mismatch and does
// nothing.
func (e *Engine) armQuietTimer() {
	if e.coord.quietTimer != nil {
		e.coord.quietTimer.Stop()
	}
	e.timerSeq++
	seq := e.timerSeq
	e.coord.quietSeq = seq

	e.coord.quietTimer = e.clock.AfterFunc(e.opts.QuietPeriod, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || e.coord.quietSeq != seq {
			return
		}
		e.coord.phase = phaseIdle
		e.coord.quietTimer = nil
	})
}

func (e *Engine) cancelQuietTimer() {
	if e.coord.quietTimer != nil {
		e.coord.quietTimer.Stop()
		e.coord.quietTimer = nil
	}
	e.coord.quietSeq = 0
	e.coord.phase = phaseIdle
}

package sync

// interactions holds the explicit-selection timers: the highlight TTL
// started by a click and the short click-feedback flash.
type interactions struct {
	highlightTimer Timer
	highlightSeq   uint64
	feedbackTimer  Timer
	feedbackSeq    uint64
}

// clickLocked handles an explicit click on an entity. Click feedback is
// applied to the clicked entity unconditionally; selection, highlight,
// and counterpart scroll happen only when a mapping exists. An entity
// with no counterpart is a normal outcome of matching, not an error.
// Caller holds the engine lock.
func (e *Engine) clickLocked(ref EntityRef) []note {
	e.state.feedback = ref
	e.state.hasFeedback = true
	e.armFeedbackTimer()

	counterpart, ok := e.state.counterpart(ref)
	if !ok {
		e.log.Debug().
			Stringer("view", ref.View).
			Int("id", ref.ID).
			Msg("click on unmapped entity")
		return nil
	}

	blockIdx := ref.ID
	if ref.View == ViewMarkup {
		blockIdx = counterpart.ID
	}
	e.state.selected = blockIdx
	e.state.hasSelected = true

	e.state.highlighted = map[EntityRef]struct{}{
		ref:         {},
		counterpart: {},
	}
	e.armHighlightTimer()

	notes := []note{{kind: noteSelected, ref: EntityRef{View: ViewPage, ID: blockIdx}}}
	if e.state.syncEnabled {
		notes = append(notes, e.scrollToLocked(ref.View, counterpart)...)
	}
	return notes
}

// hoverLocked applies the lighter preview highlight to the counterpart
// of the hovered entity. No scrolling, no timers. Caller holds the
// engine lock.
func (e *Engine) hoverLocked(ref EntityRef) {
	counterpart, ok := e.state.counterpart(ref)
	if !ok {
		e.state.hasHover = false
		return
	}
	e.state.hovered = counterpart
	e.state.hasHover = true
}

func (e *Engine) hoverEndLocked() {
	e.state.hasHover = false
}

// armHighlightTimer starts the highlight TTL. A newer click supersedes
// the pending expiry via the sequence token.
func (e *Engine) armHighlightTimer() {
	if e.inter.highlightTimer != nil {
		e.inter.highlightTimer.Stop()
	}
	e.timerSeq++
	seq := e.timerSeq
	e.inter.highlightSeq = seq

	e.inter.highlightTimer = e.clock.AfterFunc(e.opts.HighlightTTL, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || e.inter.highlightSeq != seq {
			return
		}
		e.state.highlighted = make(map[EntityRef]struct{})
		e.inter.highlightTimer = nil
	})
}

func (e *Engine) armFeedbackTimer() {
	if e.inter.feedbackTimer != nil {
		e.inter.feedbackTimer.Stop()
	}
	e.timerSeq++
	seq := e.timerSeq
	e.inter.feedbackSeq = seq

	e.inter.feedbackTimer = e.clock.AfterFunc(e.opts.ClickFeedback, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed || e.inter.feedbackSeq != seq {
			return
		}
		e.state.hasFeedback = false
		e.inter.feedbackTimer = nil
	})
}

func (e *Engine) cancelInteractionTimers() {
	if e.inter.highlightTimer != nil {
		e.inter.highlightTimer.Stop()
		e.inter.highlightTimer = nil
	}
	if e.inter.feedbackTimer != nil {
		e.inter.feedbackTimer.Stop()
		e.inter.feedbackTimer = nil
	}
	e.inter.highlightSeq = 0
	e.inter.feedbackSeq = 0
}

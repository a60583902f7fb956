package sync

import "github.com/tandemview/tandem/internal/core/match"

// State holds the selection, highlight, and mapping state shared by the
// two views. All fields are package-private; mutation happens only
// through the engine's coordinator and interaction paths, under the
// engine lock.
type State struct {
	mapping     match.Mapping
	selected    int
	hasSelected bool
	highlighted map[EntityRef]struct{}
	hovered     EntityRef
	hasHover    bool
	feedback    EntityRef
	hasFeedback bool
	syncEnabled bool
}

func newState() State {
	return State{
		highlighted: make(map[EntityRef]struct{}),
		syncEnabled: true,
	}
}

// reset clears everything that belongs to the previous document.
// The sync toggle is a user preference, not document state, and survives.
func (s *State) reset() {
	s.mapping = match.Mapping{}
	s.selected = 0
	s.hasSelected = false
	s.highlighted = make(map[EntityRef]struct{})
	s.hasHover = false
	s.hasFeedback = false
}

// counterpart resolves an entity's mapped partner in the opposing view.
func (s *State) counterpart(ref EntityRef) (EntityRef, bool) {
	switch ref.View {
	case ViewPage:
		if sec, ok := s.mapping.SectionFor(ref.ID); ok {
			return EntityRef{View: ViewMarkup, ID: sec}, true
		}
	case ViewMarkup:
		if blk, ok := s.mapping.BlockFor(ref.ID); ok {
			return EntityRef{View: ViewPage, ID: blk}, true
		}
	}
	return EntityRef{}, false
}

// Snapshot is a read-only copy of the sync state, taken atomically for
// the renderers to apply visual emphasis from.
type Snapshot struct {
	Selected     int
	HasSelection bool
	Highlighted  map[EntityRef]struct{}
	Hovered      EntityRef
	HasHover     bool
	Feedback     EntityRef
	HasFeedback  bool
	SyncEnabled  bool
}

// IsHighlighted reports whether ref carries the click highlight.
func (s Snapshot) IsHighlighted(ref EntityRef) bool {
	_, ok := s.Highlighted[ref]
	return ok
}

// IsHovered reports whether ref carries the hover preview highlight.
func (s Snapshot) IsHovered(ref EntityRef) bool {
	return s.HasHover && s.Hovered == ref
}

// IsFeedback reports whether ref carries the transient click feedback.
func (s Snapshot) IsFeedback(ref EntityRef) bool {
	return s.HasFeedback && s.Feedback == ref
}

func (s *State) snapshot() Snapshot {
	highlighted := make(map[EntityRef]struct{}, len(s.highlighted))
	for ref := range s.highlighted {
		highlighted[ref] = struct{}{}
	}
	return Snapshot{
		Selected:     s.selected,
		HasSelection: s.hasSelected,
		Highlighted:  highlighted,
		Hovered:      s.hovered,
		HasHover:     s.hasHover,
		Feedback:     s.feedback,
		HasFeedback:  s.hasFeedback,
		SyncEnabled:  s.syncEnabled,
	}
}

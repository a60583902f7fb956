// Package sync couples the page-layout and markup views of one
// recognized document: it owns the selection/highlight state, decides
// which entity is primary in a scrolling viewport, and drives the
// counterpart view without feedback loops.
package sync

// View tags which of the two coupled views an event or entity belongs to.
type View int

const (
	// ViewPage is the page-layout rendering of recognized blocks.
	ViewPage View = iota
	// ViewMarkup is the generated-markup rendering.
	ViewMarkup
)

// String returns the view's name.
func (v View) String() string {
	switch v {
	case ViewPage:
		return "page"
	case ViewMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Other returns the opposing view.
func (v View) Other() View {
	if v == ViewPage {
		return ViewMarkup
	}
	return ViewPage
}

// EntityRef identifies an entity within a view: a block index in the
// page view, a section ordinal in the markup view. The view tag matters
// because the two id spaces overlap numerically.
type EntityRef struct {
	View View
	ID   int
}

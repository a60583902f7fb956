package sync

import "sort"

// Extent is an entity's rendered top/bottom within its scrollable
// container, in the container's own units (lines in a terminal view).
type Extent struct {
	Top    float64
	Bottom float64
}

// Height returns the entity's rendered height.
func (e Extent) Height() float64 { return e.Bottom - e.Top }

// PositionIndex holds the current rendered extents for one view's
// entities. Renderers replace it wholesale after every layout pass;
// entities that are not yet rendered simply have no entry.
type PositionIndex struct {
	extents map[int]Extent
}

func newPositionIndex() *PositionIndex {
	return &PositionIndex{extents: make(map[int]Extent)}
}

func (p *PositionIndex) set(id int, ext Extent) {
	p.extents[id] = ext
}

func (p *PositionIndex) lookup(id int) (Extent, bool) {
	ext, ok := p.extents[id]
	return ext, ok
}

func (p *PositionIndex) clear() {
	p.extents = make(map[int]Extent)
}

// DefaultMinVisibleRatio is the fraction of an entity that must be
// inside the viewport before it counts as visible.
const DefaultMinVisibleRatio = 0.10

// Scanner computes which entities are visible in a viewport and in what
// order. It is stateless; positions come from the per-view index.
type Scanner struct {
	// MinRatio is the visibility threshold; an entity is visible only
	// if intersection/height exceeds it strictly.
	MinRatio float64
}

// Visible returns the ids of entities visible in
// [scrollTop, scrollTop+viewportHeight], ordered by ascending top
// position. The first entry is the primary entity for sync purposes.
// Entities with no known position, or with zero height, are skipped.
func (s Scanner) Visible(scrollTop, viewportHeight float64, positions *PositionIndex) []int {
	if positions == nil || viewportHeight <= 0 {
		return nil
	}

	bottom := scrollTop + viewportHeight

	type hit struct {
		id  int
		top float64
	}
	var hits []hit

	for id, ext := range positions.extents {
		height := ext.Height()
		if height <= 0 {
			continue
		}

		overlapTop := ext.Top
		if scrollTop > overlapTop {
			overlapTop = scrollTop
		}
		overlapBottom := ext.Bottom
		if bottom < overlapBottom {
			overlapBottom = bottom
		}
		if overlapBottom <= overlapTop {
			continue
		}

		if (overlapBottom-overlapTop)/height > s.MinRatio {
			hits = append(hits, hit{id: id, top: ext.Top})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].top != hits[j].top {
			return hits[i].top < hits[j].top
		}
		return hits[i].id < hits[j].id
	})

	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.id
	}
	return out
}

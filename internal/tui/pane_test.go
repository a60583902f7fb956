package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docsync "github.com/tandemview/tandem/internal/core/sync"
)

func newTestPane(lines int) pane {
	p := newPane("test")
	p.setSize(40, 10)

	content := make([]string, lines)
	owner := make([]int, lines)
	extents := make(map[int]docsync.Extent)
	for i := range content {
		content[i] = "line"
		id := i / 5 // five lines per entity
		owner[i] = id
		ext := extents[id]
		if ext.Height() == 0 {
			ext.Top = float64(i)
		}
		ext.Bottom = float64(i + 1)
		extents[id] = ext
	}
	p.setContent(content, owner, extents)
	return p
}

func TestPane_entityAt_maps_lines_to_owners(t *testing.T) {
	p := newTestPane(20)

	id, ok := p.entityAt(0)
	require.True(t, ok)
	assert.Equal(t, 0, id)

	id, ok = p.entityAt(12)
	require.True(t, ok)
	assert.Equal(t, 2, id)

	_, ok = p.entityAt(99)
	assert.False(t, ok)
	_, ok = p.entityAt(-1)
	assert.False(t, ok)
}

func TestPane_entityAt_skips_filler_lines(t *testing.T) {
	p := newPane("test")
	p.setContent([]string{"a", "", "b"}, []int{0, -1, 1}, map[int]docsync.Extent{
		0: {Top: 0, Bottom: 1},
		1: {Top: 2, Bottom: 3},
	})

	_, ok := p.entityAt(1)
	assert.False(t, ok)
}

func TestPane_primaryEntity_picks_topmost_visible(t *testing.T) {
	p := newTestPane(40)
	p.vp.SetYOffset(12)

	// Entity 2 spans lines 10..15; three of its five lines are visible.
	id, ok := p.primaryEntity(0.10)
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestPane_primaryEntity_excludes_barely_visible(t *testing.T) {
	p := newPane("test")
	p.setSize(40, 10)

	lines := make([]string, 100)
	owner := make([]int, 100)
	for i := range lines {
		lines[i] = "x"
		if i < 30 {
			owner[i] = 0
		} else {
			owner[i] = -1
		}
	}
	// One big entity, scrolled so under 10% overlaps the viewport.
	p.setContent(lines, owner, map[int]docsync.Extent{
		0: {Top: 0, Bottom: 30},
	})
	p.vp.SetYOffset(28)

	_, ok := p.primaryEntity(0.10)
	assert.False(t, ok)
}

func TestPane_applyNavigate_centers_target_in_upper_third(t *testing.T) {
	p := newTestPane(100)

	p.applyNavigate(10) // lines 50..55
	assert.Equal(t, 50-10/3, p.vp.YOffset)

	p.applyNavigate(0)
	assert.Equal(t, 0, p.vp.YOffset)
}

func TestPane_setContent_preserves_offset(t *testing.T) {
	p := newTestPane(40)
	p.vp.SetYOffset(7)

	replacement := make([]string, 30)
	for i := range replacement {
		replacement[i] = "y"
	}
	p.setContent(replacement, make([]int, 30), nil)
	assert.Equal(t, 7, p.vp.YOffset)
}

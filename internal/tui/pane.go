package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/tandemview/tandem/internal/core/styles"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// pane is the shared scrollable-view state for the two document panes:
// a viewport over rendered lines plus the line->entity geometry the
// sync engine scans.
type pane struct {
	vp        viewport.Model
	title     string
	focused   bool
	extents   map[int]docsync.Extent
	lineOwner []int // entity id per content line, -1 for filler
}

func newPane(title string) pane {
	return pane{
		vp:      viewport.New(0, 0),
		title:   title,
		extents: make(map[int]docsync.Extent),
	}
}

func (p *pane) setSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

// setContent installs rendered lines and their entity geometry,
// preserving the current scroll offset where possible.
func (p *pane) setContent(lines []string, owner []int, extents map[int]docsync.Extent) {
	offset := p.vp.YOffset
	p.vp.SetContent(strings.Join(lines, "\n"))
	p.vp.SetYOffset(offset)
	p.lineOwner = owner
	p.extents = extents
}

func (p *pane) scrollTop() float64 {
	return float64(p.vp.YOffset)
}

func (p *pane) viewportHeight() float64 {
	return float64(p.vp.Height)
}

// entityAt returns the entity owning a content line.
func (p *pane) entityAt(line int) (int, bool) {
	if line < 0 || line >= len(p.lineOwner) || p.lineOwner[line] < 0 {
		return 0, false
	}
	return p.lineOwner[line], true
}

// primaryEntity returns the topmost entity whose visible fraction
// exceeds minRatio, mirroring the engine's own primary resolution.
func (p *pane) primaryEntity(minRatio float64) (int, bool) {
	top := p.scrollTop()
	bottom := top + p.viewportHeight()

	bestID := 0
	bestTop := 0.0
	found := false
	for id, ext := range p.extents {
		height := ext.Height()
		if height <= 0 {
			continue
		}
		overlapTop := max(ext.Top, top)
		overlapBottom := min(ext.Bottom, bottom)
		if overlapBottom <= overlapTop {
			continue
		}
		if (overlapBottom-overlapTop)/height <= minRatio {
			continue
		}
		if !found || ext.Top < bestTop {
			found = true
			bestID = id
			bestTop = ext.Top
		}
	}
	return bestID, found
}

// applyNavigate scrolls the pane so the entity sits a third of the way
// down the viewport.
func (p *pane) applyNavigate(id int) {
	ext, ok := p.extents[id]
	if !ok {
		return
	}
	target := int(ext.Top) - p.vp.Height/3
	if target < 0 {
		target = 0
	}
	p.vp.SetYOffset(target)
}

// view renders the framed pane with its title.
func (p *pane) view() string {
	border := styles.PaneBorderStyle
	title := styles.TextMutedStyle
	if p.focused {
		border = styles.PaneActiveBorderStyle
		title = styles.PaneTitleStyle
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title.Render(p.title), p.vp.View())
	return border.Render(content)
}

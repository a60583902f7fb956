package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/styles"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// pageView reconstructs the scanned pages from block geometry: blocks
// appear as boxes in reading order under per-page dividers. Emphasis
// only recolors borders, so the line geometry is stable across
// highlight changes.
type pageView struct {
	pane
	doc *document.Document
}

func newPageView() *pageView {
	return &pageView{pane: newPane("Pages")}
}

func (v *pageView) setDocument(doc *document.Document) {
	v.doc = doc
	v.vp.GotoTop()
}

// refresh rebuilds the rendered content with the given emphasis state
// and returns the block extents for the engine's position index.
func (v *pageView) refresh(snap docsync.Snapshot) map[int]docsync.Extent {
	if v.doc == nil || v.vp.Width <= 0 {
		return nil
	}

	innerWidth := v.vp.Width
	textWidth := innerWidth - 4 // box border + padding
	if textWidth < 8 {
		textWidth = 8
	}

	var lines []string
	var owner []int
	extents := make(map[int]docsync.Extent)

	appendLines := func(rendered string, id int) {
		for _, line := range strings.Split(rendered, "\n") {
			lines = append(lines, line)
			owner = append(owner, id)
		}
	}

	for page := 1; page <= v.doc.Catalog.Pages(); page++ {
		blocks := v.doc.Catalog.OnPage(page)
		if len(blocks) == 0 {
			continue
		}

		divider := styles.PageDividerStyle.Render(
			fmt.Sprintf("── page %d %s", page, strings.Repeat("─", max(0, innerWidth-11))))
		appendLines(divider, -1)

		for _, b := range blocks {
			ref := docsync.EntityRef{View: docsync.ViewPage, ID: b.Index}
			label := styles.BlockLabelStyle.Render(
				fmt.Sprintf("%s %d", styles.BlockIcon(b.Type), b.Index))

			start := len(lines)
			appendLines(label, b.Index)
			appendLines(v.blockBox(b, ref, snap, textWidth), b.Index)
			extents[b.Index] = docsync.Extent{
				Top:    float64(start),
				Bottom: float64(len(lines)),
			}

			appendLines("", -1)
		}
	}

	v.setContent(lines, owner, extents)
	return extents
}

// blockBox renders one block's text in its emphasis box.
func (v *pageView) blockBox(b block.Block, ref docsync.EntityRef, snap docsync.Snapshot, textWidth int) string {
	text := strings.TrimSpace(b.Text)
	if text == "" {
		text = styles.TextMutedStyle.Render("(no recognized text)")
	}
	wrapped := wordwrap.String(text, textWidth)
	return v.boxStyle(ref, snap).Width(textWidth + 2).Render(wrapped)
}

// boxStyle picks the emphasis style, strongest first.
func (v *pageView) boxStyle(ref docsync.EntityRef, snap docsync.Snapshot) lipgloss.Style {
	switch {
	case snap.IsFeedback(ref):
		return styles.BlockFeedbackStyle
	case snap.HasSelection && snap.Selected == ref.ID:
		return styles.BlockSelectedStyle
	case snap.IsHighlighted(ref):
		return styles.BlockHighlightStyle
	case snap.IsHovered(ref):
		return styles.BlockHoverStyle
	default:
		return styles.BlockBoxStyle
	}
}

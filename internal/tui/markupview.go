package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/styles"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

const gutterWidth = 2

// markupView renders the generated markup with glamour, one section at
// a time so each section's line extent is known for the position index.
// Emphasis is a colored gutter marker, leaving the cached glamour
// output untouched.
type markupView struct {
	pane
	doc           *document.Document
	markdownStyle string
	log           zerolog.Logger

	sectionLines  [][]string // rendered lines per section ordinal
	renderedWidth int
}

func newMarkupView(markdownStyle string, logger zerolog.Logger) *markupView {
	return &markupView{
		pane:          newPane("Markup"),
		markdownStyle: markdownStyle,
		log:           logger,
	}
}

func (v *markupView) setDocument(doc *document.Document) {
	v.doc = doc
	v.renderedWidth = 0 // force re-render
	v.vp.GotoTop()
}

// renderSections runs glamour once per section at the current width.
func (v *markupView) renderSections() {
	wrapWidth := v.vp.Width - gutterWidth
	if v.doc == nil || wrapWidth <= 0 || v.renderedWidth == wrapWidth {
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(v.markdownStyle),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		v.log.Warn().Err(err).Msg("glamour renderer unavailable, rendering raw markup")
		renderer = nil
	}

	v.sectionLines = make([][]string, len(v.doc.Sections))
	for i, sec := range v.doc.Sections {
		rendered := sec.Raw
		if renderer != nil {
			if out, err := renderer.Render(sec.Raw); err == nil {
				rendered = out
			}
		}
		rendered = strings.Trim(rendered, "\n")
		if rendered == "" {
			rendered = sec.Raw
		}
		v.sectionLines[i] = strings.Split(rendered, "\n")
	}
	v.renderedWidth = wrapWidth
}

// refresh assembles the gutter-marked content and returns the section
// extents for the engine's position index.
func (v *markupView) refresh(snap docsync.Snapshot) map[int]docsync.Extent {
	if v.doc == nil || v.vp.Width <= 0 {
		return nil
	}
	v.renderSections()

	var lines []string
	var owner []int
	extents := make(map[int]docsync.Extent)

	for i, secLines := range v.sectionLines {
		ref := docsync.EntityRef{View: docsync.ViewMarkup, ID: i}
		gutter := v.gutter(ref, snap)

		start := len(lines)
		for _, line := range secLines {
			lines = append(lines, gutter+line)
			owner = append(owner, i)
		}
		extents[i] = docsync.Extent{
			Top:    float64(start),
			Bottom: float64(len(lines)),
		}

		lines = append(lines, "")
		owner = append(owner, -1)
	}

	v.setContent(lines, owner, extents)
	return extents
}

// gutter renders the two-character emphasis marker for a section.
func (v *markupView) gutter(ref docsync.EntityRef, snap docsync.Snapshot) string {
	switch {
	case snap.IsFeedback(ref), snap.IsHighlighted(ref):
		return styles.SectionHighlightMarker.Render("┃") + " "
	case snap.IsHovered(ref):
		return styles.SectionHoverMarker.Render("┃") + " "
	default:
		return styles.SectionMarkerStyle.Render("│") + " "
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tandemview/tandem/internal/core/styles"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// statusBar summarizes the loaded document, match coverage, sync state
// and the current primary entity.
type statusBar struct {
	docName     string
	docPos      string // "2/5" when multiple documents are loaded
	matched     int
	blocks      int
	sections    int
	primary     string
	selected    int
	hasSelected bool
	syncActive  bool
}

func (s *statusBar) setDocument(name, pos string, matched, blocks, sections int) {
	s.docName = name
	s.docPos = pos
	s.matched = matched
	s.blocks = blocks
	s.sections = sections
	s.primary = ""
	s.hasSelected = false
}

func (s *statusBar) setSelected(block int) {
	s.selected = block
	s.hasSelected = true
}

func (s *statusBar) setPrimary(view docsync.View, id int) {
	switch view {
	case docsync.ViewPage:
		s.primary = fmt.Sprintf("block %d", id)
	case docsync.ViewMarkup:
		s.primary = fmt.Sprintf("section %d", id)
	}
}

func (s *statusBar) render(width int) string {
	name := s.docName
	if name == "" {
		name = "no document"
	}
	if s.docPos != "" {
		name = fmt.Sprintf("%s (%s)", name, s.docPos)
	}

	parts := []string{
		styles.StatusKeyStyle.Render(name),
		fmt.Sprintf("matched %d/%d blocks, %d sections", s.matched, s.blocks, s.sections),
	}
	if s.primary != "" {
		parts = append(parts, "at "+s.primary)
	}
	if s.hasSelected {
		parts = append(parts, styles.StatusKeyStyle.Render(fmt.Sprintf("sel block %d", s.selected)))
	}
	if s.syncActive {
		parts = append(parts, styles.StatusSyncOnStyle.Render("sync on"))
	} else {
		parts = append(parts, styles.StatusSyncOffStyle.Render("sync off"))
	}

	line := strings.Join(parts, styles.TextMutedStyle.Render("  •  "))
	return styles.StatusBarStyle.Width(width).Render(
		lipgloss.NewStyle().MaxWidth(width).Render(line))
}

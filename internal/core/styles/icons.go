package styles

import (
	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
)

// BlockIcon returns the display glyph for a block type.
func BlockIcon(t block.Type) string {
	switch t {
	case block.TypeTitle:
		return "§"
	case block.TypeTable:
		return "▦"
	case block.TypeImage:
		return "▣"
	case block.TypeFormula:
		return "∑"
	default:
		return "¶"
	}
}

// SectionIcon returns the display glyph for a markup section kind.
func SectionIcon(k markup.Kind) string {
	switch k {
	case markup.KindHeading:
		return "§"
	case markup.KindList:
		return "•"
	case markup.KindTable:
		return "▦"
	case markup.KindCode:
		return "‹›"
	case markup.KindQuote:
		return "”"
	case markup.KindImage:
		return "▣"
	case markup.KindFormula:
		return "∑"
	default:
		return "¶"
	}
}

package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Kind classifies a section by its leading markup construct.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindList
	KindTable
	KindCode
	KindQuote
	KindImage
	KindFormula
	KindOther
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindCode:
		return "code"
	case KindQuote:
		return "quote"
	case KindImage:
		return "image"
	case KindFormula:
		return "formula"
	default:
		return "other"
	}
}

// parser is shared; goldmark parsers are safe for concurrent use.
var parser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// classify parses a section and inspects its first block node.
func classify(raw string) (kind Kind, heading string, level int) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return KindOther, "", 0
	}

	// Display-math sections are emitted by the recognition pipeline as
	// $$...$$ runs, which plain markdown parses as a paragraph.
	if strings.HasPrefix(trimmed, "$$") {
		return KindFormula, "", 0
	}

	src := []byte(raw)
	doc := parser.Parser().Parse(text.NewReader(src))

	node := doc.FirstChild()
	if node == nil {
		return KindOther, "", 0
	}

	switch n := node.(type) {
	case *ast.Heading:
		return KindHeading, string(n.Text(src)), n.Level
	case *ast.List:
		return KindList, "", 0
	case *east.Table:
		return KindTable, "", 0
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return KindCode, "", 0
	case *ast.Blockquote:
		return KindQuote, "", 0
	case *ast.Paragraph:
		if img := soleImage(n); img {
			return KindImage, "", 0
		}
		return KindParagraph, "", 0
	case *ast.HTMLBlock:
		if strings.Contains(trimmed, "<img") {
			return KindImage, "", 0
		}
		return KindOther, "", 0
	default:
		return KindOther, "", 0
	}
}

// soleImage reports whether a paragraph consists of a single image node.
func soleImage(p *ast.Paragraph) bool {
	child := p.FirstChild()
	if child == nil || child.NextSibling() != nil {
		return false
	}
	_, ok := child.(*ast.Image)
	return ok
}

// Package document loads recognition results — a generated-markup file
// plus block data produced by the upstream pipeline — from an unpacked
// result directory.
package document

import (
	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
)

// Document is one loaded recognition result.
type Document struct {
	Name     string
	Dir      string // result directory, empty when loaded from explicit files
	Markup   string
	Catalog  *block.Catalog
	Sections []markup.Section
}

// Ref points at a discovered but not yet loaded result.
type Ref struct {
	Name       string
	Dir        string
	MarkupPath string
	BlocksPath string
}

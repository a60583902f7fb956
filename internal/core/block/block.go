// Package block defines the recognized-block domain types and the read-only
// catalog the sync engine consumes.
package block

// Type classifies a recognized block.
// ENUM(text, title, table, image, formula).
type Type string

// Block types produced by the recognition pipeline.
const (
	TypeText    Type = "text"
	TypeTitle   Type = "title"
	TypeTable   Type = "table"
	TypeImage   Type = "image"
	TypeFormula Type = "formula"
)

// Valid reports whether t is one of the known block types.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeTitle, TypeTable, TypeImage, TypeFormula:
		return true
	}
	return false
}

// BBox is a block's bounding box in page coordinates, corner form.
// X0,Y0 is the top-left corner and X1,Y1 the bottom-right; the recognition
// pipeline emits boxes with the Y axis growing downward.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Valid reports whether the box has positive area.
func (b BBox) Valid() bool {
	return b.X1 > b.X0 && b.Y1 > b.Y0
}

// Block is one recognized content unit. Blocks are immutable once produced;
// the catalog owns them for the lifetime of the loaded document.
type Block struct {
	Index int    `json:"index"` // unique, assigned upstream, >= 0
	Type  Type   `json:"type"`
	Page  int    `json:"page"` // 1-based page number
	BBox  BBox   `json:"bbox"`
	Text  string `json:"text"` // concatenated recognized text, may be empty
}

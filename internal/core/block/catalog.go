package block

import (
	"sort"

	"github.com/rs/zerolog"
)

// Catalog is the read-only set of valid blocks for one loaded document.
// Blocks that fail ingestion validation are excluded at construction and
// never reach matching or viewport scanning.
type Catalog struct {
	blocks  []Block
	byIndex map[int]int // block index -> position in blocks
}

// NewCatalog validates and ingests blocks. Invalid blocks (negative or
// duplicate index, page < 1, degenerate bounding box) are logged at warn
// level and dropped; ingestion itself never fails.
func NewCatalog(blocks []Block, logger zerolog.Logger) *Catalog {
	c := &Catalog{
		blocks:  make([]Block, 0, len(blocks)),
		byIndex: make(map[int]int, len(blocks)),
	}

	for _, b := range blocks {
		if reason := validate(b); reason != "" {
			logger.Warn().
				Int("index", b.Index).
				Str("reason", reason).
				Msg("block rejected at ingestion")
			continue
		}
		if _, dup := c.byIndex[b.Index]; dup {
			logger.Warn().
				Int("index", b.Index).
				Str("reason", "duplicate index").
				Msg("block rejected at ingestion")
			continue
		}
		if !b.Type.Valid() {
			// Unknown types degrade to text rather than losing content.
			b.Type = TypeText
		}
		c.byIndex[b.Index] = len(c.blocks)
		c.blocks = append(c.blocks, b)
	}

	return c
}

func validate(b Block) string {
	switch {
	case b.Index < 0:
		return "negative index"
	case b.Page < 1:
		return "page out of range"
	case !b.BBox.Valid():
		return "degenerate bounding box"
	}
	return ""
}

// Len returns the number of ingested blocks.
func (c *Catalog) Len() int {
	return len(c.blocks)
}

// All returns the ingested blocks in their original order.
func (c *Catalog) All() []Block {
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Get returns the block with the given upstream index.
func (c *Catalog) Get(index int) (Block, bool) {
	pos, ok := c.byIndex[index]
	if !ok {
		return Block{}, false
	}
	return c.blocks[pos], true
}

// Pages returns the highest page number present in the catalog.
func (c *Catalog) Pages() int {
	max := 0
	for _, b := range c.blocks {
		if b.Page > max {
			max = b.Page
		}
	}
	return max
}

// OnPage returns the blocks on a page in reading order (top-to-bottom,
// then left-to-right).
func (c *Catalog) OnPage(page int) []Block {
	var out []Block
	for _, b := range c.blocks {
		if b.Page == page {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BBox.Y0 != out[j].BBox.Y0 {
			return out[i].BBox.Y0 < out[j].BBox.Y0
		}
		return out[i].BBox.X0 < out[j].BBox.X0
	})
	return out
}

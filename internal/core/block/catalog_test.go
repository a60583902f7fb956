package block

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBlock(index int) Block {
	return Block{
		Index: index,
		Type:  TypeText,
		Page:  1,
		BBox:  BBox{X0: 10, Y0: float64(index * 50), X1: 500, Y1: float64(index*50 + 40)},
		Text:  "some recognized text",
	}
}

func TestNewCatalog_rejects_malformed_blocks(t *testing.T) {
	tests := []struct {
		name  string
		block Block
	}{
		{"negative index", Block{Index: -1, Page: 1, BBox: BBox{X1: 1, Y1: 1}}},
		{"zero page", Block{Index: 0, Page: 0, BBox: BBox{X1: 1, Y1: 1}}},
		{"missing bbox", Block{Index: 0, Page: 1}},
		{"inverted bbox", Block{Index: 0, Page: 1, BBox: BBox{X0: 5, Y0: 5, X1: 1, Y1: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog([]Block{tt.block, validBlock(7)}, zerolog.Nop())

			assert.Equal(t, 1, c.Len())
			_, ok := c.Get(7)
			assert.True(t, ok)
		})
	}
}

func TestNewCatalog_drops_duplicate_index(t *testing.T) {
	first := validBlock(3)
	first.Text = "kept"
	second := validBlock(3)
	second.Text = "dropped"

	c := NewCatalog([]Block{first, second}, zerolog.Nop())

	require.Equal(t, 1, c.Len())
	got, ok := c.Get(3)
	require.True(t, ok)
	assert.Equal(t, "kept", got.Text)
}

func TestNewCatalog_coerces_unknown_type_to_text(t *testing.T) {
	b := validBlock(0)
	b.Type = "footnote"

	c := NewCatalog([]Block{b}, zerolog.Nop())

	got, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, TypeText, got.Type)
}

func TestCatalog_OnPage_reading_order(t *testing.T) {
	blocks := []Block{
		{Index: 0, Type: TypeText, Page: 1, BBox: BBox{X0: 300, Y0: 100, X1: 500, Y1: 150}},
		{Index: 1, Type: TypeText, Page: 1, BBox: BBox{X0: 10, Y0: 100, X1: 200, Y1: 150}},
		{Index: 2, Type: TypeTitle, Page: 1, BBox: BBox{X0: 10, Y0: 20, X1: 500, Y1: 60}},
		{Index: 3, Type: TypeText, Page: 2, BBox: BBox{X0: 10, Y0: 20, X1: 500, Y1: 60}},
	}

	c := NewCatalog(blocks, zerolog.Nop())

	got := c.OnPage(1)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{got[0].Index, got[1].Index, got[2].Index})
	assert.Equal(t, 2, c.Pages())
}

func TestBBox_dimensions(t *testing.T) {
	b := BBox{X0: 10, Y0: 20, X1: 110, Y1: 70}

	assert.InDelta(t, 100, b.Width(), 0.001)
	assert.InDelta(t, 50, b.Height(), 0.001)
	assert.True(t, b.Valid())
}

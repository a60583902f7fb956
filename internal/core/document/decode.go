package document

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tandemview/tandem/internal/core/block"
)

// flatBlock is the export shape: one JSON object per block with the
// bbox as a 4-element array.
type flatBlock struct {
	Index int        `json:"index"`
	Type  block.Type `json:"type"`
	Page  int        `json:"page"`
	BBox  []float64  `json:"bbox"`
	Text  string     `json:"text"`
}

// middleFile is the pipeline's nested middle.json shape.
type middleFile struct {
	PDFInfo []middlePage `json:"pdf_info"`
}

type middlePage struct {
	PageIdx       int           `json:"page_idx"`
	PageSize      []float64     `json:"page_size"`
	PreprocBlocks []middleBlock `json:"preproc_blocks"`
}

type middleBlock struct {
	Type  string       `json:"type"`
	BBox  []float64    `json:"bbox"`
	Lines []middleLine `json:"lines"`
}

type middleLine struct {
	Spans []middleSpan `json:"spans"`
}

type middleSpan struct {
	Content string `json:"content"`
}

// DecodeBlocks parses block data in either supported shape: the flat
// export array, or the nested middle.json the pipeline writes.
func DecodeBlocks(data []byte) ([]block.Block, error) {
	var flat []flatBlock
	if err := json.Unmarshal(data, &flat); err == nil {
		return fromFlat(flat), nil
	}

	var middle middleFile
	if err := json.Unmarshal(data, &middle); err != nil {
		return nil, fmt.Errorf("unrecognized block data shape: %w", err)
	}
	if middle.PDFInfo == nil {
		return nil, fmt.Errorf("unrecognized block data shape: no pdf_info")
	}
	return fromMiddle(middle), nil
}

func fromFlat(flat []flatBlock) []block.Block {
	blocks := make([]block.Block, 0, len(flat))
	for _, fb := range flat {
		blocks = append(blocks, block.Block{
			Index: fb.Index,
			Type:  fb.Type,
			Page:  fb.Page,
			BBox:  bboxFrom(fb.BBox),
			Text:  fb.Text,
		})
	}
	return blocks
}

func fromMiddle(middle middleFile) []block.Block {
	var blocks []block.Block
	index := 0
	for _, page := range middle.PDFInfo {
		for _, mb := range page.PreprocBlocks {
			blocks = append(blocks, block.Block{
				Index: index,
				Type:  middleType(mb.Type),
				Page:  page.PageIdx + 1,
				BBox:  bboxFrom(mb.BBox),
				Text:  middleText(mb),
			})
			index++
		}
	}
	return blocks
}

// bboxFrom converts a [x0,y0,x1,y1] array; short arrays yield a zero
// box, which ingestion validation then rejects.
func bboxFrom(coords []float64) block.BBox {
	if len(coords) < 4 {
		return block.BBox{}
	}
	return block.BBox{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
}

// middleType maps the pipeline's block type names onto the catalog enum.
func middleType(t string) block.Type {
	switch t {
	case "text":
		return block.TypeText
	case "title":
		return block.TypeTitle
	case "table", "table_body":
		return block.TypeTable
	case "image", "img", "image_body", "figure":
		return block.TypeImage
	case "interline_equation", "equation", "formula":
		return block.TypeFormula
	default:
		return block.TypeText
	}
}

// middleText concatenates span contents in reading order.
func middleText(mb middleBlock) string {
	var parts []string
	for _, line := range mb.Lines {
		for _, span := range line.Spans {
			if span.Content != "" {
				parts = append(parts, span.Content)
			}
		}
	}
	return strings.Join(parts, " ")
}

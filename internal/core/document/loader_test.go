package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemview/tandem/internal/core/block"
)

const flatBlocksJSON = `[
  {"index": 0, "type": "title", "page": 1, "bbox": [50, 40, 550, 90], "text": "Introduction to systems"},
  {"index": 1, "type": "table", "page": 1, "bbox": [50, 120, 550, 400], "text": "Table of results"}
]`

const middleJSON = `{
  "pdf_info": [
    {
      "page_idx": 0,
      "page_size": [612, 792],
      "preproc_blocks": [
        {
          "type": "title",
          "bbox": [50, 40, 550, 90],
          "lines": [{"spans": [{"content": "Introduction to"}, {"content": "systems"}]}]
        },
        {
          "type": "interline_equation",
          "bbox": [50, 120, 550, 200],
          "lines": [{"spans": [{"content": "E = mc^2"}]}]
        }
      ]
    },
    {
      "page_idx": 1,
      "page_size": [612, 792],
      "preproc_blocks": [
        {
          "type": "mystery",
          "bbox": [50, 40, 550, 90],
          "lines": [{"spans": [{"content": "second page"}]}]
        }
      ]
    }
  ]
}`

func writeResult(t *testing.T, dir, markupName, blocksName string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, markupName), []byte("# Introduction to systems\n\nTable of results"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, blocksName), []byte(flatBlocksJSON), 0o644))
}

func TestDecodeBlocks_flat_shape(t *testing.T) {
	blocks, err := DecodeBlocks([]byte(flatBlocksJSON))

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, block.TypeTitle, blocks[0].Type)
	assert.Equal(t, "Introduction to systems", blocks[0].Text)
	assert.Equal(t, block.BBox{X0: 50, Y0: 120, X1: 550, Y1: 400}, blocks[1].BBox)
}

func TestDecodeBlocks_middle_shape(t *testing.T) {
	blocks, err := DecodeBlocks([]byte(middleJSON))

	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, 0, blocks[0].Index)
	assert.Equal(t, block.TypeTitle, blocks[0].Type)
	assert.Equal(t, 1, blocks[0].Page)
	assert.Equal(t, "Introduction to systems", blocks[0].Text)

	assert.Equal(t, block.TypeFormula, blocks[1].Type)

	// Unknown pipeline types degrade to text; page_idx is zero-based.
	assert.Equal(t, block.TypeText, blocks[2].Type)
	assert.Equal(t, 2, blocks[2].Page)
}

func TestDecodeBlocks_rejects_unknown_shape(t *testing.T) {
	_, err := DecodeBlocks([]byte(`{"tasks": []}`))
	assert.Error(t, err)

	_, err = DecodeBlocks([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeBlocks_short_bbox_yields_invalid_box(t *testing.T) {
	blocks, err := DecodeBlocks([]byte(`[{"index": 0, "type": "text", "page": 1, "bbox": [1, 2], "text": "x"}]`))

	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.False(t, blocks[0].BBox.Valid())
}

func TestLoader_Discover_single_result_dir(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "paper.md", "paper_middle.json")

	refs, err := NewLoader(zerolog.Nop()).Discover(dir)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, filepath.Base(dir), refs[0].Name)
}

func TestLoader_Discover_root_with_multiple_results(t *testing.T) {
	root := t.TempDir()
	writeResult(t, filepath.Join(root, "beta"), "out.md", "blocks.json")
	writeResult(t, filepath.Join(root, "alpha"), "out.md", "middle.json")
	// A directory missing block data is not a result.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "readme.md"), []byte("x"), 0o644))

	refs, err := NewLoader(zerolog.Nop()).Discover(root)

	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "alpha", refs[0].Name)
	assert.Equal(t, "beta", refs[1].Name)
}

func TestLoader_Discover_finds_nested_files(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, filepath.Join(dir, "output", "md"), "paper.md", "middle.json")

	refs, err := NewLoader(zerolog.Nop()).Discover(dir)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Contains(t, refs[0].MarkupPath, "paper.md")
}

func TestLoader_prefers_conventional_markup_name(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "appendix.md", "middle.json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# main"), 0o644))

	refs, err := NewLoader(zerolog.Nop()).Discover(dir)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "README.md", filepath.Base(refs[0].MarkupPath))
}

func TestLoader_Load_builds_catalog_and_sections(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "paper.md", "middle.json")

	loader := NewLoader(zerolog.Nop())
	refs, err := loader.Discover(dir)
	require.NoError(t, err)
	require.Len(t, refs, 1)

	doc, err := loader.Load(refs[0])

	require.NoError(t, err)
	assert.Equal(t, 2, doc.Catalog.Len())
	assert.Len(t, doc.Sections, 2)
	assert.Equal(t, dir, doc.Dir)
}

func TestLoader_LoadFiles_explicit_paths(t *testing.T) {
	dir := t.TempDir()
	writeResult(t, dir, "paper.md", "blocks.json")

	doc, err := NewLoader(zerolog.Nop()).LoadFiles(
		filepath.Join(dir, "paper.md"),
		filepath.Join(dir, "blocks.json"),
	)

	require.NoError(t, err)
	assert.Equal(t, "paper", doc.Name)
	assert.Equal(t, 2, doc.Catalog.Len())
}

func TestLoader_Discover_missing_root_errors(t *testing.T) {
	_, err := NewLoader(zerolog.Nop()).Discover(filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}

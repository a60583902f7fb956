package match

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
)

func catalogOf(t *testing.T, texts ...string) *block.Catalog {
	t.Helper()
	blocks := make([]block.Block, len(texts))
	for i, text := range texts {
		blocks[i] = block.Block{
			Index: i,
			Type:  block.TypeText,
			Page:  1,
			BBox:  block.BBox{X0: 0, Y0: float64(i * 100), X1: 500, Y1: float64(i*100 + 80)},
			Text:  text,
		}
	}
	return block.NewCatalog(blocks, zerolog.Nop())
}

func TestMatcher_pairs_sections_with_blocks(t *testing.T) {
	catalog := catalogOf(t,
		"Introduction to systems",
		"Table of results",
	)
	md := "# Introduction to systems design\n\nTable of results and data"

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)

	require.Equal(t, 2, mapping.Len())

	sec, ok := mapping.SectionFor(0)
	require.True(t, ok)
	assert.Equal(t, 0, sec)

	sec, ok = mapping.SectionFor(1)
	require.True(t, ok)
	assert.Equal(t, 1, sec)

	for _, p := range mapping.Pairs() {
		assert.Greater(t, p.Score, 0.3, "pair %+v", p)
	}
}

func TestMatcher_empty_markup_yields_empty_mapping(t *testing.T) {
	catalog := catalogOf(t, "some text here")

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, "")

	assert.Equal(t, 0, mapping.Len())
}

func TestMatcher_low_score_stays_unmapped(t *testing.T) {
	catalog := catalogOf(t, "completely unrelated recognized content")

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, "nothing shared whatsoever between them")

	assert.Equal(t, 0, mapping.Len())
	_, ok := mapping.SectionFor(0)
	assert.False(t, ok)
}

func TestMatcher_matched_block_leaves_candidate_pool(t *testing.T) {
	// Both sections score highest against block 0; the second section
	// must not reclaim it.
	catalog := catalogOf(t,
		"gradient descent convergence analysis",
		"unrelated appendix material",
	)
	md := "Gradient descent convergence analysis overview\n\nMore gradient descent convergence analysis"

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)

	sec, ok := mapping.SectionFor(0)
	require.True(t, ok)
	assert.Equal(t, 0, sec)

	// Section 1's only remaining candidate is block 1, which scores 0.
	_, ok = mapping.BlockFor(1)
	assert.False(t, ok)
}

func TestMatcher_no_repeated_blocks_or_sections(t *testing.T) {
	catalog := catalogOf(t,
		"neural network training procedure",
		"neural network training procedure",
		"experimental evaluation results",
	)
	md := "Neural network training procedure\n\nNeural network training procedure\n\nExperimental evaluation results"

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)

	seenBlocks := map[int]bool{}
	seenSections := map[int]bool{}
	for _, p := range mapping.Pairs() {
		assert.False(t, seenBlocks[p.Block], "block %d repeated", p.Block)
		assert.False(t, seenSections[p.Section], "section %d repeated", p.Section)
		seenBlocks[p.Block] = true
		seenSections[p.Section] = true
	}
	assert.LessOrEqual(t, mapping.Len(), 3)
}

func TestMatcher_tie_keeps_first_block_in_index_order(t *testing.T) {
	catalog := catalogOf(t,
		"identical duplicated paragraph text",
		"identical duplicated paragraph text",
	)

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, "identical duplicated paragraph text")

	b, ok := mapping.BlockFor(0)
	require.True(t, ok)
	assert.Equal(t, 0, b)
}

func TestMatcher_deterministic_across_runs(t *testing.T) {
	catalog := catalogOf(t,
		"alpha beta gamma delta",
		"delta epsilon zeta eta",
		"theta iota kappa lambda",
	)
	md := "alpha beta gamma\n\ndelta epsilon zeta\n\ntheta iota kappa"

	first := New(0, zerolog.Nop()).MatchMarkup(catalog, md)
	for i := 0; i < 20; i++ {
		again := New(0, zerolog.Nop()).MatchMarkup(catalog, md)
		assert.Equal(t, first.Pairs(), again.Pairs())
	}
}

func TestMatcher_more_sections_than_blocks(t *testing.T) {
	catalog := catalogOf(t, "only block available here")
	md := "only block available here\n\ntrailing orphan section one\n\ntrailing orphan section two"

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)

	require.Equal(t, 1, mapping.Len())
	_, ok := mapping.BlockFor(1)
	assert.False(t, ok)
	_, ok = mapping.BlockFor(2)
	assert.False(t, ok)
}

func TestMatcher_substring_section_matches(t *testing.T) {
	catalog := catalogOf(t, "boundary conditions for elliptic partial differential equations")

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, "elliptic partial differential equations")

	sec, ok := mapping.SectionFor(0)
	require.True(t, ok)
	assert.Equal(t, 0, sec)
}

func TestMatcher_round_trip(t *testing.T) {
	catalog := catalogOf(t,
		"first unique paragraph content",
		"second distinct body material",
		"third standalone closing remarks",
	)
	md := "first unique paragraph content\n\nsecond distinct body material\n\nthird standalone closing remarks"

	mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)

	for _, b := range catalog.All() {
		sec, ok := mapping.SectionFor(b.Index)
		if !ok {
			continue
		}
		back, ok := mapping.BlockFor(sec)
		require.True(t, ok)
		assert.Equal(t, b.Index, back)
	}
}

func TestMatcher_mapping_bounded_by_min_of_inputs(t *testing.T) {
	for _, tc := range []struct{ blocks, sections int }{{2, 5}, {5, 2}, {3, 3}} {
		t.Run(fmt.Sprintf("%dx%d", tc.blocks, tc.sections), func(t *testing.T) {
			texts := make([]string, tc.blocks)
			for i := range texts {
				texts[i] = fmt.Sprintf("paragraph number %d standalone content", i)
			}
			catalog := catalogOf(t, texts...)

			var md string
			for i := 0; i < tc.sections; i++ {
				if i > 0 {
					md += "\n\n"
				}
				md += fmt.Sprintf("paragraph number %d standalone content", i)
			}

			mapping := New(0, zerolog.Nop()).MatchMarkup(catalog, md)
			min := tc.blocks
			if tc.sections < min {
				min = tc.sections
			}
			assert.LessOrEqual(t, mapping.Len(), min)
		})
	}
}

func TestMatcher_sections_helper_agrees_with_markup_split(t *testing.T) {
	catalog := catalogOf(t, "shared words in this block")
	sections := markup.Split("shared words in this block")

	direct := New(0, zerolog.Nop()).Match(catalog, sections)
	viaString := New(0, zerolog.Nop()).MatchMarkup(catalog, "shared words in this block")

	assert.Equal(t, direct.Pairs(), viaString.Pairs())
}

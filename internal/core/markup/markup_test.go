package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_on_blank_line_runs(t *testing.T) {
	md := "# Title\n\nFirst paragraph\nstill first.\n\n\n\nSecond paragraph."

	sections := Split(md)

	require.Len(t, sections, 3)
	assert.Equal(t, "# Title", sections[0].Raw)
	assert.Equal(t, "First paragraph\nstill first.", sections[1].Raw)
	assert.Equal(t, "Second paragraph.", sections[2].Raw)
	assert.Equal(t, []int{0, 1, 2}, []int{sections[0].Ordinal, sections[1].Ordinal, sections[2].Ordinal})
}

func TestSplit_line_ranges(t *testing.T) {
	md := "alpha\n\nbeta\ngamma\n"

	sections := Split(md)

	require.Len(t, sections, 2)
	assert.Equal(t, 0, sections[0].StartLine)
	assert.Equal(t, 0, sections[0].EndLine)
	assert.Equal(t, 2, sections[1].StartLine)
	assert.Equal(t, 3, sections[1].EndLine)
}

func TestSplit_empty_and_blank_markup(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("\n\n   \n\t\n"))
}

func TestSplit_whitespace_only_lines_are_boundaries(t *testing.T) {
	sections := Split("one\n   \ntwo")

	require.Len(t, sections, 2)
	assert.Equal(t, "one", sections[0].Raw)
	assert.Equal(t, "two", sections[1].Raw)
}

func TestNormalize_strips_markup_punctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# Heading One", "heading one"},
		{"**bold** and _italic_", "bold and italic"},
		{"`code` [link]", "code link"},
		{"  spaced\t\tout\n words ", "spaced out words"},
		{"MiXeD CaSe", "mixed case"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestTokens_drops_short_words(t *testing.T) {
	tokens := Tokens("# An ox is on the road")

	assert.Equal(t, []string{"the", "road"}, tokens)
}

func TestTokenSet_deduplicates(t *testing.T) {
	set := TokenSet("results results results table")

	assert.Len(t, set, 2)
	assert.Contains(t, set, "results")
	assert.Contains(t, set, "table")
}

func TestClassify_section_kinds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{"heading", "## Methods", KindHeading},
		{"paragraph", "Plain prose sentence.", KindParagraph},
		{"unordered list", "- one\n- two", KindList},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", KindTable},
		{"fenced code", "```go\nfmt.Println()\n```", KindCode},
		{"quote", "> quoted line", KindQuote},
		{"image", "![figure](fig1.png)", KindImage},
		{"html image", "<img src=\"fig1.png\"/>", KindImage},
		{"display math", "$$\\int_0^1 x\\,dx$$", KindFormula},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Split(tt.raw)
			require.Len(t, sections, 1)
			assert.Equal(t, tt.want, sections[0].Kind)
		})
	}
}

func TestClassify_heading_text_and_level(t *testing.T) {
	sections := Split("### Results and Discussion")

	require.Len(t, sections, 1)
	assert.Equal(t, KindHeading, sections[0].Kind)
	assert.Equal(t, "Results and Discussion", sections[0].Heading)
	assert.Equal(t, 3, sections[0].Level)
}

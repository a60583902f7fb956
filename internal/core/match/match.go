// Package match computes the block <-> section correspondence that the
// sync engine navigates by.
package match

import (
	"github.com/rs/zerolog"

	"github.com/tandemview/tandem/internal/core/block"
	"github.com/tandemview/tandem/internal/core/markup"
)

// DefaultMinScore is the acceptance threshold for a match; pairs scoring
// at or below it stay unmapped. Empirical, tunable via config.
const DefaultMinScore = 0.3

// Pair is one accepted block/section correspondence.
type Pair struct {
	Block   int     `json:"block"`
	Section int     `json:"section"`
	Score   float64 `json:"score"`
}

// Matcher scores markup sections against recognized blocks using
// bag-of-words Jaccard similarity.
type Matcher struct {
	minScore float64
	log      zerolog.Logger
}

// New creates a matcher with the given acceptance threshold;
// minScore <= 0 selects DefaultMinScore.
func New(minScore float64, logger zerolog.Logger) *Matcher {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	return &Matcher{minScore: minScore, log: logger}
}

// Match greedily pairs sections with blocks in document order. Each
// section takes the highest-scoring still-unmatched block, provided the
// score exceeds the threshold; matched blocks leave the candidate pool.
// Ties keep the first block in index order, so identical inputs always
// produce identical mappings.
func (m *Matcher) Match(catalog *block.Catalog, sections []markup.Section) Mapping {
	blocks := catalog.All()

	type candidate struct {
		index  int
		tokens map[string]struct{}
	}
	pool := make([]candidate, 0, len(blocks))
	for _, b := range blocks {
		pool = append(pool, candidate{index: b.Index, tokens: markup.TokenSet(b.Text)})
	}

	mapping := newMapping()

	for _, sec := range sections {
		secTokens := markup.TokenSet(sec.Raw)
		if len(secTokens) == 0 {
			continue
		}

		best := -1
		bestScore := 0.0
		for i, cand := range pool {
			score := jaccard(secTokens, cand.tokens)
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best < 0 || bestScore <= m.minScore {
			continue
		}

		mapping.add(pool[best].index, sec.Ordinal, bestScore)
		m.log.Debug().
			Int("block", pool[best].index).
			Int("section", sec.Ordinal).
			Float64("score", bestScore).
			Msg("section matched")
		pool = append(pool[:best], pool[best+1:]...)
	}

	return mapping
}

// MatchMarkup splits markup into sections and matches them.
func (m *Matcher) MatchMarkup(catalog *block.Catalog, markupText string) Mapping {
	return m.Match(catalog, markup.Split(markupText))
}

// jaccard computes |a∩b| / |a∪b| over word sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

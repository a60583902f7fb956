package match

import "sort"

// Mapping is a partial one-to-one block <-> section correspondence.
// No block or section appears in more than one pair; unmatched entities
// simply have no entry.
type Mapping struct {
	blockToSection map[int]int
	sectionToBlock map[int]int
	pairs          []Pair
}

func newMapping() Mapping {
	return Mapping{
		blockToSection: make(map[int]int),
		sectionToBlock: make(map[int]int),
	}
}

func (m *Mapping) add(blockIdx, sectionOrd int, score float64) {
	m.blockToSection[blockIdx] = sectionOrd
	m.sectionToBlock[sectionOrd] = blockIdx
	m.pairs = append(m.pairs, Pair{Block: blockIdx, Section: sectionOrd, Score: score})
}

// SectionFor returns the section matched to a block.
func (m Mapping) SectionFor(blockIdx int) (int, bool) {
	sec, ok := m.blockToSection[blockIdx]
	return sec, ok
}

// BlockFor returns the block matched to a section.
func (m Mapping) BlockFor(sectionOrd int) (int, bool) {
	b, ok := m.sectionToBlock[sectionOrd]
	return b, ok
}

// Len returns the number of matched pairs.
func (m Mapping) Len() int {
	return len(m.pairs)
}

// Pairs returns the accepted pairs sorted by section ordinal.
func (m Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

// Package markup splits generated markup into matchable sections and
// provides the text normalization the matcher scores against.
package markup

import (
	"strings"
)

// Section is one contiguous non-empty chunk of generated markup,
// delimited by blank-line boundaries. Sections are ephemeral and
// recomputed whenever the markup content changes; the ordinal is
// their identity.
type Section struct {
	Ordinal   int
	Raw       string // original markup text, trailing newline trimmed
	StartLine int    // 0-based first line in the source markup
	EndLine   int    // 0-based last line, inclusive
	Kind      Kind
	Heading   string // heading text when Kind == KindHeading
	Level     int    // heading level when Kind == KindHeading
}

// Split breaks markup into sections on runs of one or more blank lines.
// Empty sections are discarded; empty markup yields no sections.
func Split(markup string) []Section {
	lines := strings.Split(markup, "\n")

	var sections []Section
	start := -1

	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := strings.Join(lines[start:end+1], "\n")
		sec := Section{
			Ordinal:   len(sections),
			Raw:       raw,
			StartLine: start,
			EndLine:   end,
		}
		sec.Kind, sec.Heading, sec.Level = classify(raw)
		sections = append(sections, sec)
		start = -1
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush(i - 1)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(lines) - 1)

	return sections
}

// punctuation stripped before scoring; covers the markup syntax
// characters that would otherwise pollute word sets.
const strippedRunes = "#*_`[]"

// Normalize strips markup punctuation, collapses whitespace, and
// lower-cases, producing the canonical form both sides of a match
// comparison are reduced to.
func Normalize(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedRunes, r) {
			return -1
		}
		return r
	}, s)

	return strings.ToLower(strings.Join(strings.Fields(stripped), " "))
}

// Tokens normalizes s and returns its words longer than 2 characters.
// Short words carry little matching signal and are dropped.
func Tokens(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(Normalize(s)) {
		if len(word) > 2 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// TokenSet returns Tokens(s) as a set.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokens(s) {
		set[tok] = struct{}{}
	}
	return set
}

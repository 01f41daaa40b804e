// Package prefilter provides fast candidate filtering for haystack search.
//
// When a compiled pattern is searched for inside a larger haystack, most
// positions cannot possibly start a match. A prefilter uses the pattern's
// leading token to jump straight to positions that can, so the full match
// loop only runs at real candidates.
//
// Strategy selection, based on the leading token:
//   - literal        → substring search for the literal text
//   - alternation    → Aho-Corasick automaton over the options
//   - wildcard/none  → no prefilter (every position is a candidate)
//
// A prefilter hit is a candidate only. The caller must verify the full
// pattern at the returned position; options have differing lengths and the
// pattern usually carries trailing tokens, so a hit is never a complete
// match by itself.
//
// Example:
//
//	tokens, _ := syntax.Parse("(cat|dog)s")
//	pf := prefilter.Build(tokens)
//	pos := pf.Find([]byte("raining dogs"), 0)
//	// pos == 8 (position of "dog"), verify the full pattern there
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/patmatch/syntax"
)

// Prefilter reports candidate start positions for a pattern in a haystack.
type Prefilter interface {
	// Find returns the index of the first candidate position at or after
	// start, or -1 if no candidate exists. A candidate is a position where
	// the pattern's leading token matches; the caller must verify the rest
	// of the pattern there.
	Find(haystack []byte, start int) int
}

// Build selects a prefilter for the given token sequence.
//
// Returns nil when no useful prefilter exists: an empty sequence, a
// wildcard-led pattern (every position is a candidate), or an alternation
// whose automaton cannot be built.
func Build(tokens []syntax.Token) Prefilter {
	if len(tokens) == 0 {
		return nil
	}

	switch lead := tokens[0]; lead.Kind {
	case syntax.KindLiteral:
		return &substringPrefilter{needle: []byte(lead.Text)}

	case syntax.KindAlternation:
		if len(lead.Options) == 0 {
			return nil
		}
		builder := ahocorasick.NewBuilder()
		for _, opt := range lead.Options {
			builder.AddPattern([]byte(opt))
		}
		auto, err := builder.Build()
		if err != nil {
			return nil
		}
		return &ahoCorasickPrefilter{auto: auto}

	default:
		return nil
	}
}

// substringPrefilter finds occurrences of a single literal needle.
type substringPrefilter struct {
	needle []byte
}

// Find implements Prefilter.Find using bytes.Index.
func (p *substringPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// ahoCorasickPrefilter finds occurrences of any alternation option using an
// Aho-Corasick automaton. One automaton scan covers every option at once,
// and the leftmost occurrence start is the candidate position.
type ahoCorasickPrefilter struct {
	auto *ahocorasick.Automaton
}

// Find implements Prefilter.Find using the automaton's leftmost search.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

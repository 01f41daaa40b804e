package patmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/patmatch/syntax"
)

// Match pairs a pattern token with the candidate substring it consumed.
// Token points into the Matcher's compiled sequence; Text is a slice of the
// candidate string passed to the Match call that produced it.
type Match struct {
	Token *syntax.Token
	Text  string
}

// Match walks the token sequence and candidate in lockstep and returns the
// trace of (token, substring) pairs achieved before the first mismatch.
//
// The trace is always a prefix of the token sequence: possibly empty,
// possibly complete. A token that cannot match, including a wildcard at end
// of input, stops the walk; this is a normal outcome, not an error. The
// most-tokens-matched counter is reset at the start of the call and equals
// the trace length on return.
//
// Token semantics:
//   - literal: the candidate at the cursor must begin with the exact text
//   - alternation: options are tried in declared order, first match wins
//   - wildcard: consumes exactly one character (one rune, so a multi-byte
//     UTF-8 character matches whole)
//
// Example:
//
//	m := patmatch.MustCompile("abc(d|e|f).")
//	trace := m.Match("abcge")
//	// len(trace) == 1: "g" matches no alternation option
func (m *Matcher) Match(candidate string) []Match {
	m.mostTokensMatched = 0

	var matches []Match
	pos := 0
	for i := range m.tokens {
		tok := &m.tokens[i]
		n := consume(tok, candidate[pos:])
		if n < 0 {
			return matches
		}
		matches = append(matches, Match{Token: tok, Text: candidate[pos : pos+n]})
		m.mostTokensMatched++
		pos += n
	}

	return matches
}

// MatchString reports whether candidate matches the whole pattern exactly:
// every token matched and the candidate fully consumed.
//
// Example:
//
//	m := patmatch.MustCompile("ab.")
//	m.MatchString("abc")  // true
//	m.MatchString("abcd") // false, trailing input
func (m *Matcher) MatchString(candidate string) bool {
	end, ok := m.matchedLen(candidate)
	return ok && end == len(candidate)
}

// matchedLen returns the number of bytes the pattern consumes matching at
// the start of s, and whether every token matched. It does not touch the
// most-tokens-matched counter, so search can probe many positions without
// disturbing the Match contract.
func (m *Matcher) matchedLen(s string) (int, bool) {
	pos := 0
	for i := range m.tokens {
		n := consume(&m.tokens[i], s[pos:])
		if n < 0 {
			return 0, false
		}
		pos += n
	}
	return pos, true
}

// consume returns the number of bytes tok matches at the start of s,
// or -1 if it does not match.
func consume(tok *syntax.Token, s string) int {
	switch tok.Kind {
	case syntax.KindLiteral:
		if strings.HasPrefix(s, tok.Text) {
			return len(tok.Text)
		}

	case syntax.KindAlternation:
		for _, opt := range tok.Options {
			if strings.HasPrefix(s, opt) {
				return len(opt)
			}
		}

	case syntax.KindWildcard:
		if s != "" {
			_, n := utf8.DecodeRuneInString(s)
			return n
		}
	}
	return -1
}

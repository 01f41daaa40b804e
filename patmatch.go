// Package patmatch implements a minimal pattern-matching language over text.
//
// A pattern string is compiled once into an ordered sequence of tokens and
// then matched against many candidate strings. Matching is greedy, left to
// right, single pass: the result is the trace of (token, substring) pairs
// achieved before the first mismatch. A failed match is a short trace, not
// an error.
//
// Pattern syntax:
//   - any character except '.', '(', ')' and '|' is literal text
//   - '.' matches exactly one character
//   - (one|two|three) matches the first listed option that fits
//
// There is no escaping mechanism for the metacharacters.
//
// Basic usage:
//
//	m, err := patmatch.Compile("abc(d|e|f).")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	trace := m.Match("abcde")
//	// trace[0].Text == "abc", trace[1].Text == "d", trace[2].Text == "e"
//	m.MostTokensMatched() // 3
//
//	trace = m.Match("abcge")
//	// trace has one entry: the leading literal. No alternation option
//	// matches "g", so the walk stops there.
//
// Searching inside a larger haystack:
//
//	start, end, ok := m.FindIndices("xx abcde yy")
//	// start == 3, end == 8
package patmatch

import (
	"github.com/coregx/patmatch/prefilter"
	"github.com/coregx/patmatch/syntax"
)

// Matcher is a compiled pattern.
//
// A Matcher is created once by Compile and reused across many Match calls
// against different candidates. It retains nothing from a candidate after a
// call returns; the returned trace holds the only references.
//
// Thread safety: a Matcher is NOT safe for concurrent use, because Match
// mutates the most-tokens-matched counter. Confine a Matcher to one
// goroutine or guard it with a mutex.
type Matcher struct {
	pattern string
	tokens  []syntax.Token
	pf      prefilter.Prefilter

	// mostTokensMatched counts the leading tokens matched by the most
	// recent Match call. Reset to zero at the start of every call; it is
	// not cumulative.
	mostTokensMatched int
}

// Compile compiles a pattern into a Matcher.
//
// Returns an error wrapping syntax.ErrMalformedPattern if the pattern has a
// nested alternation group, an unmatched delimiter, or a misplaced
// separator. No partial Matcher is returned on error.
//
// Example:
//
//	m, err := patmatch.Compile("(cat|dog)s")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Matcher, error) {
	tokens, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	return &Matcher{
		pattern: pattern,
		tokens:  tokens,
		pf:      prefilter.Build(tokens),
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time:
//
//	var greeting = patmatch.MustCompile("hell(o|ö)")
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("patmatch: Compile(`" + pattern + "`): " + err.Error())
	}
	return m
}

// Pattern returns the original pattern text.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Tokens returns the compiled token sequence in pattern order. The caller
// must not modify the returned slice.
func (m *Matcher) Tokens() []syntax.Token {
	return m.tokens
}

// MostTokensMatched returns how many leading tokens the most recent Match
// call matched before failure or exhaustion. It equals the length of that
// call's trace and is meaningful for the most recent call only.
func (m *Matcher) MostTokensMatched() int {
	return m.mostTokensMatched
}

// String returns the pattern text, for diagnostics.
func (m *Matcher) String() string {
	return m.pattern
}

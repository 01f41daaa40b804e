// Package syntax compiles pattern strings into token sequences.
//
// The pattern language has four metacharacters:
//
//	.            match exactly one character
//	(one|two)    match the first listed option that fits
//
// Every other character is literal text. There is no escaping mechanism for
// the metacharacters themselves.
//
// A pattern compiles to an ordered sequence of tokens; the order is the order
// the tokens appear in the pattern and is fixed once compiled.
//
// Example:
//
//	tokens, err := syntax.Parse("abc(d|e|f).")
//	// tokens = [literal("abc") alternation(d|e|f) wildcard]
package syntax

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	// KindLiteral is an exact run of characters that must appear verbatim.
	KindLiteral Kind = iota

	// KindAlternation is an ordered set of candidate literals. At match time
	// the first option (in declared order) that fits wins.
	KindAlternation

	// KindWildcard matches exactly one character of any value.
	KindWildcard
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindAlternation:
		return "alternation"
	case KindWildcard:
		return "wildcard"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Token is one compiled unit of a pattern: literal text, an alternation set,
// or a wildcard.
//
// Text and Options are views into the original pattern string, not copies.
// They stay valid as long as the pattern string does, which in Go is for as
// long as anything references them.
type Token struct {
	// Kind selects the variant.
	Kind Kind

	// Text is the literal run. Set only for KindLiteral, never empty.
	Text string

	// Options are the alternation candidates in declared order. Set only for
	// KindAlternation; individual options are never empty, though a group
	// like "()" yields zero options.
	Options []string
}

// String returns a debug representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		return fmt.Sprintf("literal(%q)", t.Text)
	case KindAlternation:
		return "alternation(" + strings.Join(t.Options, "|") + ")"
	default:
		return "wildcard"
	}
}

package syntax

// Parse scans pattern left to right, once, and returns its token sequence.
// It returns a *ParseError (wrapping ErrMalformedPattern) if the pattern is
// not well formed; no partial token sequence is returned on error.
//
// The scanner keeps two pieces of state: an open text run (with its start
// offset) and an open alternation group (with its accumulated options). A
// metacharacter closes the current run; any other character opens one.
// Scanning is byte-wise, which is sound because all four metacharacters are
// ASCII; multi-byte runes pass through as opaque literal bytes.
//
// Two deliberate quirks of the scan:
//   - a '.' inside an open group closes the current option run into a
//     standalone literal token and emits the wildcard immediately,
//     interleaved with the group's tokens; it does not close the group
//   - a group closed right after a separator, like "(a|)", drops the empty
//     final option silently
func Parse(pattern string) ([]Token, error) {
	var tokens []Token

	inRun := false
	runStart := 0

	inGroup := false
	groupStart := 0
	var options []string

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '.':
			if inRun {
				tokens = append(tokens, Token{Kind: KindLiteral, Text: pattern[runStart:i]})
				inRun = false
			}
			tokens = append(tokens, Token{Kind: KindWildcard})

		case '(':
			if inGroup {
				return nil, &ParseError{Pattern: pattern, Pos: i, Msg: "nested alternation group"}
			}
			if inRun {
				tokens = append(tokens, Token{Kind: KindLiteral, Text: pattern[runStart:i]})
				inRun = false
			}
			inGroup = true
			groupStart = i

		case ')':
			if !inGroup {
				return nil, &ParseError{Pattern: pattern, Pos: i, Msg: "unmatched closing parenthesis"}
			}
			if inRun {
				options = append(options, pattern[runStart:i])
				inRun = false
			}
			inGroup = false
			tokens = append(tokens, Token{Kind: KindAlternation, Options: options})
			options = nil

		case '|':
			if !inGroup || !inRun {
				return nil, &ParseError{Pattern: pattern, Pos: i, Msg: "misplaced alternation separator"}
			}
			options = append(options, pattern[runStart:i])
			inRun = false

		default:
			if !inRun {
				inRun = true
				runStart = i
			}
		}
	}

	if inGroup {
		return nil, &ParseError{Pattern: pattern, Pos: groupStart, Msg: "unclosed alternation group"}
	}

	// A trailing run with no delimiter after it still closes into a token.
	if inRun {
		tokens = append(tokens, Token{Kind: KindLiteral, Text: pattern[runStart:]})
	}

	return tokens, nil
}

package syntax

import (
	"errors"
	"fmt"
)

// ErrMalformedPattern indicates the pattern text is not valid in the pattern
// language: a nested alternation group, an unmatched delimiter, or a
// misplaced separator. It is the only compile-time error kind.
var ErrMalformedPattern = errors.New("malformed pattern")

// ParseError wraps ErrMalformedPattern with the pattern, the byte offset of
// the offending character, and a short cause.
type ParseError struct {
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: %s at offset %d in pattern %q", e.Msg, e.Pos, e.Pattern)
}

// Unwrap returns ErrMalformedPattern so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrMalformedPattern
}

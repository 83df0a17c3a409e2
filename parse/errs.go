package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed line: a missing key, value, quote,
	// or list terminator.
	ErrSyntax = errors.New("syntax error")
	// ErrStructure indicates a nesting problem: an unmatched '}', a
	// branch never closed, or indentation that matches no open level.
	ErrStructure = errors.New("structural error")
)

// Error is one positioned diagnostic from a parse.  In strict mode the
// first Error aborts the parse; otherwise every Error is handed to the
// configured sink and parsing continues.
type Error struct {
	Err    error  // ErrSyntax or ErrStructure
	Line   int    // 1-based line number in the input
	Reason string // human-readable description
	Text   string // offending line, empty when not applicable
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("Line %d -> %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("Line %d -> %s | %s", e.Line, e.Reason, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}

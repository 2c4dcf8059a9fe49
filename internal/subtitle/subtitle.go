package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	Lines []string
}

// Text joins the caption lines for display.
func (e Entry) Text() string {
	return strings.Join(e.Lines, "\n")
}

func (e Entry) Duration() time.Duration {
	return e.End - e.Start
}

// FormatError reports timestamp text that does not match the expected
// pattern.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

// ParseError reports a malformed subtitle block, with the 1-based line
// number of the offending line.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed subtitle block at line %d: %s", e.Line, e.Reason)
}

package titledb

import (
	"errors"
	"fmt"
)

// ErrMalformedDatabaseLine reports a non-empty line without the ` = ` separator.
var ErrMalformedDatabaseLine = errors.New("malformed title database line")

// LineError identifies the offending line.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrMalformedDatabaseLine, e.Text)
}

// Unwrap lets errors.Is match ErrMalformedDatabaseLine.
func (e *LineError) Unwrap() error {
	return ErrMalformedDatabaseLine
}

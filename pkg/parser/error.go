package parser

import (
	"errors"
	"fmt"
)

// ErrIncomplete is matched by syntax errors caused by input ending inside an
// expression.  More input may complete it.
var ErrIncomplete = errors.New("incomplete expression")

// SyntaxError describes malformed source.
type SyntaxError struct {
	Source     Location
	Msg        string
	Incomplete bool
}

func newSyntaxError(loc Location, incomplete bool, format string, v ...interface{}) *SyntaxError {
	return &SyntaxError{
		Source:     loc,
		Msg:        fmt.Sprintf(format, v...),
		Incomplete: incomplete,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Source, e.Msg)
}

// Is allows errors.Is(err, ErrIncomplete) for errors caused by truncated
// input.
func (e *SyntaxError) Is(target error) bool {
	return e.Incomplete && target == ErrIncomplete
}

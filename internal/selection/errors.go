package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when the command line names no files.
	ErrNoFiles = errors.New("no files given")
	// ErrEmptyList is returned for a "+" or "++" token without selectors.
	ErrEmptyList = errors.New("empty selector list")
	// ErrNothingSelected is returned when the selectors match no part of a file.
	ErrNothingSelected = errors.New("no parts selected")
)

// Error reports an unusable selection, either a token that cannot be parsed
// or a selection that leaves a file empty.
type Error struct {
	Path  string
	Token string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Token != "":
		return fmt.Sprintf("invalid selection %q for %q: %v", e.Token, e.Path, e.Err)
	case e.Token != "":
		return fmt.Sprintf("invalid selection %q: %v", e.Token, e.Err)
	default:
		return fmt.Sprintf("%q: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

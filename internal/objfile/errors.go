package objfile

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFile indicates the path does not name a regular file.
	ErrNotFile = errors.New("objfile: not a valid file")
	// ErrNotELF indicates the content could not be parsed as ELF.
	ErrNotELF = errors.New("objfile: not a valid ELF file")
)

// InputError reports a file that cannot be used as input.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

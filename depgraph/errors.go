package depgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFileSet is returned when no file path set is supplied.
	ErrMissingFileSet = errors.New("file path set is required")
	// ErrMissingContentReader is returned when no content reader is supplied.
	ErrMissingContentReader = errors.New("content reader is required")
)

// FetchError reports a file whose content could not be read.
type FetchError struct {
	Path string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

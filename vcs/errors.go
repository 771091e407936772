package vcs

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is matched by every FileNotFoundError.
var ErrFileNotFound = errors.New("file not found")

// FileNotFoundError reports a path the collaborator cannot serve.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrFileNotFound)
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

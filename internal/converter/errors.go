package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an input file or the discovery root does not exist
	ErrNotFound = errors.New("not found")
	// ErrWriteFailure is returned when an output file or directory cannot be written
	ErrWriteFailure = errors.New("write failure")
)

// FileError records a failed conversion in a batch run
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

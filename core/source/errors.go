package source

import (
	"errors"
	"fmt"
)

// UnavailableError reports a required source file or directory that is
// missing or unreadable. It always identifies the offending path.
type UnavailableError struct {
	// Path is the file or directory that could not be read.
	Path string

	// Err is the underlying filesystem error, if any.
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("source unavailable: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source unavailable: %s", e.Path)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as an UnavailableError for the given path.
func Unavailable(path string, err error) *UnavailableError {
	return &UnavailableError{Path: path, Err: err}
}

// IsUnavailable reports whether err is (or wraps) an UnavailableError.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

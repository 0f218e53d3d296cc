// Package profile loads the candidate's reference files: the master bullet pool and the profile.
package profile

import "fmt"

// NotFoundError is returned when a reference file does not exist.
// It unwraps to fs.ErrNotExist.
type NotFoundError struct {
	Path  string
	Cause error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reference file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// FormatError represents a reference file that could not be read or is not
// valid structured data of the expected shape
type FormatError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("format error in %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("format error in %s: %s", e.Path, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

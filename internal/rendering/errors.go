// Package rendering builds the tailored resume as a Word (.docx) document.
package rendering

import "fmt"

// TemplateError represents an error executing one of the package part templates
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure writing the document to disk
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("write error: %s %s", e.Message, e.Path)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// ReadError represents a document that could not be read back
type ReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("read error: %s %s", e.Message, e.Path)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

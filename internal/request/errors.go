package request

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInput is returned when the input holds nothing but whitespace
var ErrNoInput = errors.New("no input received")

// NoInputMessage is the user-facing error reported for ErrNoInput
const NoInputMessage = "No input received"

// ValidationError represents a request that is not valid JSON, has
// mistyped fields or lacks a required field
type ValidationError struct {
	Errors []FieldError
	Cause  error
}

// FieldError is one problem with one request field
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// MissingFields lists required fields that were absent or blank
func (e *ValidationError) MissingFields() []string {
	var fields []string
	for _, fe := range e.Errors {
		if fe.Tag == "required" || fe.Tag == "notblank" {
			fields = append(fields, fe.Field)
		}
	}
	return fields
}

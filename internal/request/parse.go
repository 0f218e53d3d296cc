// Package request parses the job request read from stdin.
package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Parse decodes and validates a job request.
// Blank input returns ErrNoInput; every other problem is a *ValidationError.
// Blank optional fields take their defaults, except OutputPath, which is
// resolved by the caller.
func Parse(raw []byte) (*types.JobRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrNoInput
	}

	var req types.JobRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, decodeError(err)
	}

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	withDefaults := req.WithDefaults()
	return &withDefaults, nil
}

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ValidationError{
				Errors: []FieldError{{Field: "(root)", Tag: "type", Message: "request must be a JSON object, got " + typeErr.Value}},
				Cause:  err,
			}
		}
		return &ValidationError{
			Errors: []FieldError{{Field: typeErr.Field, Tag: "type", Message: "must be a string, got " + typeErr.Value}},
			Cause:  err,
		}
	}

	return &ValidationError{
		Errors: []FieldError{{Field: "(root)", Tag: "json", Message: "request is not valid JSON: " + err.Error()}},
		Cause:  err,
	}
}

func validationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{
			Errors: []FieldError{{Field: "(root)", Tag: "invalid", Message: err.Error()}},
			Cause:  err,
		}
	}

	result := &ValidationError{Cause: err}
	for _, fe := range verrs {
		message := "failed " + fe.Tag() + " validation"
		switch fe.Tag() {
		case "required":
			message = "is required"
		case "notblank":
			message = "must not be blank"
		}
		result.Errors = append(result.Errors, FieldError{Field: fe.Field(), Tag: fe.Tag(), Message: message})
	}
	return result
}

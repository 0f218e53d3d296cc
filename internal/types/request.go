// Package types provides type definitions for structured data used throughout the resume-tailor system.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied to optional JobRequest fields
const (
	DefaultJobTitle    = "Software Engineer"
	DefaultCompanyName = "Company"
	DefaultOutputPath  = "generated_resume.docx"
)

// JobRequest is the single request read from stdin
type JobRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,notblank"`
	JobTitle       string `json:"jobTitle,omitempty"`
	CompanyName    string `json:"companyName,omitempty"`
	OutputPath     string `json:"outputPath,omitempty"`
}

// Response is the single JSON object written to stdout
type Response struct {
	DocxPath string `json:"docxPath,omitempty"`
	Error    string `json:"error,omitempty"`
}

// WriteTo writes the response as one line holding a single key,
// e.g. {"docxPath": "/abs/out.docx"}.
func (r Response) WriteTo(w io.Writer) (int64, error) {
	key, value := "docxPath", r.DocxPath
	if r.Error != "" {
		key, value = "error", r.Error
	}

	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return 0, err
	}

	n, err := fmt.Fprintf(w, "{%q: %s}\n", key, bytes.TrimSpace(encoded.Bytes()))
	return int64(n), err
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Whitespace-only descriptions count as missing.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate validates the JobRequest using the validator.
func (r *JobRequest) Validate() error {
	return requestValidator.Struct(r)
}

// WithDefaults returns a copy with blank title and company set to their defaults.
// OutputPath is resolved by the pipeline since it depends on the output directory.
// The receiver is not modified.
func (r JobRequest) WithDefaults() JobRequest {
	if strings.TrimSpace(r.JobTitle) == "" {
		r.JobTitle = DefaultJobTitle
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		r.CompanyName = DefaultCompanyName
	}
	return r
}

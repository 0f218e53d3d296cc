// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile holds the candidate's contact details and education
type Profile struct {
	Name      string           `json:"name" yaml:"name"`
	Email     string           `json:"email" yaml:"email"`
	Phone     string           `json:"phone" yaml:"phone"`
	Location  string           `json:"location" yaml:"location"`
	GitHub    string           `json:"github" yaml:"github"`
	LinkedIn  string           `json:"linkedin" yaml:"linkedin"`
	Education []EducationEntry `json:"education" yaml:"education"`
}

// EducationEntry represents a single school with its detail lines
type EducationEntry struct {
	School   string   `json:"school" yaml:"school"`
	Degree   string   `json:"degree" yaml:"degree"`
	GradYear Year     `json:"grad_year" yaml:"grad_year"`
	Details  []string `json:"details" yaml:"details"`
}

// ContactFields returns the contact values in rendering order:
// email, phone, location, github, linkedin.
func (p *Profile) ContactFields() []string {
	return []string{p.Email, p.Phone, p.Location, p.GitHub, p.LinkedIn}
}

// Year is a graduation year. Files may write it as a string ("2025", "Expected 2026")
// or as a bare number.
type Year string

// UnmarshalJSON accepts a JSON string or number
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("grad_year must be a string or a number: %w", err)
	}
	*y = Year(n.String())
	return nil
}

// UnmarshalYAML accepts a quoted or bare scalar
func (y *Year) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("grad_year must be a string or a number, line %d", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}
	*y = Year(value.Value)
	return nil
}

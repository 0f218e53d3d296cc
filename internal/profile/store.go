package profile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	"gopkg.in/yaml.v3"
)

// LoadBullets loads the master bullet pool from a JSON or YAML file
func LoadBullets(path string) ([]types.BulletEntry, error) {
	var bullets []types.BulletEntry
	if err := load(path, schemas.MasterResume, &bullets); err != nil {
		return nil, err
	}
	return bullets, nil
}

// LoadProfile loads the candidate profile from a JSON or YAML file
func LoadProfile(path string) (*types.Profile, error) {
	var p types.Profile
	if err := load(path, schemas.UserProfile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// IsYAML reports whether path is decoded as YAML rather than JSON
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// load reads path, checks it against the named schema and decodes it into v.
func load(path, schema string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: path, Cause: err}
		}
		return &FormatError{Path: path, Message: "failed to read file", Cause: err}
	}

	unmarshal := json.Unmarshal
	format := "JSON"
	if IsYAML(path) {
		unmarshal = yaml.Unmarshal
		format = "YAML"
	}

	var document interface{}
	if err := unmarshal(content, &document); err != nil {
		return &FormatError{Path: path, Message: "failed to parse " + format, Cause: err}
	}

	if err := schemas.Validate(schema, document); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return &FormatError{Path: path, Message: "does not match " + schema + " schema: " + validationErr.Summary()}
		}
		return &FormatError{Path: path, Message: "schema check failed", Cause: err}
	}

	if err := unmarshal(content, v); err != nil {
		return &FormatError{Path: path, Message: "failed to decode " + format, Cause: err}
	}
	return nil
}

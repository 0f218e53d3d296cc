package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProfile_JSONUnmarshaling(t *testing.T) {
	raw := `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
		"location": "London, UK",
		"github": "github.com/ada",
		"linkedin": "linkedin.com/in/ada",
		"education": [
			{"school": "University of London", "degree": "BSc Mathematics", "grad_year": "1835", "details": ["Analytical Engine", "Dean's list"]}
		]
	}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "github.com/ada", p.GitHub)
	assert.Equal(t, "linkedin.com/in/ada", p.LinkedIn)
	require.Len(t, p.Education, 1)
	assert.Equal(t, Year("1835"), p.Education[0].GradYear)
	assert.Equal(t, []string{"Analytical Engine", "Dean's list"}, p.Education[0].Details)
}

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Year
	}{
		{"string", `{"grad_year": "2026"}`, "2026"},
		{"free text", `{"grad_year": "Expected May 2026"}`, "Expected May 2026"},
		{"number", `{"grad_year": 2025}`, "2025"},
		{"null", `{"grad_year": null}`, ""},
		{"absent", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e EducationEntry
			require.NoError(t, json.Unmarshal([]byte(tt.json), &e))
			assert.Equal(t, tt.expected, e.GradYear)
		})
	}

	var e EducationEntry
	assert.Error(t, json.Unmarshal([]byte(`{"grad_year": [2025]}`), &e))
}

func TestYear_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected Year
	}{
		{"quoted", `grad_year: "2026"`, "2026"},
		{"bare number", `grad_year: 2025`, "2025"},
		{"null", `grad_year: ~`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e EducationEntry
			require.NoError(t, yaml.Unmarshal([]byte(tt.yaml), &e))
			assert.Equal(t, tt.expected, e.GradYear)
		})
	}

	var e EducationEntry
	assert.Error(t, yaml.Unmarshal([]byte("grad_year: [2025]"), &e))
}

func TestProfile_ContactFieldsOrder(t *testing.T) {
	p := &Profile{
		Email:    "e",
		Phone:    "p",
		Location: "l",
		GitHub:   "g",
		LinkedIn: "in",
	}

	assert.Equal(t, []string{"e", "p", "l", "g", "in"}, p.ContactFields())
}

func TestBulletTexts_PreservesOrder(t *testing.T) {
	entries := []BulletEntry{{Bullet: "b"}, {Bullet: "a"}, {Bullet: "b"}}

	assert.Equal(t, []string{"b", "a", "b"}, BulletTexts(entries))
	assert.Empty(t, BulletTexts(nil))
}

package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no special characters", "Built a Go service", "Built a Go service"},
		{"ampersand", "R&D", "R&amp;D"},
		{"angle brackets", "p99 < 200ms > before", "p99 &lt; 200ms &gt; before"},
		{"quotes", `"fast" and 'safe'`, "&quot;fast&quot; and &apos;safe&apos;"},
		{"unicode kept", "École – 2026 · 🚀", "École – 2026 · 🚀"},
		{"control characters dropped", "a\x00b\x0bc", "abc"},
		{"whitespace kept", "a\tb\nc", "a\tb\nc"},
		{"invalid utf8 replaced then kept", "a\xffb", "a�b"},
		{"multiple", "C++ & <Go>", "C++ &amp; &lt;Go&gt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeXML(tt.input))
		})
	}
}

// Package ingestion normalizes job description text before it is sent to the model.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankLineRun = regexp.MustCompile(`\n\n\n+`)
)

// NormalizeJobDescription returns a cleaned copy of a job description.
// HTML input (pasted or scraped job pages) is reduced to its main text first.
// Plain text that merely mentions tags is left alone.
func NormalizeJobDescription(raw string) string {
	if LooksLikeHTML(raw) {
		if text, ok := extractText(raw); ok {
			raw = text
		}
	}
	return CleanText(raw)
}

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims trailing space, collapses inner runs of spaces and keeps
// leading indentation so nested lists survive.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := spaceRun.ReplaceAllString(trimmed, " ")
	if isBulletLine(content) {
		content = "- " + strings.TrimSpace(content[bulletMarkerLen(content):])
	}
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	return bulletMarkerLen(line) > 0
}

func bulletMarkerLen(line string) int {
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(line, marker) {
			return len(marker)
		}
	}
	return 0
}

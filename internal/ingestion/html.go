package ingestion

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var (
	// A fragment must open with a block or inline tag. Tags mentioned inside prose do not count.
	leadingTag = regexp.MustCompile(`(?i)^<(div|p|ul|ol|li|br|section|article|main|span|table|h[1-6])[\s/>]`)
	pageMarker = regexp.MustCompile(`(?i)<(!doctype|html|body)[\s/>]`)
)

// minExtractedShare is the share of a fragment's visible text that extraction must keep
const minExtractedShare = 0.5

// LooksLikeHTML reports whether text is an HTML page or starts as an HTML fragment
func LooksLikeHTML(text string) bool {
	return isHTMLPage(text) || leadingTag.MatchString(strings.TrimSpace(text))
}

func isHTMLPage(text string) bool {
	return pageMarker.MatchString(text)
}

// extractText reduces HTML to the job posting text. Full pages trust the
// description selectors. A fragment keeps its raw text when extraction would
// drop most of what a reader sees.
func extractText(raw string) (string, bool) {
	text, err := HTMLToText(raw)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	if isHTMLPage(raw) {
		return text, true
	}

	visible, err := visibleText(raw)
	if err != nil {
		return "", false
	}
	if float64(textLen(text)) < minExtractedShare*float64(textLen(visible)) {
		return "", false
	}
	return text, true
}

// visibleText returns all text of an HTML document except scripts and styles
func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

// textLen counts runes outside whitespace
func textLen(text string) int {
	return utf8.RuneCountInString(strings.Join(strings.Fields(text), ""))
}

// HTMLToText parses HTML and returns the job posting's main text.
// Noise elements are dropped, list items become "- " lines and block
// elements end their line.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, form, button, .cookie-banner, .apply-button").Remove()

	var main *goquery.Selection
	for _, selector := range JobPostingSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	main.Find("br").ReplaceWithHtml("\n")
	main.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n- ")
	})
	main.Find("p, div, ul, ol, section, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	lines := strings.Split(main.Text(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n"), nil
}

// JobPostingSelectors returns selectors for the description block of job board pages,
// most specific first.
func JobPostingSelectors() []string {
	return []string{
		"[data-testid='job-description']",
		".job-description",
		"#job-description",
		".job-details",
		".posting-content",
		"main",
		"article",
	}
}

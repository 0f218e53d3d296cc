// Package observability provides structured logging and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintJobRequest outputs the parsed request with a preview of the description.
func (p *Printer) PrintJobRequest(req *types.JobRequest) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", req.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", req.JobTitle))
	if req.OutputPath != "" {
		sb.WriteString(fmt.Sprintf("Output:   %s\n", req.OutputPath))
	}
	sb.WriteString("\n")

	lines := strings.Split(strings.TrimSpace(req.JobDescription), "\n")
	count := min(len(lines), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(lines[i] + "\n")
	}
	if len(lines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more lines\n", len(lines)-maxItemsToShow))
	}

	p.printBox("JOB REQUEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTailoredBullets outputs the bullets returned by the model, in order.
func (p *Printer) PrintTailoredBullets(bullets []string) {
	if len(bullets) == 0 {
		p.printBox("TAILORED BULLETS", "No bullets returned")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tailored %d bullets:\n\n", len(bullets)))
	for i, bullet := range bullets {
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, bullet))
	}

	p.printBox("TAILORED BULLETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReferenceFiles outputs a summary of the loaded master bullets and profile.
func (p *Printer) PrintReferenceFiles(bulletsPath string, bullets []types.BulletEntry, profilePath string, profile *types.Profile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Bullets:  %s\n", bulletsPath))
	sb.WriteString(fmt.Sprintf("          %d candidate bullets\n", len(bullets)))
	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", bullets[i].Bullet))
	}
	if len(bullets) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bullets)-maxItemsToShow))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Profile:  %s\n", profilePath))
	if profile != nil {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
		sb.WriteString(fmt.Sprintf("Schools:  %d\n", len(profile.Education)))
		for _, edu := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", edu.School, edu.GradYear))
		}
	}

	p.printBox("REFERENCE FILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs the paragraphs of a generated document, one per line.
// Headings are underlined, bold lines are wrapped in ** and list items are bulleted.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func (p *Printer) PrintDocument(paragraphs []rendering.Paragraph) {
	for _, para := range paragraphs {
		switch {
		case para.Style == rendering.StyleHeading1:
			fmt.Fprintf(p.out, "\n%s\n%s\n", para.Text, strings.Repeat("=", len([]rune(para.Text))))
		case para.Style == rendering.StyleListBullet:
			fmt.Fprintf(p.out, "  • %s\n", para.Text)
		case para.Bold:
			fmt.Fprintf(p.out, "**%s**\n", para.Text)
		default:
			fmt.Fprintf(p.out, "%s\n", para.Text)
		}
	}
}

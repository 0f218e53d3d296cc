package rendering

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Paragraph styles. The empty style is Normal.
const (
	StyleNormal     = ""
	StyleHeading1   = "Heading1"
	StyleListBullet = "ListBullet"
)

// Section headings
const (
	HeadingEducation  = "Education"
	HeadingExperience = "Experience & Projects"
)

const contactSeparator = " · "

// Paragraph is a single paragraph with one run of text
type Paragraph struct {
	Style string
	Text  string
	Bold  bool
}

// Document is the in-memory paragraph model of a resume
type Document struct {
	Paragraphs []Paragraph
}

// Build lays out the resume and writes it to outPath
func Build(profile *types.Profile, bullets []string, jobTitle, companyName, outPath string) error {
	return NewDocument(profile, bullets, jobTitle, companyName).WriteFile(outPath)
}

// NewDocument lays out the header, the education section and the
// experience section holding the tailored bullets in the given order.
func NewDocument(profile *types.Profile, bullets []string, jobTitle, companyName string) *Document {
	if profile == nil {
		profile = &types.Profile{}
	}

	d := &Document{}
	d.AddBold(profile.Name)
	d.AddParagraph(strings.Join(profile.ContactFields(), contactSeparator))
	d.AddParagraph(fmt.Sprintf("Target Role: %s @ %s", jobTitle, companyName))

	d.AddHeading(HeadingEducation)
	for _, edu := range profile.Education {
		d.AddBold(fmt.Sprintf("%s – %s (%s)", edu.School, edu.Degree, edu.GradYear))
		for _, detail := range edu.Details {
			d.AddBullet(detail)
		}
	}

	d.AddHeading(HeadingExperience)
	for _, bullet := range bullets {
		d.AddBullet(bullet)
	}
	return d
}

// AddParagraph appends a Normal paragraph
func (d *Document) AddParagraph(text string) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Style: StyleNormal, Text: text})
}

// AddBold appends a Normal paragraph with bold text
func (d *Document) AddBold(text string) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Style: StyleNormal, Text: text, Bold: true})
}

// AddHeading appends a level 1 heading
func (d *Document) AddHeading(text string) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Style: StyleHeading1, Text: text})
}

// AddBullet appends a List Bullet paragraph
func (d *Document) AddBullet(text string) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Style: StyleListBullet, Text: text})
}

// Render writes the document as a .docx package to w
func (d *Document) Render(w io.Writer) error {
	var body bytes.Buffer
	if err := documentTemplate.Execute(&body, d); err != nil {
		return &TemplateError{Message: "failed to execute document template", Cause: err}
	}

	parts := []struct {
		name    string
		content []byte
	}{
		{partContentTypes, []byte(contentTypesXML)},
		{partRels, []byte(relsXML)},
		{partDocument, body.Bytes()},
		{partStyles, []byte(stylesXML)},
		{partNumbering, []byte(numberingXML)},
		{partDocumentRels, []byte(documentRelsXML)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := fw.Write(part.content); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

// WriteFile writes the document to path, creating parent directories.
// The package is written to a temporary file next to path and renamed into
// place, so path either holds a complete document or is left untouched.
func (d *Document) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Message: "failed to create directory for", Cause: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Message: "failed to create temporary file for", Cause: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := d.Render(tmp); err != nil {
		_ = tmp.Close()
		return &WriteError{Path: path, Message: "failed to render", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Message: "failed to flush", Cause: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &WriteError{Path: path, Message: "failed to set permissions on", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Message: "failed to move document into place at", Cause: err}
	}

	committed = true
	return nil
}

package rendering

import (
	"archive/zip"
	"encoding/xml"
	"strings"
)

type xmlDocument struct {
	Paragraphs []xmlParagraph `xml:"body>p"`
}

type xmlParagraph struct {
	Style struct {
		Val string `xml:"val,attr"`
	} `xml:"pPr>pStyle"`
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Bold bool
	Text string
}

// UnmarshalXML reads a run's children in order so w:br and w:tab land
// between the right pieces of text.
func (r *xmlRun) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				var s string
				if err := d.DecodeElement(&s, &el); err != nil {
					return err
				}
				text.WriteString(s)
				continue
			case "rPr":
				var props struct {
					Bold *struct{} `xml:"b"`
				}
				if err := d.DecodeElement(&props, &el); err != nil {
					return err
				}
				r.Bold = props.Bold != nil
				continue
			case "br", "cr":
				text.WriteString("\n")
			case "tab":
				text.WriteString("\t")
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = text.String()
			return nil
		}
	}
}

// ReadParagraphs reads the paragraphs of a .docx file in document order
func ReadParagraphs(path string) ([]Paragraph, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to open", Cause: err}
	}
	defer func() { _ = zr.Close() }()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == partDocument {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, &ReadError{Path: path, Message: partDocument + " not found in"}
	}

	rc, err := doc.Open()
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to open " + partDocument + " in", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	var parsed xmlDocument
	if err := xml.NewDecoder(rc).Decode(&parsed); err != nil {
		return nil, &ReadError{Path: path, Message: "failed to parse " + partDocument + " in", Cause: err}
	}

	paragraphs := make([]Paragraph, 0, len(parsed.Paragraphs))
	for _, p := range parsed.Paragraphs {
		var text strings.Builder
		bold := len(p.Runs) > 0
		for _, r := range p.Runs {
			text.WriteString(r.Text)
			if !r.Bold {
				bold = false
			}
		}
		paragraphs = append(paragraphs, Paragraph{Style: p.Style.Val, Text: text.String(), Bold: bold})
	}
	return paragraphs, nil
}

// Section returns the paragraphs between the named level 1 heading and the next one.
// It returns nil when the heading is absent.
func Section(paragraphs []Paragraph, heading string) []Paragraph {
	for i, p := range paragraphs {
		if p.Style != StyleHeading1 || p.Text != heading {
			continue
		}
		section := []Paragraph{}
		for _, next := range paragraphs[i+1:] {
			if next.Style == StyleHeading1 {
				break
			}
			section = append(section, next)
		}
		return section
	}
	return nil
}

// Texts returns the text of each paragraph
func Texts(paragraphs []Paragraph) []string {
	texts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		texts = append(texts, p.Text)
	}
	return texts
}

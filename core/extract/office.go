// Package extract — local OOXML parsing.
// DOCX and PPTX are ZIP packages with XML parts; both are streamed
// with encoding/xml and flattened to Markdown paragraph by paragraph.
package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// extractDocx parses a .docx file by reading word/document.xml from the
// ZIP archive and mapping heading styles to Markdown heading markers.
func extractDocx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return docxPartToMarkdown(rc)
}

// docxPartToMarkdown streams a WordprocessingML part into Markdown lines.
func docxPartToMarkdown(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var lines []string
	var currentText strings.Builder
	var inParagraph bool
	var paragraphStyle string

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "p":
				inParagraph = true
				currentText.Reset()
				paragraphStyle = ""
			case t.Name.Local == "pStyle" && inParagraph:
				for _, attr := range t.Attr {
					if attr.Name.Local == "val" {
						paragraphStyle = attr.Value
					}
				}
			}

		case xml.CharData:
			if inParagraph {
				currentText.Write(t)
			}

		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				text := strings.TrimSpace(currentText.String())
				if text == "" {
					continue
				}
				lines = append(lines, styledMarkdownLine(paragraphStyle, text), "")
			}
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

// styledMarkdownLine maps a paragraph style to its Markdown rendering.
func styledMarkdownLine(style, text string) string {
	if level := docxHeadingLevel(style); level > 0 {
		return strings.Repeat("#", level) + " " + text
	}
	lower := strings.ToLower(style)
	if strings.HasPrefix(lower, "listbullet") || lower == "listparagraph" {
		return "- " + text
	}
	if strings.HasPrefix(lower, "listnumber") {
		return "1. " + text
	}
	if lower == "quote" || lower == "intensequote" {
		return "> " + text
	}
	return text
}

// docxHeadingLevel extracts the heading level from a paragraph style name.
// e.g. "Heading1" → 1, "Heading2" → 2, "Title" → 1, etc.
func docxHeadingLevel(style string) int {
	lower := strings.ToLower(style)

	if lower == "title" {
		return 1
	}
	if lower == "subtitle" {
		return 2
	}

	// "Heading1", "heading1", "Titre1", etc.
	for _, prefix := range []string{"heading", "titre", "überschrift"} {
		if strings.HasPrefix(lower, prefix) {
			rest := lower[len(prefix):]
			if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
				return int(rest[0] - '0')
			}
		}
	}
	return 0
}

// extractPptx parses a .pptx file by reading every ppt/slides/slideN.xml
// part in slide order. Each slide becomes a section; the first text
// shape on a slide is treated as its heading.
func extractPptx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var slides []*zip.File
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	if len(slides) == 0 {
		return "", fmt.Errorf("no slides found in archive")
	}
	sort.Slice(slides, func(i, j int) bool { return slideOrder(slides[i].Name) < slideOrder(slides[j].Name) })

	var parts []string
	for _, slide := range slides {
		rc, err := slide.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", slide.Name, err)
		}
		md, err := slideToMarkdown(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", slide.Name, err)
		}
		if md != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// slideOrder extracts the numeric suffix from ppt/slides/slideN.xml.
func slideOrder(name string) int {
	name = strings.TrimSuffix(name, ".xml")
	idx := strings.LastIndex(name, "slide")
	n := 0
	for _, ch := range name[idx+len("slide"):] {
		if ch < '0' || ch > '9' {
			return n
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

// slideToMarkdown flattens one DrawingML slide: <a:p> paragraphs with
// their <a:t> text runs. The first paragraph becomes the slide heading.
func slideToMarkdown(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var paragraphs []string
	var currentText strings.Builder
	var inParagraph bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" {
				inParagraph = true
				currentText.Reset()
			}
		case xml.CharData:
			if inParagraph {
				currentText.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(currentText.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	if len(paragraphs) == 0 {
		return "", nil
	}
	lines := []string{"## " + paragraphs[0]}
	for _, p := range paragraphs[1:] {
		lines = append(lines, "", p)
	}
	return strings.Join(lines, "\n"), nil
}

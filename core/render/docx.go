// Package render — DOCX emitter.
// Assembles a minimal WordprocessingML package (archive/zip with
// [Content_Types].xml, relationship parts, document.xml, styles.xml).
// Headings, list items, and blockquotes map to named paragraph styles;
// paragraph text is decomposed into styled runs. Links render as plain
// run text; hyperlink relationships and color styling are not emitted.
package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/markconvert/core/markdown"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const docxPackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

// docxStyles defines Normal, the six heading levels, Quote, and the two
// list styles referenced by emitted paragraphs.
const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:rPr><w:sz w:val="22"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="36"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading4"><w:name w:val="heading 4"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading5"><w:name w:val="heading 5"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="24"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading6"><w:name w:val="heading 6"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="22"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720"/></w:pPr><w:rPr><w:i/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListNumber"><w:name w:val="List Number"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:style>` +
	`</w:styles>`

// DocxEmitter renders Markdown as a DOCX package.
type DocxEmitter struct{}

// NewDocxEmitter creates a DocxEmitter.
func NewDocxEmitter() *DocxEmitter {
	return &DocxEmitter{}
}

// Emit converts Markdown into DOCX bytes. Output is deterministic:
// fixed part order and zero zip timestamps.
func (e *DocxEmitter) Emit(md string) ([]byte, error) {
	var body strings.Builder
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t\r")
		writeDocxParagraph(&body, line)
	}

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`

	parts := []struct {
		name, data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxPackageRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/document.xml", document},
		{"word/styles.xml", docxStyles},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (e *DocxEmitter) Extension() string {
	return ".docx"
}

// writeDocxParagraph classifies one line and appends its paragraph XML.
func writeDocxParagraph(sb *strings.Builder, line string) {
	class, text := markdown.ClassifyLine(line)

	if level := class.HeadingLevel(); level > 0 {
		fmt.Fprintf(sb, `<w:p><w:pPr><w:pStyle w:val="Heading%d"/></w:pPr>%s</w:p>`,
			level, docxRun(text, ""))
		return
	}

	switch class {
	case markdown.BulletItem:
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListBullet"/></w:pPr>` + docxRun(text, "") + `</w:p>`)
	case markdown.NumberedItem:
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="ListNumber"/></w:pPr>` + docxRun(text, "") + `</w:p>`)
	case markdown.Blockquote:
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Quote"/></w:pPr>` + docxRun(text, "") + `</w:p>`)
	case markdown.Blank:
		// Empty paragraph preserves vertical spacing.
		sb.WriteString(`<w:p/>`)
	default:
		sb.WriteString(`<w:p>`)
		for _, span := range markdown.ScanInline(text) {
			switch span.Kind {
			case markdown.SpanBold:
				sb.WriteString(docxRun(span.Text, `<w:b/>`))
			case markdown.SpanItalic:
				sb.WriteString(docxRun(span.Text, `<w:i/>`))
			case markdown.SpanCode:
				sb.WriteString(docxRun(span.Text, `<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="20"/>`))
			default:
				// Links render as plain run text; no hyperlink styling.
				sb.WriteString(docxRun(span.Text, ""))
			}
		}
		sb.WriteString(`</w:p>`)
	}
}

// docxRun builds a single run with optional run properties XML.
func docxRun(text, props string) string {
	if props != "" {
		props = `<w:rPr>` + props + `</w:rPr>`
	}
	return `<w:r>` + props + `<w:t xml:space="preserve">` + escapeXML(text) + `</w:t></w:r>`
}

// escapeXML escapes the five XML-special characters for element content.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

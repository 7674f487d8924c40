// Package render — PDF emitter.
// The primary path converts Markdown to HTML (tables, fenced code, and
// the "extra" extensions enabled), wraps it in a fixed full-page
// template with print CSS, and delegates rasterization to the external
// HTML-render collaborator. When no renderer is configured, a direct
// gofpdf path renders the Markdown itself: headings with variable font
// sizes, paragraphs, code blocks, and lists. Images are not rendered.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/markconvert/core"
	md "github.com/gaurav-prasanna/markconvert/core/markdown"
)

// pdfCSS is the embedded print stylesheet: A4 pages, 2.5cm margins,
// fixed heading/code/table/blockquote styling.
const pdfCSS = `@page {
    size: A4;
    margin: 2.5cm;
}
body {
    font-family: 'DejaVu Sans', Arial, sans-serif;
    font-size: 11pt;
    line-height: 1.6;
    color: #333;
}
h1 {
    font-size: 24pt;
    margin-top: 20pt;
    margin-bottom: 12pt;
    border-bottom: 2px solid #333;
    padding-bottom: 6pt;
}
h2 {
    font-size: 18pt;
    margin-top: 16pt;
    margin-bottom: 10pt;
}
h3 {
    font-size: 14pt;
    margin-top: 12pt;
    margin-bottom: 8pt;
}
p {
    margin-bottom: 10pt;
}
code {
    background-color: #f4f4f4;
    padding: 2pt 4pt;
    border-radius: 3pt;
    font-family: 'DejaVu Sans Mono', 'Courier New', monospace;
    font-size: 10pt;
}
pre {
    background-color: #f4f4f4;
    padding: 12pt;
    border-radius: 4pt;
    overflow-x: auto;
    margin: 10pt 0;
}
pre code {
    background-color: transparent;
    padding: 0;
}
blockquote {
    border-left: 4pt solid #ddd;
    padding-left: 12pt;
    margin-left: 0;
    font-style: italic;
    color: #666;
}
ul, ol {
    margin-bottom: 10pt;
    padding-left: 20pt;
}
li {
    margin-bottom: 4pt;
}
table {
    border-collapse: collapse;
    width: 100%;
    margin: 10pt 0;
}
th, td {
    border: 1pt solid #ddd;
    padding: 8pt;
    text-align: left;
}
th {
    background-color: #f4f4f4;
    font-weight: bold;
}
a {
    color: #0066cc;
    text-decoration: none;
}`

// PDFEmitter renders Markdown as a PDF document.
type PDFEmitter struct {
	renderer core.HTMLRenderer
}

// NewPDFEmitter creates a PDFEmitter. renderer may be nil, in which
// case the direct gofpdf path is used instead of the HTML template.
func NewPDFEmitter(renderer core.HTMLRenderer) *PDFEmitter {
	return &PDFEmitter{renderer: renderer}
}

// Emit converts Markdown into PDF bytes.
func (e *PDFEmitter) Emit(markdownText string) ([]byte, error) {
	if e.renderer == nil {
		return e.renderDirect(markdownText)
	}
	html := WrapHTML(MarkdownToHTML(markdownText))
	data, err := e.renderer.RenderPDF(context.Background(), html)
	if err != nil {
		return nil, fmt.Errorf("rendering HTML to PDF: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for PDF output.
func (e *PDFEmitter) Extension() string {
	return ".pdf"
}

// MarkdownToHTML runs the standard Markdown-to-HTML transform with
// table, fenced-code, and the extra extensions enabled.
func MarkdownToHTML(markdownText string) string {
	exts := parser.CommonExtensions | parser.Tables | parser.FencedCode |
		parser.Footnotes | parser.DefinitionLists
	p := parser.NewWithExtensions(exts)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return string(markdown.ToHTML([]byte(markdownText), p, r))
}

// WrapHTML embeds an HTML fragment in the full-page print template.
func WrapHTML(fragment string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>\n")
	sb.WriteString(pdfCSS)
	sb.WriteString("\n</style>\n</head>\n<body>\n")
	sb.WriteString(fragment)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

// renderDirect renders the Markdown straight to PDF with gofpdf.
func (e *PDFEmitter) renderDirect(markdownText string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	lines := strings.Split(markdownText, "\n")
	inCodeBlock := false

	for _, line := range lines {
		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		class, text := md.ClassifyLine(line)

		if level := class.HeadingLevel(); level > 0 {
			renderHeading(pdf, flattenSpans(text), level)
			continue
		}

		switch class {
		case md.Blank:
			pdf.Ln(3)
		case md.BulletItem:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+flattenSpans(text), "", "L", false)
		case md.NumberedItem:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, flattenSpans(line), "", "L", false)
		case md.Blockquote:
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(102, 102, 102)
			pdf.MultiCell(0, 5, flattenSpans(text), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, flattenSpans(text), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// flattenSpans strips inline Markdown markers, keeping the text.
func flattenSpans(text string) string {
	var sb strings.Builder
	for _, span := range md.ScanInline(text) {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

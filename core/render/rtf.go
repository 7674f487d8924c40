// Package render — RTF emitter.
// Builds an RTF document from Markdown line by line using fixed
// control-word templates. Characters above code point 127 are written
// with the \uN? unicode-escape scheme, so the output is an
// ASCII-superset byte stream that legacy readers accept.
package render

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/markconvert/core/markdown"
)

// rtfHeader is the fixed preamble: one proportional font, one monospace
// font, and a minimal color table.
const rtfHeader = `{\rtf1\ansi\ansicpg1252\deff0\nouicompat\deflang1033` +
	`{\fonttbl{\f0\fswiss\fcharset0 Arial;}{\f1\fmodern\fcharset0 Courier New;}}` +
	`{\colortbl ;\red0\green0\blue0;\red102\green102\blue102;}` + "\n"

// RTFEmitter renders Markdown as an RTF document.
type RTFEmitter struct{}

// NewRTFEmitter creates an RTFEmitter.
func NewRTFEmitter() *RTFEmitter {
	return &RTFEmitter{}
}

// Emit converts Markdown into RTF bytes. Escaping happens before
// classification; the markers themselves are plain ASCII so the order
// does not change what a line classifies as.
func (e *RTFEmitter) Emit(md string) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(rtfHeader)

	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t\r")
		line = escapeRTF(line)

		class, text := markdown.ClassifyLine(line)
		switch class {
		case markdown.Heading1:
			sb.WriteString(`\pard\sa200\sl276\slmult1\b\fs32 ` + text + `\b0\fs22\par` + "\n")
		case markdown.Heading2:
			sb.WriteString(`\pard\sa200\sl276\slmult1\b\fs28 ` + text + `\b0\fs22\par` + "\n")
		case markdown.Heading3:
			sb.WriteString(`\pard\sa200\sl276\slmult1\b\fs24 ` + text + `\b0\fs22\par` + "\n")
		case markdown.BulletItem:
			sb.WriteString(`\pard\fi-360\li720\sa200\sl276\slmult1 \bullet\tab ` + text + `\par` + "\n")
		case markdown.Blockquote:
			sb.WriteString(`\pard\li720\sa200\sl276\slmult1\i ` + text + `\i0\par` + "\n")
		case markdown.Blank:
			sb.WriteString(`\par` + "\n")
		default:
			// Headings 4-6 and numbered items are not specially styled;
			// they render as regular paragraphs with the marker intact.
			sb.WriteString(`\pard\sa200\sl276\slmult1 ` + line + `\par` + "\n")
		}
	}

	sb.WriteString("}")
	return []byte(sb.String()), nil
}

// Extension returns the file extension for RTF output.
func (e *RTFEmitter) Extension() string {
	return ".rtf"
}

// escapeRTF escapes RTF-special characters and encodes every character
// above code point 127 (including multi-byte emoji) as \uN?. This is a
// unicode-escape scheme, not UTF-8-in-RTF.
func escapeRTF(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == '{':
			sb.WriteString(`\{`)
		case r == '}':
			sb.WriteString(`\}`)
		case r > 127:
			sb.WriteString(`\u` + strconv.Itoa(int(r)) + `?`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

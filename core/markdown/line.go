// Package markdown implements the shared line and inline-span
// classification used by every emitter. Classification is a pure
// function of a single line's leading characters; no cross-line state.
package markdown

import "strings"

// LineClass identifies the structural role of one Markdown line.
type LineClass int

const (
	Paragraph LineClass = iota
	Heading1
	Heading2
	Heading3
	Heading4
	Heading5
	Heading6
	BulletItem
	NumberedItem
	Blockquote
	Blank
)

// HeadingLevel returns 1-6 for heading classes and 0 otherwise.
func (c LineClass) HeadingLevel() int {
	if c >= Heading1 && c <= Heading6 {
		return int(c-Heading1) + 1
	}
	return 0
}

// linePrefix maps a literal prefix to its class. Prefixes are checked
// in table order, longest heading marker first, so "### x" never
// matches the "# " rule.
type linePrefix struct {
	prefix string
	class  LineClass
}

var linePrefixes = []linePrefix{
	{"###### ", Heading6},
	{"##### ", Heading5},
	{"#### ", Heading4},
	{"### ", Heading3},
	{"## ", Heading2},
	{"# ", Heading1},
	{"- ", BulletItem},
	{"* ", BulletItem},
	{"> ", Blockquote},
}

// ClassifyLine classifies a single line (no trailing newline) and
// returns the residual text with its marker stripped. Numbered-item
// detection recognizes single-digit markers only ("1. ".."9. ").
func ClassifyLine(line string) (LineClass, string) {
	for _, p := range linePrefixes {
		if strings.HasPrefix(line, p.prefix) {
			return p.class, line[len(p.prefix):]
		}
	}
	if len(line) >= 3 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' && line[2] == ' ' {
		return NumberedItem, line[3:]
	}
	if strings.TrimSpace(line) == "" {
		return Blank, ""
	}
	return Paragraph, line
}

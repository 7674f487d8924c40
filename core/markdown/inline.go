// Package markdown — inline span scanner.
// Decomposes paragraph text into styled spans covering the full text
// with no gaps or overlaps. Matching is leftmost-first; at the same
// position precedence is Bold > Italic > Code > Link. A marker with no
// closing counterpart falls back to plain text verbatim.
package markdown

import "strings"

// SpanKind identifies the style of an inline span.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span is one styled run of paragraph text. URL is set for SpanLink only.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// ScanInline splits paragraph text into an ordered sequence of spans.
func ScanInline(text string) []Span {
	var spans []Span
	plainStart := 0

	flush := func(end int) {
		if end > plainStart {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[plainStart:end]})
		}
	}

	i := 0
	for i < len(text) {
		var span Span
		var length int
		switch text[i] {
		case '*':
			// Bold takes priority: try the two-character marker first.
			span, length = matchBold(text[i:])
			if length == 0 {
				span, length = matchItalic(text[i:])
			}
		case '`':
			span, length = matchCode(text[i:])
		case '[':
			span, length = matchLink(text[i:])
		}
		if length == 0 {
			i++
			continue
		}
		flush(i)
		spans = append(spans, span)
		i += length
		plainStart = i
	}
	flush(len(text))
	return spans
}

// matchBold matches **text** where text is nonempty and contains no '*'.
func matchBold(s string) (Span, int) {
	if !strings.HasPrefix(s, "**") {
		return Span{}, 0
	}
	end := strings.IndexByte(s[2:], '*')
	if end <= 0 {
		return Span{}, 0
	}
	close := 2 + end
	if close+1 >= len(s) || s[close+1] != '*' {
		return Span{}, 0
	}
	return Span{Kind: SpanBold, Text: s[2:close]}, close + 2
}

// matchItalic matches *text* where text is nonempty and contains no '*'.
func matchItalic(s string) (Span, int) {
	if len(s) < 3 || s[0] != '*' {
		return Span{}, 0
	}
	end := strings.IndexByte(s[1:], '*')
	if end <= 0 {
		return Span{}, 0
	}
	return Span{Kind: SpanItalic, Text: s[1 : 1+end]}, end + 2
}

// matchCode matches `text` where text is nonempty and contains no backtick.
func matchCode(s string) (Span, int) {
	if len(s) < 3 || s[0] != '`' {
		return Span{}, 0
	}
	end := strings.IndexByte(s[1:], '`')
	if end <= 0 {
		return Span{}, 0
	}
	return Span{Kind: SpanCode, Text: s[1 : 1+end]}, end + 2
}

// matchLink matches [text](url) with nonempty text and url.
func matchLink(s string) (Span, int) {
	if len(s) == 0 || s[0] != '[' {
		return Span{}, 0
	}
	closeBracket := strings.IndexByte(s, ']')
	if closeBracket <= 1 {
		return Span{}, 0
	}
	if closeBracket+1 >= len(s) || s[closeBracket+1] != '(' {
		return Span{}, 0
	}
	closeParen := strings.IndexByte(s[closeBracket+2:], ')')
	if closeParen <= 0 {
		return Span{}, 0
	}
	text := s[1:closeBracket]
	url := s[closeBracket+2 : closeBracket+2+closeParen]
	return Span{Kind: SpanLink, Text: text, URL: url}, closeBracket + closeParen + 3
}

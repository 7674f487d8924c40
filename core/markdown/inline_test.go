package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanInline(t *testing.T) {
	spans := ScanInline("**a** and *b* and `c`")
	require.Equal(t, []Span{
		{Kind: SpanBold, Text: "a"},
		{Kind: SpanPlain, Text: " and "},
		{Kind: SpanItalic, Text: "b"},
		{Kind: SpanPlain, Text: " and "},
		{Kind: SpanCode, Text: "c"},
	}, spans)
}

func TestScanInlineLink(t *testing.T) {
	spans := ScanInline("see [docs](https://example.com) here")
	require.Len(t, spans, 3)
	assert.Equal(t, Span{Kind: SpanPlain, Text: "see "}, spans[0])
	assert.Equal(t, Span{Kind: SpanLink, Text: "docs", URL: "https://example.com"}, spans[1])
	assert.Equal(t, Span{Kind: SpanPlain, Text: " here"}, spans[2])
}

func TestScanInlineCoversFullText(t *testing.T) {
	inputs := []string{
		"**a** and *b* and `c`",
		"plain only",
		"*i* at start and **b** at end: **x**",
		"[t](u) then text",
		"",
	}
	for _, in := range inputs {
		var sb strings.Builder
		for _, s := range ScanInline(in) {
			switch s.Kind {
			case SpanBold:
				sb.WriteString("**" + s.Text + "**")
			case SpanItalic:
				sb.WriteString("*" + s.Text + "*")
			case SpanCode:
				sb.WriteString("`" + s.Text + "`")
			case SpanLink:
				sb.WriteString("[" + s.Text + "](" + s.URL + ")")
			default:
				sb.WriteString(s.Text)
			}
		}
		assert.Equal(t, in, sb.String(), "spans must cover the input with no gaps")
	}
}

func TestScanInlineUnmatchedMarkers(t *testing.T) {
	// A stray * stays verbatim in plain text.
	spans := ScanInline("a * b")
	require.Equal(t, []Span{{Kind: SpanPlain, Text: "a * b"}}, spans)

	// Unterminated bold falls through entirely.
	spans = ScanInline("**open")
	require.Equal(t, []Span{{Kind: SpanPlain, Text: "**open"}}, spans)

	// Bracket without (url) is plain.
	spans = ScanInline("[not a link]")
	require.Equal(t, []Span{{Kind: SpanPlain, Text: "[not a link]"}}, spans)
}

func TestScanInlineBoldBeatsItalic(t *testing.T) {
	spans := ScanInline("**strong**")
	require.Equal(t, []Span{{Kind: SpanBold, Text: "strong"}}, spans)
}

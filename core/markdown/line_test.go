package markdown

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line     string
		class    LineClass
		residual string
	}{
		{"# Title", Heading1, "Title"},
		{"## Sub", Heading2, "Sub"},
		{"### Title", Heading3, "Title"},
		{"#### Deep", Heading4, "Deep"},
		{"##### Deeper", Heading5, "Deeper"},
		{"###### Deepest", Heading6, "Deepest"},
		{"- item", BulletItem, "item"},
		{"* item", BulletItem, "item"},
		{"1. first", NumberedItem, "first"},
		{"9. ninth", NumberedItem, "ninth"},
		{"> quoted", Blockquote, "quoted"},
		{"", Blank, ""},
		{"   ", Blank, ""},
		{"\t", Blank, ""},
		{"plain text", Paragraph, "plain text"},
		// No space after the marker: not a heading.
		{"#hashtag", Paragraph, "#hashtag"},
		// Multi-digit markers are not recognized (known limitation).
		{"10. tenth", Paragraph, "10. tenth"},
		// Leading whitespace defeats prefix matching.
		{"  - indented", Paragraph, "  - indented"},
	}

	for _, tt := range tests {
		class, residual := ClassifyLine(tt.line)
		if class != tt.class || residual != tt.residual {
			t.Errorf("ClassifyLine(%q) = (%v, %q), want (%v, %q)",
				tt.line, class, residual, tt.class, tt.residual)
		}
	}
}

func TestClassifyLineDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		class, residual := ClassifyLine("### Title")
		if class != Heading3 || residual != "Title" {
			t.Fatalf("run %d: got (%v, %q)", i, class, residual)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	if got := Heading1.HeadingLevel(); got != 1 {
		t.Errorf("Heading1.HeadingLevel() = %d, want 1", got)
	}
	if got := Heading6.HeadingLevel(); got != 6 {
		t.Errorf("Heading6.HeadingLevel() = %d, want 6", got)
	}
	if got := BulletItem.HeadingLevel(); got != 0 {
		t.Errorf("BulletItem.HeadingLevel() = %d, want 0", got)
	}
}

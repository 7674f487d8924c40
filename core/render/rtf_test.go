package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscapeRTF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a{b}", `a\{b\}`},
		{`back\slash`, `back\\slash`},
		{"€", `\u8364?`},
		{"café", `caf\u233?`},
		{"plain ascii", "plain ascii"},
		// Emoji escape as a single code point, not surrogate pairs.
		{"\U0001F600", `\u128512?`},
	}
	for _, tt := range tests {
		if got := escapeRTF(tt.in); got != tt.want {
			t.Errorf("escapeRTF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRTFEmitterStructure(t *testing.T) {
	e := NewRTFEmitter()
	out, err := e.Emit("# Title\n\n- item\n> quote\nbody")
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)

	if !strings.HasPrefix(s, `{\rtf1\ansi`) {
		t.Errorf("missing RTF preamble: %q", s[:20])
	}
	if !strings.HasSuffix(s, "}") {
		t.Error("missing closing brace")
	}
	for _, want := range []string{
		`\b\fs32 Title\b0\fs22\par`,
		`\bullet\tab item\par`,
		`\li720\sa200\sl276\slmult1\i quote\i0\par`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRTFEmitterHeadingGap(t *testing.T) {
	// Levels 4-6 are not specially styled; the marker stays in the text.
	e := NewRTFEmitter()
	out, err := e.Emit("#### Deep")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `\pard\sa200\sl276\slmult1 #### Deep\par`) {
		t.Errorf("heading 4 should render as a plain paragraph, got %q", out)
	}
}

func TestRTFEmitterDeterministic(t *testing.T) {
	e := NewRTFEmitter()
	in := "# Title\n\nSome **bold** text with € and emoji \U0001F600.\n- item\n"
	a, err := e.Emit(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Emit(in)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("RTF output differs between identical runs")
	}
}

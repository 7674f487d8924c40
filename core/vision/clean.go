// Package vision — cleanup of LLM-added code-fence wrappers.
// Backends often wrap their own Markdown output in a fenced block;
// the wrapper has to go, aggressively.
package vision

import "strings"

// StripCodeFences removes a leading fence line (with or without a
// language tag), a trailing fence, and any stray fence-only lines left
// in the body.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimLeft(text[len("```markdown"):], "\n")
	} else if strings.HasPrefix(text, "```") {
		if nl := strings.IndexByte(text, '\n'); nl != -1 {
			text = strings.TrimLeft(text[nl+1:], "\n")
		}
	}

	if strings.HasSuffix(text, "```") {
		text = strings.TrimRight(text[:len(text)-3], "\n")
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "```" || stripped == "```markdown" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Package extract converts structured office documents into Markdown.
// Two implementations of core.Extractor live here: Service, an HTTP
// client for an external extraction collaborator, and Local, an
// in-process fallback for the formats it can parse itself.
//
// This file handles HTML: it isolates the main content by
//  1. Finding the best content container (<main>, <article>, or <body>)
//  2. Removing noise elements (nav, footer, scripts, images, etc.)
//
// and then converts the cleaned fragment to Markdown.
package extract

import (
	"fmt"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful content to the document text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// extractHTML reads an HTML file and returns its main content as Markdown.
func extractHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return HTMLToMarkdown(string(data))
}

// HTMLToMarkdown strips noise from an HTML document and converts the
// main content to Markdown.
func HTMLToMarkdown(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	// Remove noise elements first (operates on the whole document).
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Find the best content container in priority order.
	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

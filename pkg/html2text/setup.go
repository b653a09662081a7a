package html2text

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Parser turns raw HTML into readable text. The pipeline treats text
// extraction as an opaque capability; NewParser returns the default
// implementation and callers may substitute their own.
type Parser interface {
	Parse(raw string) (string, error)
}

// TreeParser is the default Parser: it walks the DOM, drops the elements
// that never carry body text, and collapses whitespace.
type TreeParser struct{}

func NewParser() *TreeParser {
	return &TreeParser{}
}

// skippedElements never contribute readable text.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"head":     {},
	"nav":      {},
	"footer":   {},
	"iframe":   {},
	"svg":      {},
}

// blockElements force a line break around their content so headings and
// paragraphs do not run into each other.
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {}, "li": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"tr": {}, "br": {}, "pre": {}, "blockquote": {},
}

// Parse extracts the readable text of an HTML page.
func (p *TreeParser) Parse(raw string) (string, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("html2text: parse: %w", err)
	}

	var b strings.Builder
	walk(root, &b)
	return collapse(b.String()), nil
}

func walk(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		if _, skip := skippedElements[n.Data]; skip {
			return
		}
		if _, block := blockElements[n.Data]; block {
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, b)
	}
}

// collapse squeezes runs of spaces and blank lines left behind by markup.
func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Title returns the contents of the page's <title> element, if any.
func Title(raw string) string {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	return findTitle(root)
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return strings.TrimSpace(n.FirstChild.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

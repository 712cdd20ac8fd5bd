// Package htmltext flattens the HTML fragments the API embeds in subtitle
// descriptions into plain text for terminal output.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Plain returns the text content of fragment with entities decoded, <br> and
// paragraph breaks turned into newlines, and runs of blanks collapsed.
// Input that fails to parse is returned trimmed but otherwise unchanged.
func Plain(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithNodes(newline())
	})
	doc.Find("p, div, li").Each(func(_ int, s *goquery.Selection) {
		s.AppendNodes(newline())
	})

	return collapse(doc.Text())
}

// collapse squeezes horizontal whitespace within each line and drops empty lines.
func collapse(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}

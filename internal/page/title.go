// Package page inspects and rewrites the HTML documents a development
// server hands out.
package page

import (
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Title returns the text of the first <title> element in the document,
// trimmed. Empty when the document has no title or cannot be parsed.
func Title(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.TrimSpace(sb.String())
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return title
}

// TitleOf reads the document at path and returns its title. Empty when
// the file is unreadable.
func TitleOf(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	return Title(f)
}

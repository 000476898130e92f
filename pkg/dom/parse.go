package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse reads HTML from r and converts it into a document tree rooted at
// the <html> element. Comments, doctypes, and whitespace-only text are
// dropped; the rendering pipeline has no use for them.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	root := findRootElement(doc)
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return convert(root), nil
}

// ParseString is Parse over an in-memory document.
func ParseString(source string) (*Node, error) {
	return Parse(strings.NewReader(source))
}

func findRootElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

func convert(n *html.Node) *Node {
	attrs := make(AttrMap, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	elem := Elem(n.Data, attrs)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			elem.AddChild(convert(c))
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				elem.AddChild(Text(c.Data))
			}
		}
	}
	return elem
}

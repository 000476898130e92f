package dom

import (
	"sort"
	"strings"
)

// AttrMap holds an element's attributes.
type AttrMap map[string]string

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one node of the document tree: an element with a tag name and
// attributes, or a text leaf. Children are exclusively owned by their
// parent and there are no back-references, so a subtree can be walked and
// mutated without aliasing concerns.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes AttrMap
	Text       string
	Children   []*Node
}

// Elem builds an element node.
func Elem(tag string, attrs AttrMap, children ...*Node) *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: attrs,
		Children:   children,
	}
}

// Text builds a text leaf.
func Text(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// GetAttribute returns the named attribute and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// ID returns the element's id attribute and whether it is present.
func (n *Node) ID() (string, bool) {
	return n.GetAttribute("id")
}

// Classes returns the whitespace-tokenized class attribute.
func (n *Node) Classes() []string {
	class, ok := n.GetAttribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}

// HasClass reports whether the element carries the given class token.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddChild appends a child node.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Count returns the number of nodes in the subtree, n included.
func (n *Node) Count() int {
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// String renders the tree with two-space indentation, one node per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.walk(&sb, 0)
	return sb.String()
}

func (n *Node) walk(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat(" ", indent))
	if n.Type == TextNode {
		sb.WriteString("#text: ")
		sb.WriteString(n.Text)
	} else {
		sb.WriteByte('<')
		sb.WriteString(n.TagName)
		// sort attributes for deterministic output
		names := make([]string, 0, len(n.Attributes))
		for name := range n.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(n.Attributes[name])
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		child.walk(sb, indent+2)
	}
}

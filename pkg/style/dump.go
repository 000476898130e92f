package style

import (
	"sort"
	"strings"

	"vellum/pkg/dom"
)

// String renders the styled tree with two-space indentation, listing each
// node's resolved properties in name order.
func (sn *StyledNode) String() string {
	var sb strings.Builder
	sn.walk(&sb, 0)
	return sb.String()
}

func (sn *StyledNode) walk(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat(" ", indent))
	if sn.Node.Type == dom.TextNode {
		sb.WriteString("#text: ")
		sb.WriteString(sn.Node.Text)
	} else {
		sb.WriteString(sn.Node.TagName)
		names := make([]string, 0, len(sn.Specified))
		for name := range sn.Specified {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(" ")
			sb.WriteString(name)
			sb.WriteString("=")
			sb.WriteString(sn.Specified[name].String())
		}
	}
	sb.WriteByte('\n')
	for _, child := range sn.Children {
		child.walk(sb, indent+2)
	}
}

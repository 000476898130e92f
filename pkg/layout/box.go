// Package layout converts a styled tree into a geometry tree of block,
// inline, and anonymous boxes, then solves the box model: top-down width
// and position, bottom-up height, with deterministic distribution of
// layout underflow across the margin, border, and padding edges.
package layout

import (
	"fmt"
	"strings"

	"vellum/pkg/style"
)

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeSizes holds the thickness of the four sides of one box-model ring.
type EdgeSizes struct {
	Left, Right, Top, Bottom float64
}

// Dimensions is a box's geometry: the content rectangle plus the padding,
// border, and margin rings around it.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// ExpandedBy grows the rectangle outward by one edge ring.
func (r Rect) ExpandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box plus borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box plus margins.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BoxType classifies a layout box.
type BoxType int

const (
	BlockBox BoxType = iota
	InlineBox
	AnonymousBlock
)

// LayoutBox is one node of the geometry tree. Block and inline boxes
// borrow the styled node they were generated from; anonymous blocks have
// none. The styled tree must stay alive for the whole render pass.
type LayoutBox struct {
	BoxType    BoxType
	Dimensions Dimensions
	styled     *style.StyledNode
	Children   []*LayoutBox
}

func newBox(t BoxType, sn *style.StyledNode) *LayoutBox {
	return &LayoutBox{BoxType: t, styled: sn}
}

// StyledNode returns the styled node a block or inline box was generated
// from. Requesting it from an anonymous block is a contract violation:
// construction never gives one a style.
func (b *LayoutBox) StyledNode() *style.StyledNode {
	if b.BoxType == AnonymousBlock {
		panic("layout: anonymous block has no styled node")
	}
	return b.styled
}

// buildTree builds the geometry tree for a styled node, depth-first.
// display:none nodes are omitted, subtree included. Block children attach
// directly; inline children under a block parent are grouped into a
// trailing anonymous block so their heights stack as one unit.
func buildTree(sn *style.StyledNode) *LayoutBox {
	var root *LayoutBox
	switch sn.Display() {
	case style.DisplayBlock:
		root = newBox(BlockBox, sn)
	default:
		root = newBox(InlineBox, sn)
	}

	for _, child := range sn.Children {
		switch child.Display() {
		case style.DisplayBlock:
			root.Children = append(root.Children, buildTree(child))
		case style.DisplayInline:
			c := root.inlineContainer()
			c.Children = append(c.Children, buildTree(child))
		case style.DisplayNone:
			// omitted with its whole subtree
		}
	}
	return root
}

// inlineContainer returns the box that should receive an inline child:
// the box itself when it is inline or anonymous, otherwise a trailing
// anonymous block (reused when one is already last, so consecutive inline
// runs share a wrapper).
func (b *LayoutBox) inlineContainer() *LayoutBox {
	if b.BoxType == InlineBox || b.BoxType == AnonymousBlock {
		return b
	}
	if n := len(b.Children); n > 0 && b.Children[n-1].BoxType == AnonymousBlock {
		return b.Children[n-1]
	}
	anon := newBox(AnonymousBlock, nil)
	b.Children = append(b.Children, anon)
	return anon
}

func (t BoxType) String() string {
	switch t {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	}
	return "unknown"
}

// String renders the geometry tree with two-space indentation.
func (b *LayoutBox) String() string {
	var sb strings.Builder
	b.walk(&sb, 0)
	return sb.String()
}

func (b *LayoutBox) walk(sb *strings.Builder, indent int) {
	c := b.Dimensions.Content
	fmt.Fprintf(sb, "%s%s x=%g y=%g w=%g h=%g\n",
		strings.Repeat(" ", indent), b.BoxType, c.X, c.Y, c.Width, c.Height)
	for _, child := range b.Children {
		child.walk(sb, indent+2)
	}
}

// Package paint walks a solved geometry tree and emits the ordered
// drawing-command list for a rendering backend. List order is paint
// order: later commands composite over earlier ones.
package paint

import (
	"fmt"
	"strings"

	"vellum/pkg/css"
	"vellum/pkg/layout"
)

// CommandKind discriminates the DisplayCommand variant.
type CommandKind int

const (
	SolidColorCmd CommandKind = iota
	TextCmd
)

// DisplayCommand is one drawable primitive: a solid-color rectangle or a
// text run.
type DisplayCommand struct {
	Kind  CommandKind
	Color css.Color
	Rect  layout.Rect
	Text  string
}

// SolidColor builds a solid-color fill command.
func SolidColor(c css.Color, r layout.Rect) DisplayCommand {
	return DisplayCommand{Kind: SolidColorCmd, Color: c, Rect: r}
}

// Text builds a text command.
func Text(text string, r layout.Rect) DisplayCommand {
	return DisplayCommand{Kind: TextCmd, Text: text, Rect: r}
}

// DisplayList is the ordered command sequence for one render pass. It is
// built once and handed to exactly one backend call.
type DisplayList []DisplayCommand

// Build walks the geometry tree pre-order and emits, per box: the text run
// for text leaves, the background fill, and the four border edges, then
// the children. A child's commands therefore come after its parent's
// background and composite over it.
func Build(root *layout.LayoutBox) DisplayList {
	var list DisplayList
	renderBox(&list, root)
	return list
}

func renderBox(list *DisplayList, b *layout.LayoutBox) {
	renderText(list, b)
	renderBackground(list, b)
	renderBorders(list, b)
	for _, child := range b.Children {
		renderBox(list, child)
	}
}

func renderText(list *DisplayList, b *layout.LayoutBox) {
	if b.BoxType == layout.AnonymousBlock {
		return
	}
	if sn := b.StyledNode(); sn.IsText() {
		*list = append(*list, Text(sn.Node.Text, b.Dimensions.BorderBox()))
	}
}

func renderBackground(list *DisplayList, b *layout.LayoutBox) {
	if color, ok := styleColor(b, "background"); ok {
		*list = append(*list, SolidColor(color, b.Dimensions.BorderBox()))
	}
}

// renderBorders emits one thin rectangle per edge, flush to the border
// box, in left, right, top, bottom order.
func renderBorders(list *DisplayList, b *layout.LayoutBox) {
	color, ok := styleColor(b, "border-color")
	if !ok {
		return
	}

	d := b.Dimensions
	box := d.BorderBox()

	*list = append(*list,
		SolidColor(color, layout.Rect{
			X: box.X, Y: box.Y,
			Width: d.Border.Left, Height: box.Height,
		}),
		SolidColor(color, layout.Rect{
			X: box.X + box.Width - d.Border.Right, Y: box.Y,
			Width: d.Border.Right, Height: box.Height,
		}),
		SolidColor(color, layout.Rect{
			X: box.X, Y: box.Y,
			Width: box.Width, Height: d.Border.Top,
		}),
		SolidColor(color, layout.Rect{
			X: box.X, Y: box.Y + box.Height - d.Border.Bottom,
			Width: box.Width, Height: d.Border.Bottom,
		}),
	)
}

// styleColor reads a color property off the box's styled node. Anonymous
// blocks have no style and contribute no commands of their own.
func styleColor(b *layout.LayoutBox, name string) (css.Color, bool) {
	if b.BoxType == layout.AnonymousBlock {
		return css.Color{}, false
	}
	return b.StyledNode().Color(name)
}

func (c DisplayCommand) String() string {
	r := c.Rect
	switch c.Kind {
	case SolidColorCmd:
		return fmt.Sprintf("solid %s rect(%g, %g, %g, %g)",
			css.ColorOf(c.Color), r.X, r.Y, r.Width, r.Height)
	case TextCmd:
		return fmt.Sprintf("text %q rect(%g, %g, %g, %g)",
			c.Text, r.X, r.Y, r.Width, r.Height)
	}
	return "unknown"
}

// String renders the list one command per line, in paint order.
func (l DisplayList) String() string {
	var sb strings.Builder
	for _, cmd := range l {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

package layout

import "vellum/pkg/css"

// layoutInline positions the box like a block, lays out its children, and
// then, for text leaves, sizes the content rectangle from the text metrics
// provider. Inline width is never computed from style up front.
func (b *LayoutBox) layoutInline(containing Dimensions, m TextMetrics) {
	b.calculateInlinePosition(containing)
	b.layoutInlineChildren(m)

	sn := b.StyledNode()
	if sn.IsText() {
		w, h := m.Measure(sn.Node.Text)
		b.Dimensions.Content.Width = w
		b.Dimensions.Content.Height = h
	}
}

// calculateInlinePosition resolves edges through the same per-side →
// shorthand → zero chain as blocks and places the content rectangle with
// the same formula.
func (b *LayoutBox) calculateInlinePosition(containing Dimensions) {
	sn := b.StyledNode()
	zero := css.Length(0, css.Px)
	d := &b.Dimensions

	d.Margin.Left = sn.Lookup("margin-left", "margin", zero).ToPx()
	d.Margin.Right = sn.Lookup("margin-right", "margin", zero).ToPx()
	d.Margin.Top = sn.Lookup("margin-top", "margin", zero).ToPx()
	d.Margin.Bottom = sn.Lookup("margin-bottom", "margin", zero).ToPx()
	d.Border.Top = sn.Lookup("border-top-width", "border-width", zero).ToPx()
	d.Border.Bottom = sn.Lookup("border-bottom-width", "border-width", zero).ToPx()
	d.Padding.Top = sn.Lookup("padding-top", "padding", zero).ToPx()
	d.Padding.Bottom = sn.Lookup("padding-bottom", "padding", zero).ToPx()

	d.Content.X = containing.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containing.Content.Height + containing.Content.Y +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutInlineChildren accumulates children heights like a block, but the
// width tracks the last child's margin box instead of summing.
func (b *LayoutBox) layoutInlineChildren(m TextMetrics) {
	d := &b.Dimensions
	for _, child := range b.Children {
		child.layout(*d, m)
		d.Content.Width = child.Dimensions.MarginBox().Width
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
}

// layoutAnonymous lays out a synthesized wrapper: no style lookups, width
// from the last child's margin box, height accumulated over all children.
func (b *LayoutBox) layoutAnonymous(containing Dimensions, m TextMetrics) {
	d := &b.Dimensions
	for _, child := range b.Children {
		child.layout(containing, m)
		d.Content.Width = child.Dimensions.MarginBox().Width
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
}

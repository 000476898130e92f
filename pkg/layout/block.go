package layout

import "vellum/pkg/css"

func (b *LayoutBox) layoutBlock(containing Dimensions, m TextMetrics) {
	// Width depends on the containing block; position on the siblings
	// laid out before us; height on our children.
	b.calculateBlockWidth(containing)
	b.calculateBlockPosition(containing)
	b.layoutBlockChildren(m)
	b.calculateBlockHeight()
}

// calculateBlockWidth resolves the seven horizontal quantities and
// distributes the underflow between the available width and their sum.
//
// Over-constrained boxes absorb the deficit strictly right-to-left then
// width: margin-right, border-right, padding-right, padding-left,
// border-left, margin-left, width, each clamping at zero and passing the
// remainder on. Under-constrained boxes give the entire surplus to an
// auto width, or to margin-right when the width is fixed. There is no
// auto-margin balancing.
func (b *LayoutBox) calculateBlockWidth(containing Dimensions) {
	sn := b.StyledNode()
	auto := css.Keyword("auto")
	zero := css.Length(0, css.Px)

	width := auto
	if v, ok := sn.Value("width"); ok {
		width = v
	}
	marginLeft := sn.Lookup("margin-left", "margin", zero)
	marginRight := sn.Lookup("margin-right", "margin", zero)
	borderLeft := sn.Lookup("border-left-width", "border-width", zero)
	borderRight := sn.Lookup("border-right-width", "border-width", zero)
	paddingLeft := sn.Lookup("padding-left", "padding", zero)
	paddingRight := sn.Lookup("padding-right", "padding", zero)

	total := marginRight.ToPx() + borderRight.ToPx() + paddingRight.ToPx() +
		paddingLeft.ToPx() + borderLeft.ToPx() + marginLeft.ToPx() + width.ToPx()

	underflow := containing.Content.Width - total
	switch {
	case underflow < 0:
		// Materialize everything (auto resolves to 0), then absorb the
		// deficit in fixed order, clamping each quantity at zero.
		materialize(&width, &marginLeft, &marginRight,
			&borderLeft, &borderRight, &paddingLeft, &paddingRight)
		underflow = consume(underflow, &marginRight)
		underflow = consume(underflow, &borderRight)
		underflow = consume(underflow, &paddingRight)
		underflow = consume(underflow, &paddingLeft)
		underflow = consume(underflow, &borderLeft)
		underflow = consume(underflow, &marginLeft)
		consume(underflow, &width)
	case width.IsKeyword("auto"):
		width = css.Length(underflow, css.Px)
		materialize(&marginLeft, &marginRight,
			&borderLeft, &borderRight, &paddingLeft, &paddingRight)
	default:
		marginRight = css.Length(marginRight.ToPx()+underflow, css.Px)
	}

	d := &b.Dimensions
	d.Content.Width = width.ToPx()
	d.Margin.Left = marginLeft.ToPx()
	d.Margin.Right = marginRight.ToPx()
	d.Border.Left = borderLeft.ToPx()
	d.Border.Right = borderRight.ToPx()
	d.Padding.Left = paddingLeft.ToPx()
	d.Padding.Right = paddingRight.ToPx()
}

// materialize replaces each value with its concrete pixel length; auto
// and other non-lengths become 0.
func materialize(values ...*css.Value) {
	for _, v := range values {
		*v = css.Length(v.ToPx(), css.Px)
	}
}

// consume lets one quantity absorb as much deficit as it can without
// going below zero, and returns the remaining deficit.
func consume(underflow float64, v *css.Value) float64 {
	flow := v.ToPx() + underflow
	if flow > 0 {
		*v = css.Length(flow, css.Px)
		return 0
	}
	*v = css.Length(0, css.Px)
	return flow
}

// calculateBlockPosition resolves the vertical edges and positions the
// content rectangle inside the containing block. The containing block's
// content height at this point is the accumulated height of the siblings
// laid out before this box.
func (b *LayoutBox) calculateBlockPosition(containing Dimensions) {
	sn := b.StyledNode()
	zero := css.Length(0, css.Px)
	d := &b.Dimensions

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

// layoutBlockChildren lays out each child against this box as its
// containing block, stacking them vertically: each child's margin-box
// height accumulates into this box's content height before the next
// child is positioned.
func (b *LayoutBox) layoutBlockChildren(m TextMetrics) {
	d := &b.Dimensions
	for _, child := range b.Children {
		child.layout(*d, m)
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
}

// calculateBlockHeight keeps the accumulated children height unless the
// style gives an explicit pixel height, which overrides it.
func (b *LayoutBox) calculateBlockHeight() {
	if v, ok := b.StyledNode().Value("height"); ok && v.Kind == css.LengthValue {
		b.Dimensions.Content.Height = v.ToPx()
	}
}

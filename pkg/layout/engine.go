package layout

import (
	"fmt"
	"unicode/utf8"

	"vellum/pkg/style"
)

// TextMetrics sizes text runs for layout. The engine ships with fixed
// approximate metrics; a provider backed by real font measurement can be
// substituted without touching the layout algorithm.
type TextMetrics interface {
	// Measure returns the width and height of a single-line text run.
	Measure(text string) (width, height float64)
}

// FixedMetrics sizes text as character count times a constant advance, at
// a constant line height.
type FixedMetrics struct {
	Advance    float64
	LineHeight float64
}

// DefaultMetrics matches the engine's historical approximation: 8px per
// character, 16px lines.
var DefaultMetrics = FixedMetrics{Advance: 8, LineHeight: 16}

func (m FixedMetrics) Measure(text string) (width, height float64) {
	return float64(utf8.RuneCountInString(text)) * m.Advance, m.LineHeight
}

// Engine lays out styled trees against a fixed viewport. It holds no
// per-pass state; each Layout call owns its trees exclusively.
type Engine struct {
	viewport Dimensions
	metrics  TextMetrics
}

// NewEngine creates an engine for the given viewport, in pixels.
func NewEngine(viewportWidth, viewportHeight float64) *Engine {
	e := &Engine{metrics: DefaultMetrics}
	e.viewport.Content.Width = viewportWidth
	e.viewport.Content.Height = viewportHeight
	return e
}

// SetMetrics replaces the text metrics provider.
func (e *Engine) SetMetrics(m TextMetrics) {
	e.metrics = m
}

// Layout builds the geometry tree for the styled tree and solves it. The
// styled root must not be display:none; that is a configuration error
// with no defined recovery.
func (e *Engine) Layout(root *style.StyledNode) (*LayoutBox, error) {
	if root.Display() == style.DisplayNone {
		return nil, fmt.Errorf("layout: root node is display: none")
	}

	// The containing block's height starts at zero: block positioning
	// reads it as the accumulated height of prior siblings.
	containing := e.viewport
	containing.Content.Height = 0

	box := buildTree(root)
	box.layout(containing, e.metrics)
	return box, nil
}

// layout solves one box against its containing block: one function per
// box kind, top-down for width and position, bottom-up for height.
func (b *LayoutBox) layout(containing Dimensions, m TextMetrics) {
	switch b.BoxType {
	case BlockBox:
		b.layoutBlock(containing, m)
	case InlineBox:
		b.layoutInline(containing, m)
	case AnonymousBlock:
		b.layoutAnonymous(containing, m)
	}
}

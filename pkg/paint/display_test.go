package paint

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vellum/pkg/css"
	"vellum/pkg/dom"
	"vellum/pkg/layout"
	"vellum/pkg/style"
)

func build(t *testing.T, root *dom.Node, cssSource string, viewportWidth float64) DisplayList {
	t.Helper()
	sheet, err := css.Parse(cssSource)
	if err != nil {
		t.Fatalf("parsing stylesheet: %v", err)
	}
	styled := style.Resolve(root, sheet)
	box, err := layout.NewEngine(viewportWidth, 600).Layout(styled)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return Build(box)
}

func TestBackgroundFillsBorderBox(t *testing.T) {
	list := build(t, dom.Elem("div", nil), `
		div { display: block; width: 40px; height: 10px; padding: 3px; background: #ff0000; }
	`, 200)

	want := DisplayList{
		SolidColor(css.Color{R: 255, G: 0, B: 0, A: 255}, layout.Rect{X: 0, Y: 0, Width: 46, Height: 16}),
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("display list mismatch (-want +got):\n%s", diff)
	}
}

func TestBorderEdges(t *testing.T) {
	list := build(t, dom.Elem("div", nil), `
		div { display: block; width: 40px; height: 10px;
		      border-width: 2px; border-color: #0000ff; }
	`, 200)

	blue := css.Color{R: 0, G: 0, B: 255, A: 255}
	want := DisplayList{
		SolidColor(blue, layout.Rect{X: 0, Y: 0, Width: 2, Height: 14}),   // left
		SolidColor(blue, layout.Rect{X: 42, Y: 0, Width: 2, Height: 14}),  // right
		SolidColor(blue, layout.Rect{X: 0, Y: 0, Width: 44, Height: 2}),   // top
		SolidColor(blue, layout.Rect{X: 0, Y: 12, Width: 44, Height: 2}),  // bottom
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("border edges mismatch (-want +got):\n%s", diff)
	}
}

func TestBordersSkippedWithoutColor(t *testing.T) {
	list := build(t, dom.Elem("div", nil), `
		div { display: block; height: 10px; border-width: 2px; }
	`, 200)

	if len(list) != 0 {
		t.Errorf("expected no commands without border-color, got:\n%s", list)
	}
}

func TestPaintOrderBackgroundBeforeChildren(t *testing.T) {
	root := dom.Elem("div", nil,
		dom.Elem("p", nil),
	)
	list := build(t, root, `
		div, p { display: block; }
		div { height: 50px; background: #ffffff; }
		p { height: 10px; background: #00ff00; }
	`, 100)

	if len(list) != 2 {
		t.Fatalf("expected 2 commands, got %d:\n%s", len(list), list)
	}
	if list[0].Color != (css.Color{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("parent background must paint first, got %v", list[0])
	}
	if list[1].Color != (css.Color{R: 0, G: 255, B: 0, A: 255}) {
		t.Errorf("child background must paint over parent, got %v", list[1])
	}
}

func TestTextLeavesEmitTextCommands(t *testing.T) {
	root := dom.Elem("div", nil, dom.Text("hi"))
	list := build(t, root, `div { display: block; background: #eeeeee; }`, 100)

	// parent background, then the text run; the anonymous wrapper in
	// between contributes nothing of its own.
	if len(list) != 2 {
		t.Fatalf("expected 2 commands, got %d:\n%s", len(list), list)
	}
	if list[0].Kind != SolidColorCmd {
		t.Errorf("expected background first, got %v", list[0])
	}
	want := Text("hi", layout.Rect{X: 0, Y: 0, Width: 16, Height: 16})
	if diff := cmp.Diff(want, list[1]); diff != "" {
		t.Errorf("text command mismatch (-want +got):\n%s", diff)
	}
}

func TestAnonymousBlockContributesNothing(t *testing.T) {
	root := dom.Elem("div", nil,
		dom.Elem("span", nil),
		dom.Elem("span", nil),
	)
	list := build(t, root, `div { display: block; }`, 100)

	if len(list) != 0 {
		t.Errorf("expected empty list for styleless tree, got:\n%s", list)
	}
}

func TestUnstyledBoxEmitsNoBackground(t *testing.T) {
	list := build(t, dom.Elem("div", nil), `div { display: block; height: 10px; }`, 100)
	if len(list) != 0 {
		t.Errorf("expected no commands without background, got:\n%s", list)
	}
}

func TestNonColorBackgroundIgnored(t *testing.T) {
	list := build(t, dom.Elem("div", nil), `
		div { display: block; height: 10px; background: none; }
	`, 100)
	if len(list) != 0 {
		t.Errorf("keyword background must not paint, got:\n%s", list)
	}
}

package engine

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"vellum/pkg/layout"
	"vellum/pkg/paint"
)

const pageHTML = `
<html>
  <body>
    <div class="box">hello</div>
    <p id="footer">bye</p>
  </body>
</html>`

const pageCSS = `
	html, body, div, p { display: block; }
	.box { width: 120px; height: 40px; background: #cc0000; margin: 8px; }
	#footer { background: #eeeeee; border-width: 1px; border-color: #000000; }
`

func TestDisplayListDeterministic(t *testing.T) {
	r := New(400, 300)
	first, err := r.DisplayList(pageHTML, pageCSS)
	if err != nil {
		t.Fatalf("DisplayList: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected non-empty display list")
	}
	for i := 0; i < 5; i++ {
		again, err := r.DisplayList(pageHTML, pageCSS)
		if err != nil {
			t.Fatalf("DisplayList: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("pass %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestDisplayListSurvivesMalformedCSS(t *testing.T) {
	list, err := New(400, 300).DisplayList(
		`<html><body><div>x</div></body></html>`,
		`broken { width: ; } html, body, div { display: block; } div { background: #00ff00; }`,
	)
	if err != nil {
		t.Fatalf("expected malformed rules skipped, got error: %v", err)
	}
	var found bool
	for _, cmd := range list {
		if cmd.Kind == paint.SolidColorCmd {
			found = true
		}
	}
	if !found {
		t.Error("expected surviving rules applied")
	}
}

func TestDisplayListRootDisplayNone(t *testing.T) {
	_, err := New(400, 300).DisplayList(
		`<html><body>x</body></html>`,
		`html { display: none; }`,
	)
	if err == nil {
		t.Fatal("expected error for display:none root")
	}
}

func TestWithMetricsOption(t *testing.T) {
	r := New(400, 300, WithMetrics(layout.FixedMetrics{Advance: 10, LineHeight: 20}))
	list, err := r.DisplayList(
		`<html><body>abc</body></html>`,
		`html, body { display: block; }`,
	)
	if err != nil {
		t.Fatalf("DisplayList: %v", err)
	}
	var text *paint.DisplayCommand
	for i := range list {
		if list[i].Kind == paint.TextCmd {
			text = &list[i]
		}
	}
	if text == nil {
		t.Fatal("expected a text command")
	}
	if text.Rect.Width != 30 || text.Rect.Height != 20 {
		t.Errorf("expected 30x20 text box from custom metrics, got %gx%g",
			text.Rect.Width, text.Rect.Height)
	}
}

func TestRenderFillsTarget(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 50, 50))
	err := New(50, 50).Render(
		`<html><body></body></html>`,
		`html, body { display: block; } body { height: 50px; background: #ff0000; }`,
		target,
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	r, g, b, _ := target.At(25, 25).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red pixel at center, got rgb(%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

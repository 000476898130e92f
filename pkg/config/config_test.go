package config

import (
	"os"
	"path/filepath"
	"testing"

	"vellum/pkg/layout"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Viewport.Width != 800 || c.Viewport.Height != 600 {
		t.Errorf("unexpected default viewport: %+v", c.Viewport)
	}
	if c.Output != "out.png" {
		t.Errorf("unexpected default output: %q", c.Output)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	content := `
viewport:
  width: 1024
text:
  advance: 9
output: page.png
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Viewport.Width != 1024 {
		t.Errorf("expected width override 1024, got %g", c.Viewport.Width)
	}
	if c.Viewport.Height != 600 {
		t.Errorf("expected default height kept, got %g", c.Viewport.Height)
	}
	if c.Text.Advance != 9 {
		t.Errorf("expected advance override 9, got %g", c.Text.Advance)
	}
	if c.Output != "page.png" {
		t.Errorf("expected output override, got %q", c.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("viewport: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestMetricsFixed(t *testing.T) {
	c := Default()
	c.Text.Advance = 10
	c.Text.LineHeight = 20

	m, err := c.Metrics()
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	fixed, ok := m.(layout.FixedMetrics)
	if !ok {
		t.Fatalf("expected FixedMetrics without a font, got %T", m)
	}
	if fixed.Advance != 10 || fixed.LineHeight != 20 {
		t.Errorf("unexpected metrics: %+v", fixed)
	}
}

func TestMetricsMissingFont(t *testing.T) {
	c := Default()
	c.Text.Font = "no-such-font.ttf"
	if _, err := c.Metrics(); err == nil {
		t.Fatal("expected error for missing font file")
	}
}

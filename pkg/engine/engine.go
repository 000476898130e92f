// Package engine ties the pipeline together: parse → style → layout →
// paint → render, one synchronous pass per call. Each pass owns its trees
// exclusively; reflecting changed input means running a fresh pass.
package engine

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"vellum/pkg/css"
	"vellum/pkg/dom"
	"vellum/pkg/layout"
	"vellum/pkg/paint"
	"vellum/pkg/render"
	"vellum/pkg/style"
)

// Renderer runs render passes at a fixed viewport size.
type Renderer struct {
	viewportWidth  float64
	viewportHeight float64
	metrics        layout.TextMetrics
	fontPath       string
	fontSize       float64
	log            *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithMetrics substitutes the text metrics provider used during layout.
func WithMetrics(m layout.TextMetrics) Option {
	return func(r *Renderer) { r.metrics = m }
}

// WithFont sets the font used to draw text commands.
func WithFont(path string, size float64) Option {
	return func(r *Renderer) { r.fontPath = path; r.fontSize = size }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// New creates a renderer for the given viewport, in pixels.
func New(viewportWidth, viewportHeight float64, opts ...Option) *Renderer {
	r := &Renderer{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		metrics:        layout.DefaultMetrics,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DisplayList runs the pipeline up to painting and returns the ordered
// command list for the given document and stylesheet sources.
func (r *Renderer) DisplayList(htmlSource, cssSource string) (paint.DisplayList, error) {
	root, err := dom.ParseString(htmlSource)
	if err != nil {
		return nil, err
	}
	r.log.Debug("parsed document", zap.Int("nodes", root.Count()))

	sheet, err := css.Parse(cssSource)
	if err != nil {
		// Malformed rules were skipped; the remaining sheet is usable.
		r.log.Warn("stylesheet has malformed rules", zap.Error(err))
	}
	r.log.Debug("parsed stylesheet", zap.Int("rules", len(sheet.Rules)))

	styled := style.Resolve(root, sheet)

	eng := layout.NewEngine(r.viewportWidth, r.viewportHeight)
	eng.SetMetrics(r.metrics)
	box, err := eng.Layout(styled)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	list := paint.Build(box)
	r.log.Debug("built display list", zap.Int("commands", len(list)))
	return list, nil
}

// Render runs a full pass and paints the result onto target.
func (r *Renderer) Render(htmlSource, cssSource string, target *image.RGBA) error {
	list, err := r.DisplayList(htmlSource, cssSource)
	if err != nil {
		return err
	}
	backend := render.NewRendererForImage(target)
	if r.fontPath != "" {
		if err := backend.SetFontFace(r.fontPath, r.fontSize); err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
	}
	backend.Render(list)
	return nil
}

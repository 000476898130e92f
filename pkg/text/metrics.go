// Package text provides real text-metrics providers for the layout
// engine, as substitutes for its fixed character-advance approximation.
package text

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontMetrics measures text with a loaded font face. It satisfies
// layout.TextMetrics.
type FontMetrics struct {
	dc         *gg.Context
	lineHeight float64
}

// NewFontMetrics loads a TTF/OTF font at the given size for measurement.
// Line height is fixed at 1.2 times the font size.
func NewFontMetrics(fontPath string, size float64) (*FontMetrics, error) {
	// Measurement only; the context is never drawn to.
	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(fontPath, size); err != nil {
		return nil, fmt.Errorf("loading font %s: %w", fontPath, err)
	}
	return &FontMetrics{dc: dc, lineHeight: size * 1.2}, nil
}

// Measure returns the rendered width of the text and the line height.
func (m *FontMetrics) Measure(text string) (width, height float64) {
	w, _ := m.dc.MeasureString(text)
	return w, m.lineHeight
}

// FaceMetrics measures text with an x/image font.Face. It satisfies
// layout.TextMetrics.
type FaceMetrics struct {
	face font.Face
}

// NewFaceMetrics wraps an existing font face.
func NewFaceMetrics(face font.Face) *FaceMetrics {
	return &FaceMetrics{face: face}
}

// NewBasicMetrics returns metrics backed by the built-in 7x13 bitmap face.
// Useful in tests and environments without font files.
func NewBasicMetrics() *FaceMetrics {
	return NewFaceMetrics(basicfont.Face7x13)
}

// Measure returns the advance width of the text and the face's line height.
func (m *FaceMetrics) Measure(text string) (width, height float64) {
	adv := font.MeasureString(m.face, text)
	line := m.face.Metrics().Height
	return fixedToPx(adv), fixedToPx(line)
}

// fixedToPx converts a 26.6 fixed-point value to pixels.
func fixedToPx(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Package render is the rasterization backend: it consumes an ordered
// display list and paints it onto an image, in list order, with simple
// overwrite fills.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"vellum/pkg/paint"
)

// Renderer rasterizes display lists onto a gg context.
type Renderer struct {
	dc *gg.Context
}

// NewRenderer creates a renderer with a white canvas of the given size.
func NewRenderer(width, height int) *Renderer {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Renderer{dc: dc}
}

// NewRendererForImage creates a renderer that paints onto an existing
// image. The image is cleared to white first.
func NewRendererForImage(target *image.RGBA) *Renderer {
	dc := gg.NewContextForRGBA(target)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Renderer{dc: dc}
}

// SetFontFace loads a TTF/OTF font for text commands. Without it, text is
// drawn with gg's built-in bitmap face.
func (r *Renderer) SetFontFace(path string, size float64) error {
	return r.dc.LoadFontFace(path, size)
}

// Render paints every command in list order. Later commands overwrite
// earlier ones, which is what makes the list's paint order meaningful.
func (r *Renderer) Render(list paint.DisplayList) {
	for _, cmd := range list {
		switch cmd.Kind {
		case paint.SolidColorCmd:
			c := cmd.Color
			r.dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
			r.dc.DrawRectangle(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
			r.dc.Fill()
		case paint.TextCmd:
			r.dc.SetRGB(0, 0, 0)
			// Anchor at the top-left of the command rectangle.
			r.dc.DrawStringAnchored(cmd.Text, cmd.Rect.X, cmd.Rect.Y, 0, 1)
		}
	}
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// Package render rasterizes extracted draw primitives with fogleman/gg.
// It is a debug and preview backend: the extraction output is an ordered
// list of solid rectangles, so any real renderer can consume it instead.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"edgekit/pkg/extract"
	"edgekit/pkg/style"
)

// Renderer draws primitive lists into an offscreen image.
type Renderer struct {
	context *gg.Context
}

// NewRenderer creates a renderer with a width x height pixel target.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render clears the target to the given background and draws the primitives
// in list order. The list is already paint-ordered; nothing is sorted here.
func (r *Renderer) Render(prims []extract.Primitive, background style.Color) {
	r.setColor(background)
	r.context.Clear()

	for _, p := range prims {
		r.drawPrimitive(p)
	}
}

func (r *Renderer) drawPrimitive(p extract.Primitive) {
	if p.Size.X <= 0 || p.Size.Y <= 0 {
		return
	}
	if p.Clip != nil {
		clipSize := p.Clip.Size()
		if clipSize.X <= 0 || clipSize.Y <= 0 {
			return
		}
		r.context.DrawRectangle(p.Clip.Min.X, p.Clip.Min.Y, clipSize.X, clipSize.Y)
		r.context.Clip()
		defer r.context.ResetClip()
	}
	r.setColor(p.Color)
	r.context.DrawRectangle(
		p.Center.X-p.Size.X/2,
		p.Center.Y-p.Size.Y/2,
		p.Size.X,
		p.Size.Y,
	)
	r.context.Fill()
}

func (r *Renderer) setColor(c style.Color) {
	r.context.SetRGBA(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0,
		c.A,
	)
}

// Image returns the render target.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the render target to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}

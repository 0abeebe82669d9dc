// Package extract converts computed node geometry plus the paint-order stack
// into renderer-consumable draw primitives. It runs once per frame over the
// whole visible stack: visibility, clipping, and paint order can all change
// without the underlying geometry changing.
package extract

import (
	"edgekit/pkg/geom"
	"edgekit/pkg/scene"
	"edgekit/pkg/style"
)

// Primitive is one solid-color rectangle for the render backend: a stack
// index for paint order, a world-space center position, a size, a fill
// color, and an optional world-space clip rectangle.
type Primitive struct {
	StackIndex int
	Center     geom.Vec2
	Size       geom.Vec2
	Color      style.Color
	Clip       *geom.Rect
}

// Borders appends one primitive per non-nil border edge of every visible
// stacked node to out and returns the extended slice. Edge order per node is
// always left, right, top, bottom. Stack entries whose node no longer exists
// are skipped: paint order and node data may be transiently inconsistent,
// that is not an error.
func Borders(s *scene.Scene, stack []scene.NodeID, out []Primitive) []Primitive {
	for i, id := range stack {
		out = edges(out, s, i, id, s.CalculatedBorder(id), s.BorderColor(id))
	}
	return out
}

// Outlines appends one primitive per non-nil outline edge of every visible
// stacked node, with the same ordering and skip rules as Borders.
func Outlines(s *scene.Scene, stack []scene.NodeID, out []Primitive) []Primitive {
	for i, id := range stack {
		out = edges(out, s, i, id, s.CalculatedOutline(id), s.OutlineColor(id))
	}
	return out
}

func edges(out []Primitive, s *scene.Scene, stackIndex int, id scene.NodeID, er geom.EdgeRects, c style.Color) []Primitive {
	if !s.Contains(id) || !s.Visible(id) || c.A == 0 {
		return out
	}
	center := s.WorldCenter(id)
	clip := s.Clip(id)
	for _, r := range er {
		if r == nil {
			continue
		}
		out = append(out, Primitive{
			StackIndex: stackIndex,
			Center:     center.Add(r.Center()),
			Size:       r.Size(),
			Color:      c,
			Clip:       clip,
		})
	}
	return out
}

// Backgrounds appends one primitive per visible stacked node with a
// non-transparent background fill and a non-collapsed box.
func Backgrounds(s *scene.Scene, stack []scene.NodeID, out []Primitive) []Primitive {
	for i, id := range stack {
		c := s.Background(id)
		if !s.Contains(id) || !s.Visible(id) || c.A == 0 {
			continue
		}
		size := s.Size(id)
		if size.X <= 0 || size.Y <= 0 {
			continue
		}
		out = append(out, Primitive{
			StackIndex: i,
			Center:     s.WorldCenter(id),
			Size:       size,
			Color:      c,
			Clip:       s.Clip(id),
		})
	}
	return out
}

package border

import "edgekit/pkg/geom"

// ring decomposes the area between outer and the inner boundary carved in by
// t into four edge rectangles that tile the ring without overlapping, even
// when the four thicknesses are asymmetric:
//
//	left and right span the ring's full height, top and bottom fit between
//	them. The inner max is clamped to the inner min so that thickness
//	exceeding the box collapses the inner boundary to a line instead of
//	inverting it.
//
// Edges with zero or negative area come back nil.
func ring(outer geom.Rect, t Thickness) geom.EdgeRects {
	innerMin := outer.Min.Add(geom.Vec2{X: t.Left, Y: t.Top})
	innerMax := outer.Max.Sub(geom.Vec2{X: t.Right, Y: t.Bottom}).Max(innerMin)

	var er geom.EdgeRects
	er.Set(geom.EdgeLeft, geom.Rect{
		Min: outer.Min,
		Max: geom.Vec2{X: innerMin.X, Y: outer.Max.Y},
	})
	er.Set(geom.EdgeRight, geom.Rect{
		Min: geom.Vec2{X: innerMax.X, Y: outer.Min.Y},
		Max: outer.Max,
	})
	er.Set(geom.EdgeTop, geom.Rect{
		Min: geom.Vec2{X: innerMin.X, Y: outer.Min.Y},
		Max: geom.Vec2{X: innerMax.X, Y: innerMin.Y},
	})
	er.Set(geom.EdgeBottom, geom.Rect{
		Min: geom.Vec2{X: innerMin.X, Y: innerMax.Y},
		Max: geom.Vec2{X: innerMax.X, Y: outer.Max.Y},
	})
	return er
}

// BorderRects carves border edge rectangles inward from a box of the given
// size, in local coordinates centered on the box. A collapsed box (width or
// height <= 0) has no border: all four edges are nil.
func BorderRects(size geom.Vec2, t Thickness) geom.EdgeRects {
	if size.X <= 0 || size.Y <= 0 {
		return geom.EdgeRects{}
	}
	return ring(geom.RectFromCenterSize(geom.Vec2{}, size), t)
}

// OutlineRects carves outline edge rectangles outward from a box of the
// given size; the resulting rects lie entirely outside the box. Like
// BorderRects, a collapsed box yields all-nil edges.
func OutlineRects(size geom.Vec2, t Thickness) geom.EdgeRects {
	if size.X <= 0 || size.Y <= 0 {
		return geom.EdgeRects{}
	}
	half := size.Scale(0.5)
	outer := geom.Rect{
		Min: geom.Vec2{X: -(half.X + t.Left), Y: -(half.Y + t.Top)},
		Max: geom.Vec2{X: half.X + t.Right, Y: half.Y + t.Bottom},
	}
	return ring(outer, t)
}

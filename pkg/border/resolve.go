// Package border computes drawable border and outline geometry for scene
// nodes. A node's border is carved inward from its box, an outline outward;
// both decompose into up to four non-overlapping per-edge rectangles via the
// same ring construction and the same thickness resolution.
//
// Every function here is total: degenerate inputs (collapsed boxes, thickness
// exceeding the box, missing parents) produce degenerate outputs, never
// errors.
package border

import "edgekit/pkg/style"

// Thickness is a resolved per-edge thickness in layout units, always >= 0.
type Thickness struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// ResolveThickness resolves a single length value against the parent box
// width. Auto resolves to 0; percentages of a zero or absent parent width
// resolve to 0. The result is clamped to be non-negative.
func ResolveThickness(v style.Val, parentWidth float64) float64 {
	var t float64
	switch v.Unit {
	case style.UnitPx:
		t = v.Value
	case style.UnitPercent:
		t = parentWidth * v.Value / 100
	}
	return max(t, 0)
}

// Resolve resolves all four edges of a thickness spec.
func Resolve(e style.Edges, parentWidth float64) Thickness {
	return Thickness{
		Left:   ResolveThickness(e.Left, parentWidth),
		Right:  ResolveThickness(e.Right, parentWidth),
		Top:    ResolveThickness(e.Top, parentWidth),
		Bottom: ResolveThickness(e.Bottom, parentWidth),
	}
}

package geom

// Vec2 is a 2D point or extent in layout units.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max(v.X, o.X), max(v.Y, o.Y)}
}

// Rect is an axis-aligned rectangle described by its min and max corners.
// A rect with Min == Max has zero area; nothing guarantees Min <= Max, callers
// that need a well-formed rect must check HasArea first.
type Rect struct {
	Min Vec2
	Max Vec2
}

// RectFromCenterSize builds a rect of the given size centered on c.
func RectFromCenterSize(c, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Size returns the rect's width and height.
func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the rect's midpoint.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// HasArea reports whether the rect has strictly positive width and height.
func (r Rect) HasArea() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// Translate returns the rect shifted by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Intersect returns the overlap of r and o. The result may be empty
// (HasArea() == false) when the rects do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: r.Min.Max(o.Min),
		Max: Vec2{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

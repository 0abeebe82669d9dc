package geom

// Edge identifies one side of a box.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// EdgeRects holds the up-to-four rectangles that make up a border or outline
// ring, indexed by Edge. A nil entry means the edge has no drawable area.
// Rects are in node-local coordinates centered on the node's own center.
type EdgeRects [4]*Rect

// Reset clears all four edges.
func (er *EdgeRects) Reset() {
	*er = EdgeRects{}
}

// Set stores rect at edge e when it has positive area, nil otherwise.
func (er *EdgeRects) Set(e Edge, r Rect) {
	if r.HasArea() {
		er[e] = &r
	} else {
		er[e] = nil
	}
}

// Equal reports whether two edge sets hold identical rectangles.
func (er EdgeRects) Equal(o EdgeRects) bool {
	for i := range er {
		a, b := er[i], o[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

package scene

import "edgekit/pkg/geom"

// UpdateClipping recomputes every node's inherited clip rectangle. A node is
// clipped to the intersection of the world-space boxes of all ancestors that
// have clipping enabled. Nodes with no clipping ancestor get a nil clip.
// Run after the host finalizes sizes and positions, before extraction.
func (s *Scene) UpdateClipping() {
	for _, id := range s.roots {
		s.propagateClip(id, nil)
	}
}

func (s *Scene) propagateClip(id NodeID, inherited *geom.Rect) {
	n := s.get(id)
	if n == nil {
		return
	}
	n.calcClip = inherited

	childClip := inherited
	if n.clipping {
		own := geom.RectFromCenterSize(s.WorldCenter(id), n.size)
		if inherited != nil {
			own = own.Intersect(*inherited)
		}
		childClip = &own
	}
	for _, child := range n.children {
		s.propagateClip(child, childClip)
	}
}

// Clip returns the node's inherited clip rectangle in world space, or nil
// when the node is unclipped.
func (s *Scene) Clip(id NodeID) *geom.Rect {
	if n := s.get(id); n != nil {
		return n.calcClip
	}
	return nil
}

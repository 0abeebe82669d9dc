package scene

import "sort"

// Stack returns the paint-order list of node handles, back to front: parents
// before children, siblings ordered by z-index with document order breaking
// ties. The index of a handle in the returned slice is its stack index.
func (s *Scene) Stack() []NodeID {
	out := make([]NodeID, 0, len(s.nodes))
	s.pushStack(&out, s.roots)
	return out
}

func (s *Scene) pushStack(out *[]NodeID, ids []NodeID) {
	ordered := make([]NodeID, len(ids))
	copy(ordered, ids)
	sort.SliceStable(ordered, func(i, j int) bool {
		return s.nodes[ordered[i]].zIndex < s.nodes[ordered[j]].zIndex
	})
	for _, id := range ordered {
		n := s.get(id)
		if n == nil {
			continue
		}
		*out = append(*out, id)
		s.pushStack(out, n.children)
	}
}

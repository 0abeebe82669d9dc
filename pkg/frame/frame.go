// Package frame sequences the per-frame passes: geometry recompute after the
// host has finalized sizes, then clipping, then extraction over the paint
// stack. Each frame's primitive list fully replaces the previous one.
package frame

import (
	"sort"

	"edgekit/pkg/border"
	"edgekit/pkg/extract"
	"edgekit/pkg/scene"
)

// Pipeline holds the stateful recompute passes for one scene. Reuse the same
// Pipeline across frames so change gating carries over; a fresh Pipeline
// recomputes everything on its first run.
type Pipeline struct {
	borders  border.BorderPass
	outlines border.OutlinePass
}

// Render runs one frame: border and outline recompute, clip propagation, and
// the three extraction passes. The result is ordered by stack index, with
// each node's background under its border under its outline.
func (p *Pipeline) Render(s *scene.Scene) []extract.Primitive {
	p.borders.Run(s)
	p.outlines.Run(s)
	s.UpdateClipping()

	stack := s.Stack()
	prims := extract.Backgrounds(s, stack, nil)
	prims = extract.Borders(s, stack, prims)
	prims = extract.Outlines(s, stack, prims)
	sort.SliceStable(prims, func(i, j int) bool {
		return prims[i].StackIndex < prims[j].StackIndex
	})
	return prims
}

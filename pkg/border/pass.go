package border

import "edgekit/pkg/scene"

// BorderPass recomputes border geometry for nodes whose box size, border
// spec, or parent changed since the pass last ran. Run it after the host
// finalizes node sizes for the frame.
type BorderPass struct {
	lastRun uint64
}

// Run updates CalculatedBorder on every changed node. Unchanged nodes keep
// their prior geometry untouched.
func (p *BorderPass) Run(s *scene.Scene) {
	mark := s.Generation()
	for _, id := range s.Nodes() {
		if !s.Changed(id, scene.FieldSize|scene.FieldBorder|scene.FieldParent, p.lastRun) {
			continue
		}
		t := Resolve(s.Border(id), s.ParentWidth(id))
		s.SetCalculatedBorder(id, BorderRects(s.Size(id), t))
	}
	p.lastRun = mark
}

// OutlinePass recomputes outline geometry for nodes whose box size, outline
// spec, or parent changed since the pass last ran. Independent of BorderPass;
// the two may run in either order.
type OutlinePass struct {
	lastRun uint64
}

// Run updates CalculatedOutline on every changed node.
func (p *OutlinePass) Run(s *scene.Scene) {
	mark := s.Generation()
	for _, id := range s.Nodes() {
		if !s.Changed(id, scene.FieldSize|scene.FieldOutline|scene.FieldParent, p.lastRun) {
			continue
		}
		t := Resolve(s.Outline(id), s.ParentWidth(id))
		s.SetCalculatedOutline(id, OutlineRects(s.Size(id), t))
	}
	p.lastRun = mark
}

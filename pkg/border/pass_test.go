package border

import (
	"testing"

	"edgekit/pkg/geom"
	"edgekit/pkg/scene"
	"edgekit/pkg/style"
)

func newBorderedScene(t *testing.T) (*scene.Scene, scene.NodeID) {
	t.Helper()
	s := scene.New()
	id := s.Spawn(scene.NoNode)
	s.SetSize(id, geom.Vec2{X: 100, Y: 100})
	s.SetBorder(id, style.EdgesAll(style.Px(10)))
	return s, id
}

func TestBorderPassComputesEdges(t *testing.T) {
	s, id := newBorderedScene(t)

	var pass BorderPass
	pass.Run(s)

	got := s.CalculatedBorder(id)
	want := BorderRects(geom.Vec2{X: 100, Y: 100}, Thickness{Left: 10, Right: 10, Top: 10, Bottom: 10})
	if !got.Equal(want) {
		t.Errorf("calculated border = %+v, want %+v", got, want)
	}
}

func TestBorderPassIdempotent(t *testing.T) {
	s, id := newBorderedScene(t)

	var pass BorderPass
	pass.Run(s)
	first := s.CalculatedBorder(id)
	pass.Run(s)
	second := s.CalculatedBorder(id)

	if !first.Equal(second) {
		t.Errorf("repeated run changed geometry: %+v vs %+v", first, second)
	}
}

// The pass must not touch nodes whose inputs did not change. Calculated
// geometry is derived data, so overwriting it directly does not mark the
// node changed; a second run must leave the overwrite in place.
func TestBorderPassSkipsUnchangedNodes(t *testing.T) {
	s, id := newBorderedScene(t)

	var pass BorderPass
	pass.Run(s)

	s.SetCalculatedBorder(id, geom.EdgeRects{})
	pass.Run(s)
	if got := s.CalculatedBorder(id); got[geom.EdgeLeft] != nil {
		t.Error("pass recomputed a node with no changed inputs")
	}

	// A size stamp makes it recompute again.
	s.SetSize(id, geom.Vec2{X: 100, Y: 100})
	pass.Run(s)
	if got := s.CalculatedBorder(id); got[geom.EdgeLeft] == nil {
		t.Error("pass did not recompute after a size change")
	}
}

func TestBorderPassRecomputesOnSpecChange(t *testing.T) {
	s, id := newBorderedScene(t)

	var pass BorderPass
	pass.Run(s)

	s.SetBorder(id, style.EdgesLeft(style.Px(10)))
	pass.Run(s)

	got := s.CalculatedBorder(id)
	if got[geom.EdgeLeft] == nil || got[geom.EdgeRight] != nil {
		t.Errorf("expected left-only border after spec change, got %+v", got)
	}
}

func TestBorderPassRecomputesOnReparent(t *testing.T) {
	s := scene.New()
	parent := s.Spawn(scene.NoNode)
	s.SetSize(parent, geom.Vec2{X: 200, Y: 200})
	id := s.Spawn(scene.NoNode)
	s.SetSize(id, geom.Vec2{X: 100, Y: 100})
	s.SetBorder(id, style.EdgesAll(style.Percent(10)))

	var pass BorderPass
	pass.Run(s)
	// Root node: percent resolves against width 0, no edges.
	if got := s.CalculatedBorder(id); got[geom.EdgeLeft] != nil {
		t.Fatalf("parentless percent border must resolve to zero, got %+v", got)
	}

	s.SetParent(id, parent)
	pass.Run(s)
	// Under a 200-wide parent, 10% resolves to 20 per edge.
	got := s.CalculatedBorder(id)
	left := got[geom.EdgeLeft]
	if left == nil {
		t.Fatal("expected a left border edge after reparenting")
	}
	if want := (geom.Rect{Min: geom.Vec2{X: -50, Y: -50}, Max: geom.Vec2{X: -30, Y: 50}}); *left != want {
		t.Errorf("left edge = %+v, want %+v", *left, want)
	}
}

// Change gating follows the node's own inputs: resizing the parent without
// touching the child does not re-resolve the child's percent thickness.
func TestBorderPassDoesNotTrackParentResize(t *testing.T) {
	s := scene.New()
	parent := s.Spawn(scene.NoNode)
	s.SetSize(parent, geom.Vec2{X: 200, Y: 200})
	id := s.Spawn(parent)
	s.SetSize(id, geom.Vec2{X: 100, Y: 100})
	s.SetBorder(id, style.EdgesAll(style.Percent(10)))

	var pass BorderPass
	pass.Run(s)
	before := s.CalculatedBorder(id)

	s.SetSize(parent, geom.Vec2{X: 400, Y: 200})
	pass.Run(s)
	if got := s.CalculatedBorder(id); !got.Equal(before) {
		t.Errorf("child recomputed on parent resize alone: %+v vs %+v", got, before)
	}
}

func TestOutlinePassComputesEdges(t *testing.T) {
	s := scene.New()
	id := s.Spawn(scene.NoNode)
	s.SetSize(id, geom.Vec2{X: 100, Y: 100})
	s.SetOutline(id, style.EdgesAll(style.Px(10)))

	var pass OutlinePass
	pass.Run(s)

	got := s.CalculatedOutline(id)
	want := OutlineRects(geom.Vec2{X: 100, Y: 100}, Thickness{Left: 10, Right: 10, Top: 10, Bottom: 10})
	if !got.Equal(want) {
		t.Errorf("calculated outline = %+v, want %+v", got, want)
	}
	if s.CalculatedBorder(id)[geom.EdgeLeft] != nil {
		t.Error("outline pass must not touch border geometry")
	}
}

func TestPassesIndependent(t *testing.T) {
	s, id := newBorderedScene(t)
	s.SetOutline(id, style.EdgesAll(style.Px(5)))

	var borders BorderPass
	var outlines OutlinePass
	outlines.Run(s)
	borders.Run(s)

	if s.CalculatedBorder(id)[geom.EdgeLeft] == nil {
		t.Error("border missing after running both passes")
	}
	if s.CalculatedOutline(id)[geom.EdgeLeft] == nil {
		t.Error("outline missing after running both passes")
	}
}

// Package scene is an arena-backed store for a retained UI node tree.
//
// Nodes are addressed by integer handles rather than pointers so that parent
// lookups are indexed and stale handles from a previous frame degrade to
// "not found" instead of dangling references. Every authored mutation stamps
// the node with the scene's current generation, which the geometry passes
// compare against to recompute only what changed.
package scene

import (
	"edgekit/pkg/geom"
	"edgekit/pkg/style"
)

// NodeID is a handle into a Scene's node arena.
type NodeID int32

// NoNode is the null handle, used for "no parent".
const NoNode NodeID = -1

// Field identifies a group of authored node fields for change detection.
type Field uint8

const (
	FieldSize Field = 1 << iota
	FieldBorder
	FieldOutline
	FieldParent
)

type node struct {
	alive    bool
	parent   NodeID
	children []NodeID

	size     geom.Vec2 // content box width/height
	position geom.Vec2 // top-left corner within the parent's box
	zIndex   int
	visible  bool
	clipping bool // clip descendants to this node's box

	background   style.Color
	border       style.Edges
	borderColor  style.Color
	outline      style.Edges
	outlineColor style.Color

	calcBorder  geom.EdgeRects
	calcOutline geom.EdgeRects
	calcClip    *geom.Rect

	// Generation stamps for change-gated recomputation.
	sizeGen    uint64
	borderGen  uint64
	outlineGen uint64
	parentGen  uint64
}

// Scene owns the node arena and the global mutation generation.
type Scene struct {
	nodes []node
	roots []NodeID
	gen   uint64
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Generation returns the scene's current mutation generation. It increases
// by one for every authored mutation.
func (s *Scene) Generation() uint64 {
	return s.gen
}

func (s *Scene) bump() uint64 {
	s.gen++
	return s.gen
}

// Spawn creates a node under parent (NoNode for a root node). New nodes are
// visible, zero-sized, and have no border or outline.
func (s *Scene) Spawn(parent NodeID) NodeID {
	gen := s.bump()
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, node{
		alive:   true,
		parent:  parent,
		visible: true,
		sizeGen: gen, borderGen: gen, outlineGen: gen, parentGen: gen,
	})
	if n := s.get(parent); n != nil {
		n.children = append(n.children, id)
	} else {
		s.roots = append(s.roots, id)
	}
	return id
}

// Despawn removes a node and its descendants. Handles to despawned nodes
// remain invalid forever; Contains reports false for them.
func (s *Scene) Despawn(id NodeID) {
	if !s.Contains(id) {
		return
	}
	s.detach(id)
	s.despawnSubtree(id)
	s.bump()
}

// despawnSubtree kills id and everything below it. The child list is taken
// before the node is zeroed so the walk never reads a mutated slice; nodes
// inside a dying subtree are not detached individually, the whole subtree is
// already unlinked at its root.
func (s *Scene) despawnSubtree(id NodeID) {
	n := s.get(id)
	if n == nil {
		return
	}
	children := n.children
	*n = node{}
	for _, child := range children {
		s.despawnSubtree(child)
	}
}

// detach removes id from its parent's child list (or the root list).
func (s *Scene) detach(id NodeID) {
	n := s.get(id)
	if p := s.get(n.parent); p != nil {
		p.children = removeID(p.children, id)
	} else {
		s.roots = removeID(s.roots, id)
	}
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Contains reports whether id refers to a live node.
func (s *Scene) Contains(id NodeID) bool {
	return s.get(id) != nil
}

func (s *Scene) get(id NodeID) *node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	n := &s.nodes[id]
	if !n.alive {
		return nil
	}
	return n
}

// mustGet panics on a dead handle. Mutating a despawned node is a caller bug;
// read paths never use this.
func (s *Scene) mustGet(id NodeID) *node {
	n := s.get(id)
	if n == nil {
		panic("scene: dead node handle")
	}
	return n
}

// Changed reports whether any of the given field groups on id were mutated
// after generation since. Dead handles report false.
func (s *Scene) Changed(id NodeID, fields Field, since uint64) bool {
	n := s.get(id)
	if n == nil {
		return false
	}
	if fields&FieldSize != 0 && n.sizeGen > since {
		return true
	}
	if fields&FieldBorder != 0 && n.borderGen > since {
		return true
	}
	if fields&FieldOutline != 0 && n.outlineGen > since {
		return true
	}
	if fields&FieldParent != 0 && n.parentGen > since {
		return true
	}
	return false
}

// SetSize sets the node's content box size.
func (s *Scene) SetSize(id NodeID, size geom.Vec2) {
	n := s.mustGet(id)
	n.size = size
	n.sizeGen = s.bump()
}

// Size returns the node's content box size.
func (s *Scene) Size(id NodeID) geom.Vec2 {
	if n := s.get(id); n != nil {
		return n.size
	}
	return geom.Vec2{}
}

// SetPosition sets the node's top-left corner relative to its parent's
// top-left corner (or the scene origin for roots).
func (s *Scene) SetPosition(id NodeID, pos geom.Vec2) {
	n := s.mustGet(id)
	n.position = pos
	s.bump()
}

// Position returns the node's top-left corner relative to its parent.
func (s *Scene) Position(id NodeID) geom.Vec2 {
	if n := s.get(id); n != nil {
		return n.position
	}
	return geom.Vec2{}
}

// SetParent reparents a node. Passing NoNode makes it a root.
func (s *Scene) SetParent(id, parent NodeID) {
	n := s.mustGet(id)
	if n.parent == parent {
		return
	}
	s.detach(id)
	n.parent = parent
	if p := s.get(parent); p != nil {
		p.children = append(p.children, id)
	} else {
		s.roots = append(s.roots, id)
	}
	n.parentGen = s.bump()
}

// Parent returns the node's parent handle, NoNode for roots or dead handles.
func (s *Scene) Parent(id NodeID) NodeID {
	if n := s.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// ParentWidth returns the width of the node's parent box. Root nodes and
// dangling parent references resolve to 0, so percentage thickness on such
// nodes resolves to zero.
func (s *Scene) ParentWidth(id NodeID) float64 {
	n := s.get(id)
	if n == nil {
		return 0
	}
	p := s.get(n.parent)
	if p == nil {
		return 0
	}
	return p.size.X
}

// SetZIndex sets the node's stacking order among its siblings.
func (s *Scene) SetZIndex(id NodeID, z int) {
	s.mustGet(id).zIndex = z
	s.bump()
}

// SetVisible sets the node's own visibility flag.
func (s *Scene) SetVisible(id NodeID, v bool) {
	s.mustGet(id).visible = v
	s.bump()
}

// Visible reports the node's inherited visibility: a node is visible only if
// it and every ancestor are visible. Dead handles are not visible.
func (s *Scene) Visible(id NodeID) bool {
	n := s.get(id)
	if n == nil {
		return false
	}
	for n != nil {
		if !n.visible {
			return false
		}
		n = s.get(n.parent)
	}
	return true
}

// SetClipping makes the node clip its descendants to its own box.
func (s *Scene) SetClipping(id NodeID, clip bool) {
	s.mustGet(id).clipping = clip
	s.bump()
}

// SetBackground sets the node's background fill color.
func (s *Scene) SetBackground(id NodeID, c style.Color) {
	s.mustGet(id).background = c
	s.bump()
}

// Background returns the node's background fill color.
func (s *Scene) Background(id NodeID) style.Color {
	if n := s.get(id); n != nil {
		return n.background
	}
	return style.Color{}
}

// SetBorder sets the node's per-edge border thickness spec.
func (s *Scene) SetBorder(id NodeID, e style.Edges) {
	n := s.mustGet(id)
	n.border = e
	n.borderGen = s.bump()
}

// Border returns the node's border thickness spec.
func (s *Scene) Border(id NodeID) style.Edges {
	if n := s.get(id); n != nil {
		return n.border
	}
	return style.Edges{}
}

// SetBorderColor sets the node's border color.
func (s *Scene) SetBorderColor(id NodeID, c style.Color) {
	s.mustGet(id).borderColor = c
	s.bump()
}

// BorderColor returns the node's border color.
func (s *Scene) BorderColor(id NodeID) style.Color {
	if n := s.get(id); n != nil {
		return n.borderColor
	}
	return style.Color{}
}

// SetOutline sets the node's per-edge outline thickness spec.
func (s *Scene) SetOutline(id NodeID, e style.Edges) {
	n := s.mustGet(id)
	n.outline = e
	n.outlineGen = s.bump()
}

// Outline returns the node's outline thickness spec.
func (s *Scene) Outline(id NodeID) style.Edges {
	if n := s.get(id); n != nil {
		return n.outline
	}
	return style.Edges{}
}

// SetOutlineColor sets the node's outline color.
func (s *Scene) SetOutlineColor(id NodeID, c style.Color) {
	s.mustGet(id).outlineColor = c
	s.bump()
}

// OutlineColor returns the node's outline color.
func (s *Scene) OutlineColor(id NodeID) style.Color {
	if n := s.get(id); n != nil {
		return n.outlineColor
	}
	return style.Color{}
}

// SetCalculatedBorder stores derived border geometry. Derived data does not
// advance the scene generation; only authored mutations do.
func (s *Scene) SetCalculatedBorder(id NodeID, er geom.EdgeRects) {
	s.mustGet(id).calcBorder = er
}

// CalculatedBorder returns the node's border edge rects.
func (s *Scene) CalculatedBorder(id NodeID) geom.EdgeRects {
	if n := s.get(id); n != nil {
		return n.calcBorder
	}
	return geom.EdgeRects{}
}

// SetCalculatedOutline stores derived outline geometry.
func (s *Scene) SetCalculatedOutline(id NodeID, er geom.EdgeRects) {
	s.mustGet(id).calcOutline = er
}

// CalculatedOutline returns the node's outline edge rects.
func (s *Scene) CalculatedOutline(id NodeID) geom.EdgeRects {
	if n := s.get(id); n != nil {
		return n.calcOutline
	}
	return geom.EdgeRects{}
}

// Nodes returns the handles of all live nodes in arena order. Geometry
// passes iterate this rather than the paint stack; geometry is computed for
// invisible nodes too, extraction is what filters on visibility.
func (s *Scene) Nodes() []NodeID {
	out := make([]NodeID, 0, len(s.nodes))
	for i := range s.nodes {
		if s.nodes[i].alive {
			out = append(out, NodeID(i))
		}
	}
	return out
}

// WorldCenter returns the world-space position of the node's box center,
// composing top-left offsets up the parent chain.
func (s *Scene) WorldCenter(id NodeID) geom.Vec2 {
	n := s.get(id)
	if n == nil {
		return geom.Vec2{}
	}
	topLeft := n.position
	for p := s.get(n.parent); p != nil; p = s.get(p.parent) {
		topLeft = topLeft.Add(p.position)
	}
	return topLeft.Add(n.size.Scale(0.5))
}

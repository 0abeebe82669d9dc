package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit discriminates the kinds of length value a thickness can take.
type Unit int

const (
	// UnitAuto is an unspecified length; it always resolves to zero thickness.
	UnitAuto Unit = iota
	// UnitPx is a fixed length in layout units.
	UnitPx
	// UnitPercent is a percentage of the parent node's width.
	UnitPercent
)

// Val is a single length value: auto, a fixed length, or a percentage of the
// parent's width. The zero value is Auto.
type Val struct {
	Unit  Unit
	Value float64
}

// Auto returns the unspecified value.
func Auto() Val {
	return Val{Unit: UnitAuto}
}

// Px returns a fixed length value.
func Px(v float64) Val {
	return Val{Unit: UnitPx, Value: v}
}

// Percent returns a percent-of-parent-width value.
func Percent(v float64) Val {
	return Val{Unit: UnitPercent, Value: v}
}

func (v Val) String() string {
	switch v.Unit {
	case UnitPx:
		return strconv.FormatFloat(v.Value, 'g', -1, 64) + "px"
	case UnitPercent:
		return strconv.FormatFloat(v.Value, 'g', -1, 64) + "%"
	}
	return "auto"
}

// ParseVal parses a length value string: "auto", "12px", "12", or "25%".
// A bare number is treated as pixels.
func ParseVal(s string) (Val, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto" || s == "none":
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		num, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Val{}, fmt.Errorf("invalid percent value %q", s)
		}
		return Percent(num), nil
	default:
		num, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Val{}, fmt.Errorf("invalid length value %q", s)
		}
		return Px(num), nil
	}
}

// Edges is a per-side set of length values, used for border and outline
// thickness. The zero value is all-auto (no thickness anywhere).
type Edges struct {
	Left   Val
	Right  Val
	Top    Val
	Bottom Val
}

// EdgesAll returns an Edges with the same value on every side.
func EdgesAll(v Val) Edges {
	return Edges{Left: v, Right: v, Top: v, Bottom: v}
}

// EdgesLeft returns an Edges with only the left side set.
func EdgesLeft(v Val) Edges {
	return Edges{Left: v}
}

// EdgesRight returns an Edges with only the right side set.
func EdgesRight(v Val) Edges {
	return Edges{Right: v}
}

// EdgesTop returns an Edges with only the top side set.
func EdgesTop(v Val) Edges {
	return Edges{Top: v}
}

// EdgesBottom returns an Edges with only the bottom side set.
func EdgesBottom(v Val) Edges {
	return Edges{Bottom: v}
}

// EdgesHorizontal returns an Edges with the left and right sides set.
func EdgesHorizontal(v Val) Edges {
	return Edges{Left: v, Right: v}
}

// EdgesVertical returns an Edges with the top and bottom sides set.
func EdgesVertical(v Val) Edges {
	return Edges{Top: v, Bottom: v}
}

// ParseEdges builds an Edges from an all-sides shorthand plus per-side
// overrides. Any argument may be empty; an empty shorthand means auto.
func ParseEdges(all, left, right, top, bottom string) (Edges, error) {
	allVal, err := ParseVal(all)
	if err != nil {
		return Edges{}, err
	}
	edges := EdgesAll(allVal)
	for _, side := range []struct {
		src string
		dst *Val
	}{
		{left, &edges.Left},
		{right, &edges.Right},
		{top, &edges.Top},
		{bottom, &edges.Bottom},
	} {
		if side.src == "" {
			continue
		}
		v, err := ParseVal(side.src)
		if err != nil {
			return Edges{}, err
		}
		*side.dst = v
	}
	return edges, nil
}

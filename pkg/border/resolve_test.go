package border

import (
	"testing"

	"edgekit/pkg/style"
)

func TestResolveThickness(t *testing.T) {
	tests := []struct {
		name        string
		val         style.Val
		parentWidth float64
		want        float64
	}{
		{"auto", style.Auto(), 500, 0},
		{"fixed", style.Px(12), 500, 12},
		{"fixed ignores parent", style.Px(12), 0, 12},
		{"percent", style.Percent(10), 200, 20},
		{"percent fractional", style.Percent(2.5), 200, 5},
		{"percent of zero parent", style.Percent(50), 0, 0},
		{"negative fixed clamps", style.Px(-5), 500, 0},
		{"negative percent clamps", style.Percent(-10), 200, 0},
	}
	for _, tt := range tests {
		if got := ResolveThickness(tt.val, tt.parentWidth); got != tt.want {
			t.Errorf("%s: ResolveThickness(%v, %v) = %v, want %v",
				tt.name, tt.val, tt.parentWidth, got, tt.want)
		}
	}
}

func TestResolveAllEdges(t *testing.T) {
	edges := style.Edges{
		Left:   style.Px(1),
		Right:  style.Percent(10),
		Top:    style.Auto(),
		Bottom: style.Px(4),
	}
	got := Resolve(edges, 200)
	want := Thickness{Left: 1, Right: 20, Top: 0, Bottom: 4}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

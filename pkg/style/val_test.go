package style

import "testing"

func TestParseVal(t *testing.T) {
	tests := []struct {
		in      string
		want    Val
		wantErr bool
	}{
		{"auto", Auto(), false},
		{"none", Auto(), false},
		{"", Auto(), false},
		{"10px", Px(10), false},
		{"10", Px(10), false},
		{"2.5px", Px(2.5), false},
		{"25%", Percent(25), false},
		{"  10PX ", Px(10), false},
		{"ten", Val{}, true},
		{"%", Val{}, true},
	}
	for _, tt := range tests {
		got, err := ParseVal(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVal(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseVal(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestValString(t *testing.T) {
	tests := []struct {
		in   Val
		want string
	}{
		{Auto(), "auto"},
		{Px(10), "10px"},
		{Percent(25), "25%"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEdgesConstructors(t *testing.T) {
	v := Px(10)
	tests := []struct {
		name string
		got  Edges
		want Edges
	}{
		{"all", EdgesAll(v), Edges{v, v, v, v}},
		{"left", EdgesLeft(v), Edges{Left: v}},
		{"right", EdgesRight(v), Edges{Right: v}},
		{"top", EdgesTop(v), Edges{Top: v}},
		{"bottom", EdgesBottom(v), Edges{Bottom: v}},
		{"horizontal", EdgesHorizontal(v), Edges{Left: v, Right: v}},
		{"vertical", EdgesVertical(v), Edges{Top: v, Bottom: v}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParseEdges(t *testing.T) {
	got, err := ParseEdges("10px", "", "5%", "", "none")
	if err != nil {
		t.Fatalf("ParseEdges error: %v", err)
	}
	want := Edges{Left: Px(10), Right: Percent(5), Top: Px(10), Bottom: Auto()}
	if got != want {
		t.Errorf("ParseEdges = %+v, want %+v", got, want)
	}

	if _, err := ParseEdges("bogus", "", "", "", ""); err == nil {
		t.Error("expected error for invalid shorthand")
	}
	if _, err := ParseEdges("", "bogus", "", "", ""); err == nil {
		t.Error("expected error for invalid side value")
	}
}

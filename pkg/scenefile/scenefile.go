// Package scenefile loads declarative TOML scene descriptions. Nodes are
// listed as [[node]] tables in document order and may reference earlier
// nodes by name for parenting:
//
//	width = 800
//	height = 600
//	background = "black"
//
//	[[node]]
//	name = "root"
//	x = 100.0
//	y = 100.0
//	width = 100.0
//	height = 100.0
//	background = "white"
//	border = "10px"
//	border-color = "red"
package scenefile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"edgekit/pkg/geom"
	"edgekit/pkg/scene"
	"edgekit/pkg/style"
)

type sceneDef struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Background string    `toml:"background"`
	Nodes      []nodeDef `toml:"node"`
}

type nodeDef struct {
	Name    string  `toml:"name"`
	Parent  string  `toml:"parent"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Z       int     `toml:"z"`
	Visible *bool   `toml:"visible"`
	Clip    bool    `toml:"clip"`

	Background string `toml:"background"`

	Border       string `toml:"border"`
	BorderLeft   string `toml:"border-left"`
	BorderRight  string `toml:"border-right"`
	BorderTop    string `toml:"border-top"`
	BorderBottom string `toml:"border-bottom"`
	BorderColor  string `toml:"border-color"`

	Outline       string `toml:"outline"`
	OutlineLeft   string `toml:"outline-left"`
	OutlineRight  string `toml:"outline-right"`
	OutlineTop    string `toml:"outline-top"`
	OutlineBottom string `toml:"outline-bottom"`
	OutlineColor  string `toml:"outline-color"`
}

// Load reads a TOML scene file and builds the scene it describes.
func Load(path string) (*scene.Scene, scene.Viewport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scene.Viewport{}, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(string(data))
}

// Parse builds a scene from TOML source.
func Parse(src string) (*scene.Scene, scene.Viewport, error) {
	var def sceneDef
	if _, err := toml.Decode(src, &def); err != nil {
		return nil, scene.Viewport{}, fmt.Errorf("decoding scene: %w", err)
	}

	viewport := scene.DefaultViewport()
	if def.Width > 0 {
		viewport.Width = def.Width
	}
	if def.Height > 0 {
		viewport.Height = def.Height
	}
	if def.Background != "" {
		c, ok := style.ParseColor(def.Background)
		if !ok {
			return nil, scene.Viewport{}, fmt.Errorf("invalid background color %q", def.Background)
		}
		viewport.Background = c
	}

	s := scene.New()
	byName := make(map[string]scene.NodeID)
	for i, nd := range def.Nodes {
		parent := scene.NoNode
		if nd.Parent != "" {
			p, ok := byName[nd.Parent]
			if !ok {
				return nil, scene.Viewport{}, fmt.Errorf("node %d: unknown parent %q", i, nd.Parent)
			}
			parent = p
		}
		id, err := nd.spawn(s, parent)
		if err != nil {
			return nil, scene.Viewport{}, fmt.Errorf("node %d: %w", i, err)
		}
		if nd.Name != "" {
			if _, dup := byName[nd.Name]; dup {
				return nil, scene.Viewport{}, fmt.Errorf("node %d: duplicate name %q", i, nd.Name)
			}
			byName[nd.Name] = id
		}
	}
	return s, viewport, nil
}

func (nd *nodeDef) spawn(s *scene.Scene, parent scene.NodeID) (scene.NodeID, error) {
	id := s.Spawn(parent)
	s.SetPosition(id, geom.Vec2{X: nd.X, Y: nd.Y})
	s.SetSize(id, geom.Vec2{X: nd.Width, Y: nd.Height})
	if nd.Z != 0 {
		s.SetZIndex(id, nd.Z)
	}
	if nd.Visible != nil {
		s.SetVisible(id, *nd.Visible)
	}
	if nd.Clip {
		s.SetClipping(id, true)
	}

	if nd.Background != "" {
		c, ok := style.ParseColor(nd.Background)
		if !ok {
			return id, fmt.Errorf("invalid background color %q", nd.Background)
		}
		s.SetBackground(id, c)
	}

	borderEdges, err := style.ParseEdges(nd.Border, nd.BorderLeft, nd.BorderRight, nd.BorderTop, nd.BorderBottom)
	if err != nil {
		return id, fmt.Errorf("border: %w", err)
	}
	s.SetBorder(id, borderEdges)
	if nd.BorderColor != "" {
		c, ok := style.ParseColor(nd.BorderColor)
		if !ok {
			return id, fmt.Errorf("invalid border color %q", nd.BorderColor)
		}
		s.SetBorderColor(id, c)
	}

	outlineEdges, err := style.ParseEdges(nd.Outline, nd.OutlineLeft, nd.OutlineRight, nd.OutlineTop, nd.OutlineBottom)
	if err != nil {
		return id, fmt.Errorf("outline: %w", err)
	}
	s.SetOutline(id, outlineEdges)
	if nd.OutlineColor != "" {
		c, ok := style.ParseColor(nd.OutlineColor)
		if !ok {
			return id, fmt.Errorf("invalid outline color %q", nd.OutlineColor)
		}
		s.SetOutlineColor(id, c)
	}
	return id, nil
}

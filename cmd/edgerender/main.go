package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"edgekit/pkg/frame"
	"edgekit/pkg/render"
	"edgekit/pkg/scene"
	"edgekit/pkg/scenefile"
	"edgekit/pkg/scenescript"
)

func main() {
	output := flag.String("o", "output.png", "output PNG file path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edgerender [flags] <scene.toml|scene.js>\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	s, viewport, err := loadScene(path)
	if err != nil {
		log.Fatal("failed to load scene", "path", path, "err", err)
	}
	log.Info("loaded scene", "path", path, "nodes", len(s.Nodes()))

	var pipeline frame.Pipeline
	prims := pipeline.Render(s)
	log.Info("extracted frame", "primitives", len(prims),
		"viewport", fmt.Sprintf("%dx%d", viewport.Width, viewport.Height))

	r := render.NewRenderer(viewport.Width, viewport.Height)
	r.Render(prims, viewport.Background)
	if err := r.SavePNG(*output); err != nil {
		log.Fatal("failed to write PNG", "path", *output, "err", err)
	}
	log.Info("wrote frame", "path", *output)
}

// loadScene dispatches on file extension: .toml for declarative scenes,
// .js for scripted ones.
func loadScene(path string) (*scene.Scene, scene.Viewport, error) {
	switch ext := filepath.Ext(path); ext {
	case ".js":
		engine := scenescript.New()
		if err := engine.LoadFile(path); err != nil {
			return nil, scene.Viewport{}, err
		}
		return engine.Scene(), engine.Viewport(), nil
	case ".toml":
		return scenefile.Load(path)
	default:
		return nil, scene.Viewport{}, fmt.Errorf("unsupported scene format %q", ext)
	}
}

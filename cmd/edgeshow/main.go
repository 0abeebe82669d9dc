package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"edgekit/pkg/frame"
	"edgekit/pkg/render"
	"edgekit/pkg/scene"
	"edgekit/pkg/scenefile"
	"edgekit/pkg/scenescript"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edgeshow <scene.toml|scene.js>\n")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	a := app.New()
	w := a.NewWindow("edgeshow")

	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	canvasImg.FillMode = canvas.ImageFillOriginal
	status := widget.NewLabel("")

	show := func() {
		s, viewport, err := loadScene(path)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}

		var pipeline frame.Pipeline
		prims := pipeline.Render(s)

		r := render.NewRenderer(viewport.Width, viewport.Height)
		r.Render(prims, viewport.Background)

		canvasImg.Image = r.Image()
		canvasImg.Refresh()
		w.Resize(fyne.NewSize(float32(viewport.Width), float32(viewport.Height)+80))
		status.SetText(fmt.Sprintf("%s: %d nodes, %d primitives", path, len(s.Nodes()), len(prims)))
	}

	reload := widget.NewButton("Reload", show)
	content := container.NewBorder(reload, status, nil, nil, canvasImg)
	w.SetContent(content)
	show()

	w.ShowAndRun()
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

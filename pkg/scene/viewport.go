package scene

import "edgekit/pkg/style"

// Viewport describes the render target a scene was authored for.
type Viewport struct {
	Width      int
	Height     int
	Background style.Color
}

// DefaultViewport is used when a scene file does not declare one.
func DefaultViewport() Viewport {
	return Viewport{Width: 800, Height: 600, Background: style.Color{R: 255, G: 255, B: 255, A: 1}}
}

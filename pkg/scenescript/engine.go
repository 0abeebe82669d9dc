// Package scenescript builds scenes from JavaScript. A script sees a global
// `scene` object:
//
//	scene.viewport(800, 600, "black");
//	let root = scene.node({x: 25, y: 25, width: 750, height: 550, background: "black"});
//	scene.node({
//	    parent: root, x: 7, y: 7, width: 50, height: 50,
//	    background: "blue", border: "10px", borderColor: "white",
//	    outline: "5px", outlineColor: "blue",
//	});
//
// scene.node returns the new node's handle for use as a later parent.
package scenescript

import (
	"fmt"
	"os"

	"github.com/dop251/goja"

	"edgekit/pkg/geom"
	"edgekit/pkg/scene"
	"edgekit/pkg/style"
)

// Engine executes scene-construction scripts in a goja runtime.
type Engine struct {
	vm       *goja.Runtime
	scene    *scene.Scene
	viewport scene.Viewport
}

// New creates an engine with an empty scene and a fresh runtime.
func New() *Engine {
	e := &Engine{
		vm:       goja.New(),
		scene:    scene.New(),
		viewport: scene.DefaultViewport(),
	}

	newConsoleAPI().register(e.vm)
	e.registerSceneAPI()

	return e
}

// Run executes script source against the engine's scene. Scripts run in
// order across multiple calls and accumulate into the same scene.
func (e *Engine) Run(src string) error {
	if _, err := e.vm.RunString(src); err != nil {
		return fmt.Errorf("scene script: %w", err)
	}
	return nil
}

// LoadFile executes a script file against the engine's scene.
func (e *Engine) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scene script: %w", err)
	}
	return e.Run(string(data))
}

// Scene returns the scene built so far.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Viewport returns the viewport declared by the script, or the default.
func (e *Engine) Viewport() scene.Viewport {
	return e.viewport
}

func (e *Engine) registerSceneAPI() {
	obj := e.vm.NewObject()
	obj.Set("node", e.nodeFn)
	obj.Set("viewport", e.viewportFn)
	e.vm.Set("scene", obj)
}

// viewportFn implements scene.viewport(width, height, background?).
func (e *Engine) viewportFn(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) < 2 {
		panic(e.vm.NewTypeError("scene.viewport requires width and height"))
	}
	e.viewport.Width = int(call.Arguments[0].ToInteger())
	e.viewport.Height = int(call.Arguments[1].ToInteger())
	if len(call.Arguments) > 2 {
		e.viewport.Background = e.color(call.Arguments[2].String())
	}
	return goja.Undefined()
}

// nodeFn implements scene.node(options); returns the node handle.
func (e *Engine) nodeFn(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) < 1 {
		panic(e.vm.NewTypeError("scene.node requires an options object"))
	}
	opts := call.Arguments[0].ToObject(e.vm)

	parent := scene.NoNode
	if v, ok := e.opt(opts, "parent"); ok {
		parent = scene.NodeID(v.ToInteger())
		if !e.scene.Contains(parent) {
			panic(e.vm.NewTypeError("scene.node: unknown parent %d", parent))
		}
	}
	id := e.scene.Spawn(parent)

	e.scene.SetPosition(id, geom.Vec2{X: e.number(opts, "x"), Y: e.number(opts, "y")})
	e.scene.SetSize(id, geom.Vec2{X: e.number(opts, "width"), Y: e.number(opts, "height")})
	if v, ok := e.opt(opts, "z"); ok {
		e.scene.SetZIndex(id, int(v.ToInteger()))
	}
	if v, ok := e.opt(opts, "visible"); ok {
		e.scene.SetVisible(id, v.ToBoolean())
	}
	if v, ok := e.opt(opts, "clip"); ok {
		e.scene.SetClipping(id, v.ToBoolean())
	}
	if v, ok := e.opt(opts, "background"); ok {
		e.scene.SetBackground(id, e.color(v.String()))
	}

	e.scene.SetBorder(id, e.edges(opts, "border"))
	if v, ok := e.opt(opts, "borderColor"); ok {
		e.scene.SetBorderColor(id, e.color(v.String()))
	}
	e.scene.SetOutline(id, e.edges(opts, "outline"))
	if v, ok := e.opt(opts, "outlineColor"); ok {
		e.scene.SetOutlineColor(id, e.color(v.String()))
	}

	return e.vm.ToValue(int64(id))
}

// opt returns an option value, distinguishing absent/undefined/null from set.
func (e *Engine) opt(opts *goja.Object, key string) (goja.Value, bool) {
	v := opts.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, false
	}
	return v, true
}

func (e *Engine) number(opts *goja.Object, key string) float64 {
	if v, ok := e.opt(opts, key); ok {
		return v.ToFloat()
	}
	return 0
}

// edges reads the all-sides shorthand plus the per-side overrides for the
// given prefix ("border" or "outline").
func (e *Engine) edges(opts *goja.Object, prefix string) style.Edges {
	str := func(key string) string {
		if v, ok := e.opt(opts, key); ok {
			return v.String()
		}
		return ""
	}
	edges, err := style.ParseEdges(
		str(prefix),
		str(prefix+"Left"),
		str(prefix+"Right"),
		str(prefix+"Top"),
		str(prefix+"Bottom"),
	)
	if err != nil {
		panic(e.vm.NewTypeError("scene.node: %s", err))
	}
	return edges
}

func (e *Engine) color(s string) style.Color {
	c, ok := style.ParseColor(s)
	if !ok {
		panic(e.vm.NewTypeError("invalid color %q", s))
	}
	return c
}

//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/layerpad/layerpad/internal/editor"
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

const (
	defaultWidth  = 800
	defaultHeight = 400
	background    = "#ffffff"
)

func main() {
	layerpad := js.Global().Get("Object").New()
	layerpad.Set("startEditor", js.FuncOf(startEditor))
	js.Global().Set("layerpad", layerpad)

	js.Global().Set("layerpadWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// startEditor(canvasId[, width, height]) mounts an editor on a canvas.
func startEditor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return errorValue(errors.New("missing canvas id"))
	}

	width, height := float64(defaultWidth), float64(defaultHeight)
	if len(args) >= 3 && args[1].Type() == js.TypeNumber && args[2].Type() == js.TypeNumber {
		width, height = args[1].Float(), args[2].Float()
	}

	surface, err := mount(args[0].String(), width, height)
	if err != nil {
		return errorValue(err)
	}

	layers := editor.NewLayers()
	layers.Render(surface)
	surface.SetCursor(layers.Cursor())

	listen(surface, layers, "mousedown", editor.MouseDown)
	listen(surface, layers, "mousemove", editor.MouseMove)
	listen(surface, layers, "mouseup", editor.MouseUp)

	return js.ValueOf(map[string]interface{}{"ok": true})
}

func mount(canvasID string, width, height float64) (*canvasSurface, error) {
	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return nil, errors.New("Window not found")
	}

	canvas := window.Get("document").Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("Canvas with id '%s' not found", canvasID)
	}

	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, errors.New("Canvas 2d context not found")
	}

	canvas.Set("width", width)
	canvas.Set("height", height)
	canvas.Get("style").Set("background", background)

	return &canvasSurface{canvas: canvas, ctx: ctx}, nil
}

// listen reduces every DOM event of the given type through the editor.
// The callback is never released; the editor lives as long as the page.
func listen(surface *canvasSurface, layers *editor.Layers, domEvent string, kind editor.EventKind) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		layers.Handle(editor.Event{Kind: kind, Point: surface.localPoint(args[0])}, surface)
		return nil
	})
	surface.canvas.Call("addEventListener", domEvent, cb)
}

func errorValue(err error) js.Value {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

var _ shape.Surface = (*canvasSurface)(nil)

// canvasSurface draws straight onto a CanvasRenderingContext2D.
type canvasSurface struct {
	canvas js.Value
	ctx    js.Value
}

func (c *canvasSurface) localPoint(ev js.Value) geom.Point {
	bounds := c.canvas.Call("getBoundingClientRect")
	return geom.Pt(
		ev.Get("clientX").Float()-bounds.Get("left").Float(),
		ev.Get("clientY").Float()-bounds.Get("top").Float(),
	)
}

func (c *canvasSurface) Width() float64  { return c.canvas.Get("width").Float() }
func (c *canvasSurface) Height() float64 { return c.canvas.Get("height").Float() }

func (c *canvasSurface) Clear(x, y, w, h float64) {
	c.ctx.Call("clearRect", x, y, w, h)
}

func (c *canvasSurface) SetFillStyle(color string)   { c.ctx.Set("fillStyle", color) }
func (c *canvasSurface) SetStrokeStyle(color string) { c.ctx.Set("strokeStyle", color) }
func (c *canvasSurface) SetLineWidth(px float64)     { c.ctx.Set("lineWidth", px) }

func (c *canvasSurface) FillRect(x, y, w, h float64) {
	c.ctx.Call("fillRect", x, y, w, h)
}

func (c *canvasSurface) StrokeRect(x, y, w, h float64) {
	c.ctx.Call("strokeRect", x, y, w, h)
}

func (c *canvasSurface) StrokeLine(x1, y1, x2, y2 float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x1, y1)
	c.ctx.Call("lineTo", x2, y2)
	c.ctx.Call("stroke")
}

func (c *canvasSurface) BeginPath() { c.ctx.Call("beginPath") }

func (c *canvasSurface) Rect(x, y, w, h float64) {
	c.ctx.Call("rect", x, y, w, h)
}

func (c *canvasSurface) IsPointInPath(x, y float64) bool {
	return c.ctx.Call("isPointInPath", x, y).Bool()
}

func (c *canvasSurface) SetCursor(name string) {
	c.canvas.Get("style").Set("cursor", name)
}

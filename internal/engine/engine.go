package engine

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/layerpad/layerpad/internal/editor"
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/render"
)

// Engine is a headless editor: it owns the layer stack and a recording
// surface, processes pointer commands and answers queries with JSON.
type Engine struct {
	layers  *editor.Layers
	surface *render.CommandBuffer
}

// NewEngine creates an engine for a width x height surface.
func NewEngine(width, height float64) *Engine {
	e := &Engine{
		layers:  editor.NewLayers(),
		surface: render.NewCommandBuffer(width, height),
	}
	e.layers.Render(e.surface)
	return e
}

// --- Commands ---

// Dispatch feeds one pointer event through the editor.
func (e *Engine) Dispatch(ev editor.Event) {
	before := e.layers.Len()
	e.layers.Handle(ev, e.surface)

	if e.layers.Len() > before {
		layer := e.layers.Layer(e.layers.Len() - 1)
		slog.Debug("layer created", "layer", layer.ID)
	}
}

// MouseDown dispatches a mousedown at (x, y).
func (e *Engine) MouseDown(x, y float64) {
	e.Dispatch(editor.Event{Kind: editor.MouseDown, Point: geom.Pt(x, y)})
}

// MouseMove dispatches a mousemove at (x, y).
func (e *Engine) MouseMove(x, y float64) {
	e.Dispatch(editor.Event{Kind: editor.MouseMove, Point: geom.Pt(x, y)})
}

// MouseUp dispatches a mouseup at (x, y).
func (e *Engine) MouseUp(x, y float64) {
	e.Dispatch(editor.Event{Kind: editor.MouseUp, Point: geom.Pt(x, y)})
}

// Replay dispatches events in order.
func (e *Engine) Replay(events []editor.Event) {
	for _, ev := range events {
		e.Dispatch(ev)
	}
}

// SetSize resizes the surface and repaints.
func (e *Engine) SetSize(width, height float64) {
	if width == e.surface.Width() && height == e.surface.Height() {
		return
	}
	e.surface.Resize(width, height)
	e.layers.Render(e.surface)
}

// Reset drops every layer and the interaction state.
func (e *Engine) Reset() {
	e.layers = editor.NewLayers()
	e.surface.SetCursor(e.layers.Cursor())
	e.layers.Render(e.surface)
}

// --- Queries ---

// Render returns the draw commands of the latest frame as JSON.
func (e *Engine) Render() string {
	return e.surface.JSON()
}

// Commands returns the draw commands of the latest frame.
func (e *Engine) Commands() []render.DrawCommand {
	return e.surface.Commands()
}

// Frame returns the number of frames drawn so far.
func (e *Engine) Frame() int {
	return e.surface.Frame()
}

// GetCursor returns the cursor the surface should show.
func (e *Engine) GetCursor() string {
	return e.surface.Cursor()
}

// HitTest returns the ID of the topmost layer at (x, y), or empty string.
func (e *Engine) HitTest(x, y float64) string {
	i, ok := e.layers.LayerAt(e.surface, geom.Pt(x, y))
	if !ok {
		return ""
	}
	return e.layers.Layer(i).ID
}

// Snapshot returns a copy of the layers and interaction state.
func (e *Engine) Snapshot() editor.Snapshot {
	return e.layers.Snapshot()
}

// GetLayers returns the layers as JSON.
func (e *Engine) GetLayers() string {
	data, _ := json.Marshal(e.layers.Snapshot().Layers)
	return string(data)
}

// GetState returns the full snapshot as JSON.
func (e *Engine) GetState() string {
	data, _ := json.Marshal(e.layers.Snapshot())
	return string(data)
}

// ParseEvents decodes a JSON array of pointer events.
func ParseEvents(data []byte) ([]editor.Event, error) {
	var events []editor.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

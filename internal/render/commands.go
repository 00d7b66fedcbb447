// Package render provides a headless drawing surface that records the draw
// operations of each frame so a remote Canvas2D can replay them.
package render

import (
	"encoding/json"

	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

// Draw operations emitted by CommandBuffer.
const (
	OpClear       = "clear"
	OpFillStyle   = "fillStyle"
	OpStrokeStyle = "strokeStyle"
	OpLineWidth   = "lineWidth"
	OpFillRect    = "fillRect"
	OpStrokeRect  = "strokeRect"
	OpLine        = "line"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
type DrawCommand struct {
	Op        string  `json:"op"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Color     string  `json:"color,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
}

// CommandBuffer is a shape.Surface that records what is drawn on it.
// A Clear covering the whole surface starts a new frame.
type CommandBuffer struct {
	width    float64
	height   float64
	commands []DrawCommand
	path     []geom.Rect
	cursor   string
	frame    int
}

var _ shape.Surface = (*CommandBuffer)(nil)

// NewCommandBuffer creates an empty buffer for a width x height surface.
func NewCommandBuffer(width, height float64) *CommandBuffer {
	return &CommandBuffer{
		width:  width,
		height: height,
		cursor: shape.CursorDefault,
	}
}

func (b *CommandBuffer) Width() float64  { return b.width }
func (b *CommandBuffer) Height() float64 { return b.height }

// Resize changes the surface size. The recorded frame is kept.
func (b *CommandBuffer) Resize(width, height float64) {
	b.width, b.height = width, height
}

func (b *CommandBuffer) Clear(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= b.width && y+h >= b.height {
		b.commands = b.commands[:0]
		b.frame++
	}
	b.record(DrawCommand{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (b *CommandBuffer) SetFillStyle(color string) {
	b.record(DrawCommand{Op: OpFillStyle, Color: color})
}

func (b *CommandBuffer) SetStrokeStyle(color string) {
	b.record(DrawCommand{Op: OpStrokeStyle, Color: color})
}

func (b *CommandBuffer) SetLineWidth(px float64) {
	b.record(DrawCommand{Op: OpLineWidth, LineWidth: px})
}

func (b *CommandBuffer) FillRect(x, y, w, h float64) {
	b.record(DrawCommand{Op: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (b *CommandBuffer) StrokeRect(x, y, w, h float64) {
	b.record(DrawCommand{Op: OpStrokeRect, X: x, Y: y, W: w, H: h})
}

func (b *CommandBuffer) StrokeLine(x1, y1, x2, y2 float64) {
	b.record(DrawCommand{Op: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (b *CommandBuffer) BeginPath() {
	b.path = b.path[:0]
}

func (b *CommandBuffer) Rect(x, y, w, h float64) {
	b.path = append(b.path, geom.NewRect(geom.Pt(x, y), geom.Pt(x+w, y+h)))
}

// IsPointInPath tests the rectangles declared since the last BeginPath.
func (b *CommandBuffer) IsPointInPath(x, y float64) bool {
	p := geom.Pt(x, y)
	for _, r := range b.path {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func (b *CommandBuffer) SetCursor(name string) {
	b.cursor = name
}

// Cursor returns the cursor last set on the surface.
func (b *CommandBuffer) Cursor() string {
	return b.cursor
}

// Frame returns the number of frames started so far.
func (b *CommandBuffer) Frame() int {
	return b.frame
}

// Commands returns a copy of the current frame in painter's order.
func (b *CommandBuffer) Commands() []DrawCommand {
	out := make([]DrawCommand, len(b.commands))
	copy(out, b.commands)
	return out
}

// JSON serializes the current frame.
func (b *CommandBuffer) JSON() string {
	result, _ := DrawCommandsToJSON(b.commands)
	return result
}

func (b *CommandBuffer) record(cmd DrawCommand) {
	b.commands = append(b.commands, cmd)
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if len(commands) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

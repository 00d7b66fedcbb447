// Package editor holds the layers of a drawing and the interaction state
// machine that turns pointer events into layer edits.
package editor

import (
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

// Layers is the ordered layer stack plus the interaction state. Later layers
// are drawn on top and win hit tests.
type Layers struct {
	layers   []Layer
	active   State
	outlined int // -1 when nothing is hovered
	cursor   string
}

// NewLayers creates an empty stack.
func NewLayers() *Layers {
	return &Layers{
		outlined: -1,
		cursor:   shape.CursorDefault,
	}
}

// Len returns the number of layers.
func (l *Layers) Len() int {
	return len(l.layers)
}

// Layer returns the i-th layer in z-order.
func (l *Layers) Layer(i int) Layer {
	return l.layers[i]
}

// Active returns the current interaction state, nil when idle with nothing
// selected.
func (l *Layers) Active() State {
	return l.active
}

// Outlined returns the index of the hovered layer.
func (l *Layers) Outlined() (int, bool) {
	return l.outlined, l.outlined >= 0
}

// Cursor returns the cursor last applied to the surface.
func (l *Layers) Cursor() string {
	return l.cursor
}

// Append adds sh on top of the stack and returns its index.
func (l *Layers) Append(sh shape.Shape) int {
	l.layers = append(l.layers, NewLayer(sh))
	return len(l.layers) - 1
}

// LayerAt returns the topmost layer whose shape contains p.
func (l *Layers) LayerAt(s shape.Surface, p geom.Point) (int, bool) {
	for i := len(l.layers) - 1; i >= 0; i-- {
		if l.layers[i].Shape.IsPointOver(s, p) {
			return i, true
		}
	}
	return 0, false
}

// Handle reduces one pointer event to completion: the state is updated, the
// surface is redrawn if anything visible changed and the cursor is applied.
func (l *Layers) Handle(ev Event, s shape.Surface) {
	var dirty bool
	switch ev.Kind {
	case MouseDown:
		dirty = l.onMouseDown(ev.Point, s)
	case MouseMove:
		dirty = l.onMouseMove(ev.Point, s)
	case MouseUp:
		dirty = l.onMouseUp()
	}

	if dirty {
		l.Render(s)
	}
	l.setCursor(ev.Point, s)
}

func (l *Layers) onMouseDown(p geom.Point, s shape.Surface) bool {
	switch st := l.active.(type) {
	case nil:
		if i, ok := l.LayerAt(s, p); ok {
			l.active = Idle{Layer: i}
		} else {
			l.active = ToCreate{Start: p}
		}
		return true

	case Idle:
		if edge, ok := l.layers[st.Layer].PointOverEdge(s, p); ok {
			l.active = Resize{Layer: st.Layer, Edge: edge}
		} else if i, ok := l.LayerAt(s, p); ok {
			grab := l.layers[i].Shape.GrabPoint(p)
			l.active = Relocate{Layer: i, GrabPoint: grab}
		} else {
			l.active = nil
		}
		return true

	default:
		// A manipulation is already under way.
		return false
	}
}

func (l *Layers) onMouseMove(p geom.Point, s shape.Surface) bool {
	switch st := l.active.(type) {
	case ToCreate:
		i := l.Append(shape.NewRectangle(st.Start, p))
		l.active = Creating{Layer: i, Start: st.Start}
		return true

	case Creating:
		l.layers[st.Layer].Shape = shape.NewRectangle(st.Start, p)
		return true

	case Resize:
		edge := l.layers[st.Layer].Shape.Resize(p, st.Edge)
		l.active = Resize{Layer: st.Layer, Edge: edge}
		return true

	case Relocate:
		l.layers[st.Layer].Shape.Relocate(p, st.GrabPoint)
		return true

	default:
		hovered := -1
		if i, ok := l.LayerAt(s, p); ok {
			hovered = i
		}
		if hovered == l.outlined {
			return false
		}
		l.outlined = hovered
		return true
	}
}

func (l *Layers) onMouseUp() bool {
	switch st := l.active.(type) {
	case ToCreate:
		l.active = nil
	case Creating:
		l.active = Idle{Layer: st.Layer}
	case Resize:
		l.active = Idle{Layer: st.Layer}
	case Relocate:
		l.active = Idle{Layer: st.Layer}
	}
	// Committing is not a visible change.
	return false
}

func (l *Layers) setCursor(p geom.Point, s shape.Surface) {
	cursor := shape.CursorDefault
	switch st := l.active.(type) {
	case Idle:
		if edge, ok := l.layers[st.Layer].PointOverEdge(s, p); ok {
			cursor = edge.Cursor()
		}
	case Resize:
		cursor = st.Edge.Cursor()
	}
	l.cursor = cursor
	s.SetCursor(cursor)
}

// Render repaints the whole surface from scratch.
func (l *Layers) Render(s shape.Surface) {
	s.Clear(0, 0, s.Width(), s.Height())

	for _, layer := range l.layers {
		layer.Shape.Draw(s)
	}

	if i, ok := l.Outlined(); ok {
		l.layers[i].Shape.DrawOutline(s)
	}

	if i, ok := ActiveLayer(l.active); ok {
		active := l.layers[i].Shape
		active.DrawActive(s)
		drawAlignments(s, active.Box(), Alignments(l.layers, i))
	}
}

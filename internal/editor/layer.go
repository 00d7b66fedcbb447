package editor

import (
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
	"github.com/layerpad/layerpad/internal/typeid"
)

// Layer is a named slot owning exactly one shape.
type Layer struct {
	ID    string
	Shape shape.Shape
}

// NewLayer wraps sh in a freshly named layer.
func NewLayer(sh shape.Shape) Layer {
	return Layer{ID: typeid.NewLayerID(), Shape: sh}
}

// PointOverEdge returns the first edge of the layer's shape whose hit box
// contains p.
func (l Layer) PointOverEdge(s shape.Surface, p geom.Point) (shape.Edge, bool) {
	for _, e := range l.Shape.Edges() {
		if e.IsPointOver(s, p) {
			return e, true
		}
	}
	return shape.Edge{}, false
}

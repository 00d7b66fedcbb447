package editor

import (
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

// State is what the active layer is doing. A nil State means nothing is
// being manipulated.
type State interface {
	isState()
}

// ToCreate: the mouse went down on empty space and no layer exists yet.
type ToCreate struct {
	Start geom.Point
}

// Creating: a layer has been appended and grows with the pointer.
type Creating struct {
	Layer int
	Start geom.Point
}

// Idle: a layer is selected but not dragged.
type Idle struct {
	Layer int
}

// Resize: one corner of the selected layer is being dragged.
type Resize struct {
	Layer int
	Edge  shape.Edge
}

// Relocate: the whole selected layer is being dragged.
type Relocate struct {
	Layer     int
	GrabPoint geom.Point
}

func (ToCreate) isState() {}
func (Creating) isState() {}
func (Idle) isState()     {}
func (Resize) isState()   {}
func (Relocate) isState() {}

// ActiveLayer returns the index of the layer st refers to, if any.
func ActiveLayer(st State) (int, bool) {
	switch st := st.(type) {
	case Creating:
		return st.Layer, true
	case Idle:
		return st.Layer, true
	case Resize:
		return st.Layer, true
	case Relocate:
		return st.Layer, true
	default:
		return 0, false
	}
}

// StateName returns a short name for st, "none" for nil.
func StateName(st State) string {
	switch st.(type) {
	case nil:
		return "none"
	case ToCreate:
		return "to-create"
	case Creating:
		return "creating"
	case Idle:
		return "idle"
	case Resize:
		return "resize"
	case Relocate:
		return "relocate"
	default:
		return "unknown"
	}
}

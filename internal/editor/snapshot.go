package editor

import (
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

// LayerInfo is the plain view of a layer.
type LayerInfo struct {
	ID   string     `json:"id"`
	Kind shape.Kind `json:"kind"`
	Box  geom.Rect  `json:"box"`
}

// StateInfo is the plain view of the interaction state.
type StateInfo struct {
	Name      string        `json:"name"`
	Layer     *int          `json:"layer,omitempty"`
	Start     *geom.Point   `json:"start,omitempty"`
	Edge      *shape.Corner `json:"edge,omitempty"`
	GrabPoint *geom.Point   `json:"grabPoint,omitempty"`
}

// Snapshot is a read-only copy of the editor for queries and debugging.
type Snapshot struct {
	Layers     []LayerInfo `json:"layers"`
	Active     StateInfo   `json:"active"`
	Outlined   *int        `json:"outlined,omitempty"`
	Cursor     string      `json:"cursor"`
	Alignments []Alignment `json:"alignments,omitempty"`
}

// Snapshot copies the current layers and state.
func (l *Layers) Snapshot() Snapshot {
	snap := Snapshot{
		Layers: make([]LayerInfo, len(l.layers)),
		Active: describeState(l.active),
		Cursor: l.cursor,
	}
	for i, layer := range l.layers {
		snap.Layers[i] = LayerInfo{ID: layer.ID, Kind: layer.Shape.Kind(), Box: layer.Shape.Box()}
	}
	if i, ok := l.Outlined(); ok {
		snap.Outlined = &i
	}
	if i, ok := ActiveLayer(l.active); ok {
		snap.Alignments = Alignments(l.layers, i)
	}
	return snap
}

func describeState(st State) StateInfo {
	info := StateInfo{Name: StateName(st)}
	if i, ok := ActiveLayer(st); ok {
		info.Layer = &i
	}
	switch st := st.(type) {
	case ToCreate:
		info.Start = &st.Start
	case Creating:
		info.Start = &st.Start
	case Resize:
		info.Edge = &st.Edge.Corner
	case Relocate:
		info.GrabPoint = &st.GrabPoint
	}
	return info
}

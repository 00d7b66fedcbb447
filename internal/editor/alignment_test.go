package editor

import (
	"testing"

	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/render"
	"github.com/layerpad/layerpad/internal/shape"
	"github.com/stretchr/testify/require"
)

func rectLayer(x1, y1, x2, y2 float64) Layer {
	return NewLayer(shape.NewRectangle(geom.Pt(x1, y1), geom.Pt(x2, y2)))
}

func TestAlignmentsSharedTop(t *testing.T) {
	layers := []Layer{
		rectLayer(10, 50, 60, 90),
		rectLayer(200, 50, 260, 120),
	}

	guides := Alignments(layers, 1)
	require.Equal(t, []Alignment{{Axis: AxisY, At: 50, From: 10, To: 60}}, guides)
}

func TestAlignmentsBothAxes(t *testing.T) {
	layers := []Layer{
		rectLayer(0, 0, 100, 100),
		rectLayer(100, 100, 200, 200),
		rectLayer(300, 300, 310, 310),
	}

	guides := Alignments(layers, 1)
	require.Equal(t, []Alignment{
		{Axis: AxisY, At: 100, From: 0, To: 100},
		{Axis: AxisX, At: 100, From: 0, To: 100},
	}, guides)
}

func TestAlignmentsExactEqualityOnly(t *testing.T) {
	layers := []Layer{
		rectLayer(0, 50, 10, 60),
		rectLayer(20, 50.0001, 30, 59.9999),
	}
	require.Empty(t, Alignments(layers, 0))
}

func TestAlignmentsDegenerateLayerDeduplicated(t *testing.T) {
	layers := []Layer{
		rectLayer(0, 50, 10, 50),
		rectLayer(20, 50, 30, 80),
	}
	guides := Alignments(layers, 1)
	require.Equal(t, []Alignment{{Axis: AxisY, At: 50, From: 0, To: 10}}, guides)
}

func TestAlignmentsSkipActiveLayer(t *testing.T) {
	layers := []Layer{rectLayer(0, 0, 10, 10)}
	require.Empty(t, Alignments(layers, 0))
}

func TestIntersect(t *testing.T) {
	require.Equal(t, []float64{3, 1}, intersect([]float64{3, 1, 3, 7}, []float64{1, 3}))
	require.Nil(t, intersect([]float64{1, 2}, []float64{5}))
}

func TestDrawAlignmentsSpansBothLayers(t *testing.T) {
	s := render.NewCommandBuffer(800, 400)
	active := geom.Rect{X: 200, Y: 50, Width: 60, Height: 70}
	drawAlignments(s, active, []Alignment{
		{Axis: AxisY, At: 50, From: 10, To: 60},
		{Axis: AxisX, At: 200, From: 300, To: 350},
	})

	require.Equal(t, []render.DrawCommand{
		{Op: render.OpStrokeStyle, Color: shape.GuideColor},
		{Op: render.OpLineWidth, LineWidth: 1},
		{Op: render.OpLine, X: 10, Y: 50, X2: 260, Y2: 50},
		{Op: render.OpLine, X: 200, Y: 50, X2: 200, Y2: 350},
	}, s.Commands())
}

func TestSelectedLayerShowsGuides(t *testing.T) {
	s := render.NewCommandBuffer(800, 400)
	l := NewLayers()
	l.Append(shape.NewRectangle(geom.Pt(10, 50), geom.Pt(60, 90)))
	l.Append(shape.NewRectangle(geom.Pt(200, 50), geom.Pt(260, 120)))

	l.Handle(Event{Kind: MouseDown, Point: geom.Pt(230, 80)}, s)
	require.Equal(t, Idle{Layer: 1}, l.Active())

	snap := l.Snapshot()
	require.Equal(t, []Alignment{{Axis: AxisY, At: 50, From: 10, To: 60}}, snap.Alignments)

	var lines int
	for _, c := range s.Commands() {
		if c.Op == render.OpLine {
			lines++
			require.Equal(t, 50.0, c.Y)
		}
	}
	require.Equal(t, 1, lines)
}

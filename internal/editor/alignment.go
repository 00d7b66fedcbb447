package editor

import (
	"fmt"
	"slices"

	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/shape"
)

// Axis says which coordinate an alignment guide shares.
type Axis int

const (
	// AxisY is a horizontal guide at a shared y.
	AxisY Axis = iota
	// AxisX is a vertical guide at a shared x.
	AxisX
)

func (a Axis) MarshalText() ([]byte, error) {
	if a == AxisX {
		return []byte("x"), nil
	}
	return []byte("y"), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "y":
		*a = AxisY
	case "x":
		*a = AxisX
	default:
		return fmt.Errorf("unknown axis %q", text)
	}
	return nil
}

// Alignment is a guide between the active layer and one other layer. At is
// the shared coordinate; From and To span the other layer along the guide.
type Alignment struct {
	Axis Axis    `json:"axis"`
	At   float64 `json:"at"`
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Alignments returns the guides between layers[active] and every other layer.
// Coordinates must match exactly to produce a guide.
func Alignments(layers []Layer, active int) []Alignment {
	activeBox := layers[active].Shape.Box()

	var out []Alignment
	for i, layer := range layers {
		if i == active {
			continue
		}
		out = append(out, alignmentsBetween(activeBox, layer.Shape.Box())...)
	}
	return out
}

func alignmentsBetween(active, other geom.Rect) []Alignment {
	var out []Alignment

	ys := intersect(
		[]float64{other.Top(), other.Bottom()},
		[]float64{active.Top(), active.Bottom()},
	)
	for _, y := range ys {
		out = append(out, Alignment{Axis: AxisY, At: y, From: other.Left(), To: other.Right()})
	}

	xs := intersect(
		[]float64{other.Left(), other.Right()},
		[]float64{active.Left(), active.Right()},
	)
	for _, x := range xs {
		out = append(out, Alignment{Axis: AxisX, At: x, From: other.Top(), To: other.Bottom()})
	}

	return out
}

// intersect returns the distinct values of a that also appear in b, in the
// order of a.
func intersect(a, b []float64) []float64 {
	var out []float64
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// drawAlignments strokes each guide across both the other layer and the
// active one.
func drawAlignments(s shape.Surface, active geom.Rect, guides []Alignment) {
	if len(guides) == 0 {
		return
	}

	s.SetStrokeStyle(shape.GuideColor)
	s.SetLineWidth(1)
	for _, g := range guides {
		switch g.Axis {
		case AxisY:
			from := min(g.From, active.Left())
			to := max(g.To, active.Right())
			s.StrokeLine(from, g.At, to, g.At)
		case AxisX:
			from := min(g.From, active.Top())
			to := max(g.To, active.Bottom())
			s.StrokeLine(g.At, from, g.At, to)
		}
	}
}

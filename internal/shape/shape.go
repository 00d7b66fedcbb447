package shape

import "github.com/layerpad/layerpad/internal/geom"

// Colours used when painting shapes and their affordances.
const (
	ShapeFill   = "#cbcbcb"
	AccentColor = "#5796f8"
	HandleFill  = "#ffffff"
	GuideColor  = "#f857b4"

	outlineOffset = 1.5
	outlineWidth  = 3.0
)

// Kind identifies the concrete shape behind a Shape.
type Kind string

const (
	KindRect Kind = "rect"
)

// Shape is everything a layer needs from the thing it owns. New kinds
// implement it without touching the interaction code.
type Shape interface {
	Kind() Kind
	// Box is the axis-aligned box the shape occupies.
	Box() geom.Rect

	Draw(s Surface)
	DrawOutline(s Surface)
	DrawActive(s Surface)

	IsPointOver(s Surface, p geom.Point) bool
	// Edges returns the resize handles in the order TopLeft, TopRight,
	// BottomRight, BottomLeft.
	Edges() []Edge

	// Resize drags edge to p and returns the edge that ends up under the
	// pointer, which differs from edge once the drag crosses the opposite
	// corner.
	Resize(p geom.Point, edge Edge) Edge
	// Relocate moves the shape so that p - grab becomes its top-left corner.
	Relocate(p, grab geom.Point)
	// GrabPoint returns the offset between p and the top-left corner.
	GrabPoint(p geom.Point) geom.Point
}

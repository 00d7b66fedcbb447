package shape

import "github.com/layerpad/layerpad/internal/geom"

// Rectangle is the rectangle primitive.
type Rectangle struct {
	box geom.Rect
}

// NewRectangle builds the rectangle spanned by two corners.
func NewRectangle(a, b geom.Point) *Rectangle {
	return &Rectangle{box: geom.NewRect(a, b)}
}

func (r *Rectangle) Kind() Kind     { return KindRect }
func (r *Rectangle) Box() geom.Rect { return r.box }

func (r *Rectangle) Draw(s Surface) {
	s.SetFillStyle(ShapeFill)
	s.FillRect(r.box.X, r.box.Y, r.box.Width, r.box.Height)
}

func (r *Rectangle) DrawOutline(s Surface) {
	o := r.box.Inflate(outlineOffset)
	s.SetStrokeStyle(AccentColor)
	s.SetLineWidth(outlineWidth)
	s.StrokeRect(o.X, o.Y, o.Width, o.Height)
}

func (r *Rectangle) DrawActive(s Surface) {
	r.DrawOutline(s)
	for _, e := range r.Edges() {
		e.Draw(s)
	}
}

func (r *Rectangle) IsPointOver(s Surface, p geom.Point) bool {
	return pointInRect(s, r.box, p)
}

func (r *Rectangle) Edges() []Edge {
	return []Edge{
		NewEdge(TopLeft, r.box.TopLeft()),
		NewEdge(TopRight, r.box.TopRight()),
		NewEdge(BottomRight, r.box.BottomRight()),
		NewEdge(BottomLeft, r.box.BottomLeft()),
	}
}

func (r *Rectangle) Resize(p geom.Point, edge Edge) Edge {
	b := &r.box
	var flipH, flipV bool

	switch edge.Corner {
	case TopLeft:
		flipH, flipV = p.X > b.Right(), p.Y > b.Bottom()
		b.SetTop(p.Y)
		b.SetLeft(p.X)
	case TopRight:
		flipH, flipV = p.X < b.Left(), p.Y > b.Bottom()
		b.SetTop(p.Y)
		b.SetRight(p.X)
	case BottomRight:
		flipH, flipV = p.X < b.Left(), p.Y < b.Top()
		b.SetBottom(p.Y)
		b.SetRight(p.X)
	case BottomLeft:
		flipH, flipV = p.X > b.Right(), p.Y < b.Top()
		b.SetBottom(p.Y)
		b.SetLeft(p.X)
	}

	corner := edge.Corner.mirror(flipH, flipV)
	return r.Edges()[corner]
}

func (r *Rectangle) Relocate(p, grab geom.Point) {
	r.box = r.box.MoveTo(p.Sub(grab))
}

func (r *Rectangle) GrabPoint(p geom.Point) geom.Point {
	return p.Sub(r.box.TopLeft())
}

package geom

import "math"

// Rect is an axis-aligned box. X and Y are the top-left corner.
// Width and Height are never negative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds the box spanned by two arbitrary corners.
// The order of a and b does not matter.
func NewRect(a, b Point) Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	return Rect{
		X:      minX,
		Y:      minY,
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// CenteredSquare returns a size x size box centred on c.
func CenteredSquare(c Point, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size}
}

func (r Rect) Top() float64    { return r.Y }
func (r Rect) Left() float64   { return r.X }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) Right() float64  { return r.X + r.Width }

func (r Rect) TopLeft() Point     { return Point{X: r.Left(), Y: r.Top()} }
func (r Rect) TopRight() Point    { return Point{X: r.Right(), Y: r.Top()} }
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }
func (r Rect) BottomLeft() Point  { return Point{X: r.Left(), Y: r.Bottom()} }

// SetTop moves the top edge to y and keeps the bottom edge where it is.
// If y lies below the bottom edge the box flips: the old bottom becomes the
// top and y becomes the bottom.
func (r *Rect) SetTop(y float64) {
	r.setVertical(y, r.Bottom())
}

// SetBottom moves the bottom edge to y and keeps the top edge.
func (r *Rect) SetBottom(y float64) {
	r.setVertical(r.Top(), y)
}

// SetLeft moves the left edge to x and keeps the right edge.
func (r *Rect) SetLeft(x float64) {
	r.setHorizontal(x, r.Right())
}

// SetRight moves the right edge to x and keeps the left edge.
func (r *Rect) SetRight(x float64) {
	r.setHorizontal(r.Left(), x)
}

func (r *Rect) setVertical(top, bottom float64) {
	r.Y = math.Min(top, bottom)
	r.Height = math.Abs(bottom - top)
}

func (r *Rect) setHorizontal(left, right float64) {
	r.X = math.Min(left, right)
	r.Width = math.Abs(right - left)
}

// MoveTo returns r with its top-left corner at p and the same size.
func (r Rect) MoveTo(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Contains checks if p is inside the rect. The border counts as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Inflate grows the rect by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

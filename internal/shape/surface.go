// Package shape defines the drawable shapes a layer can own and the drawing
// surface they render onto.
package shape

// Cursor names understood by every surface.
const (
	CursorDefault    = "auto"
	CursorNWSEResize = "nwse-resize"
	CursorNESWResize = "nesw-resize"
)

// Surface is the drawing backend supplied by the host. It mirrors the subset
// of a Canvas2D context the editor needs.
type Surface interface {
	Width() float64
	Height() float64
	Clear(x, y, w, h float64)

	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetLineWidth(px float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	StrokeLine(x1, y1, x2, y2 float64)

	// BeginPath and Rect declare a path that IsPointInPath tests against.
	BeginPath()
	Rect(x, y, w, h float64)
	IsPointInPath(x, y float64) bool

	SetCursor(name string)
}

package shape

import (
	"fmt"

	"github.com/layerpad/layerpad/internal/geom"
)

// HandleSize is the side length of a corner handle and its hit box.
const HandleSize = 8.0

// Corner names one of the four corners of a shape's box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// MarshalText encodes the corner by name.
func (c Corner) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Corner) UnmarshalText(text []byte) error {
	for _, corner := range []Corner{TopLeft, TopRight, BottomRight, BottomLeft} {
		if corner.String() == string(text) {
			*c = corner
			return nil
		}
	}
	return fmt.Errorf("unknown corner %q", text)
}

// Cursor returns the resize cursor shown while hovering or dragging the corner.
func (c Corner) Cursor() string {
	switch c {
	case TopLeft, BottomRight:
		return CursorNWSEResize
	default:
		return CursorNESWResize
	}
}

// mirror returns the corner reached by flipping horizontally and/or vertically.
func (c Corner) mirror(horizontal, vertical bool) Corner {
	left := c == TopLeft || c == BottomLeft
	top := c == TopLeft || c == TopRight
	if horizontal {
		left = !left
	}
	if vertical {
		top = !top
	}
	switch {
	case top && left:
		return TopLeft
	case top:
		return TopRight
	case left:
		return BottomLeft
	default:
		return BottomRight
	}
}

// Edge is a resize handle: a corner plus its hit box.
type Edge struct {
	Corner Corner    `json:"corner"`
	Box    geom.Rect `json:"box"`
}

// NewEdge builds the handle centred on point p.
func NewEdge(c Corner, p geom.Point) Edge {
	return Edge{Corner: c, Box: geom.CenteredSquare(p, HandleSize)}
}

// Cursor returns the cursor hint of the edge.
func (e Edge) Cursor() string {
	return e.Corner.Cursor()
}

// IsPointOver reports whether p falls inside the edge's hit box.
func (e Edge) IsPointOver(s Surface, p geom.Point) bool {
	return pointInRect(s, e.Box, p)
}

// Draw paints the handle.
func (e Edge) Draw(s Surface) {
	s.SetFillStyle(HandleFill)
	s.FillRect(e.Box.X, e.Box.Y, e.Box.Width, e.Box.Height)
	s.SetStrokeStyle(AccentColor)
	s.SetLineWidth(1)
	s.StrokeRect(e.Box.X, e.Box.Y, e.Box.Width, e.Box.Height)
}

func pointInRect(s Surface, r geom.Rect, p geom.Point) bool {
	s.BeginPath()
	s.Rect(r.X, r.Y, r.Width, r.Height)
	return s.IsPointInPath(p.X, p.Y)
}

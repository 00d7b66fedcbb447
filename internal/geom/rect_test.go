package geom_test

import (
	"testing"

	"github.com/layerpad/layerpad/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestNewRectOrderIndependent(t *testing.T) {
	pairs := [][2]geom.Point{
		{geom.Pt(10, 20), geom.Pt(30, 50)},
		{geom.Pt(30, 50), geom.Pt(10, 20)},
		{geom.Pt(30, 20), geom.Pt(10, 50)},
		{geom.Pt(-5, 7), geom.Pt(-5, 7)},
		{geom.Pt(0.5, -3), geom.Pt(-2.25, 4)},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		r1 := geom.NewRect(a, b)
		r2 := geom.NewRect(b, a)
		require.Equal(t, r1, r2)
		require.GreaterOrEqual(t, r1.Width, 0.0)
		require.GreaterOrEqual(t, r1.Height, 0.0)
	}

	require.Equal(t, geom.Rect{X: 10, Y: 20, Width: 20, Height: 30}, geom.NewRect(geom.Pt(30, 20), geom.Pt(10, 50)))
}

func TestCorners(t *testing.T) {
	r := geom.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	require.Equal(t, geom.Pt(10, 20), r.TopLeft())
	require.Equal(t, geom.Pt(40, 20), r.TopRight())
	require.Equal(t, geom.Pt(40, 60), r.BottomRight())
	require.Equal(t, geom.Pt(10, 60), r.BottomLeft())
}

func TestSettersKeepOppositeEdge(t *testing.T) {
	base := geom.Rect{X: 10, Y: 20, Width: 30, Height: 40}

	r := base
	r.SetTop(5)
	require.Equal(t, base.Bottom(), r.Bottom())
	require.Equal(t, 5.0, r.Top())

	r = base
	r.SetBottom(100)
	require.Equal(t, base.Top(), r.Top())
	require.Equal(t, 100.0, r.Bottom())

	r = base
	r.SetLeft(0)
	require.Equal(t, base.Right(), r.Right())
	require.Equal(t, 0.0, r.Left())

	r = base
	r.SetRight(35)
	require.Equal(t, base.Left(), r.Left())
	require.Equal(t, 35.0, r.Right())
}

func TestSettersFlipPastOppositeEdge(t *testing.T) {
	r := geom.Rect{X: 10, Y: 20, Width: 30, Height: 40}

	r.SetTop(70)
	require.Equal(t, geom.Rect{X: 10, Y: 60, Width: 30, Height: 10}, r)

	r.SetLeft(50)
	require.Equal(t, geom.Rect{X: 40, Y: 60, Width: 10, Height: 10}, r)
}

func TestContainsBorderInclusive(t *testing.T) {
	r := geom.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	require.True(t, r.Contains(geom.Pt(0, 0)))
	require.True(t, r.Contains(geom.Pt(10, 10)))
	require.True(t, r.Contains(geom.Pt(5, 5)))
	require.False(t, r.Contains(geom.Pt(10.01, 5)))
	require.False(t, r.Contains(geom.Pt(5, -1)))
}

func TestMoveToAndInflate(t *testing.T) {
	r := geom.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	require.Equal(t, geom.Rect{X: 7, Y: 8, Width: 3, Height: 4}, r.MoveTo(geom.Pt(7, 8)))
	require.Equal(t, geom.Rect{X: -0.5, Y: 0.5, Width: 6, Height: 7}, r.Inflate(1.5))
	require.Equal(t, geom.Rect{X: 6, Y: 6, Width: 8, Height: 8}, geom.CenteredSquare(geom.Pt(10, 10), 8))
}

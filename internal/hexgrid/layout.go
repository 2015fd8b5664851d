// Package hexgrid holds the flat-top hex grid: cell geometry, hit testing
// and offset-coordinate adjacency.
package hexgrid

import (
	"image"
	"math"
)

// halfRoot3 is the vertical half-height of a flat-top hex with unit radius.
var halfRoot3 = math.Sqrt(3) / 2

// Layout describes where hexes are drawn on the canvas.
type Layout struct {
	HexSize int         // corner-to-center radius in pixels
	Origin  image.Point // top-left of cell (0,0)'s bounding box
}

// NewLayout returns a layout whose drawing starts half a hex in from the
// canvas corner.
func NewLayout(hexSize int) Layout {
	o := int(0.5 * float64(hexSize))
	return Layout{HexSize: hexSize, Origin: image.Pt(o, o)}
}

// halfHeight is the truncated vertical offset used for odd columns.
func (l Layout) halfHeight() int { return int(halfRoot3 * float64(l.HexSize)) }

// rowPitch is the truncated distance between two rows.
func (l Layout) rowPitch() int { return int(2 * halfRoot3 * float64(l.HexSize)) }

// colPitch is the distance between two column starts (1.5 * size).
func (l Layout) colPitch() int { return l.HexSize/2 + l.HexSize }

// ComputePolygon returns the six vertices of cell (row, col) in the order
// top-left, top-right, right, bottom-right, bottom-left, left.
// Odd columns are pushed down by half a hex.
func ComputePolygon(row, col int, l Layout) Polygon {
	s := l.HexSize
	h := l.halfHeight()
	full := l.rowPitch()

	x := l.Origin.X + col*l.colPitch()
	y := l.Origin.Y + row*full
	if col%2 != 0 {
		y += h
	}

	return Polygon{
		{X: x + s/2, Y: y},
		{X: x + s/2 + s, Y: y},
		{X: x + 2*s, Y: y + h},
		{X: x + s/2 + s, Y: y + full},
		{X: x + s/2, Y: y + full},
		{X: x, Y: y + h},
	}
}

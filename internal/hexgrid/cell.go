package hexgrid

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Coord identifies a cell by offset coordinates.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Cell is one hex of the grid. Its coordinates never change; the polygon is
// computed on first use and cached for the cell's lifetime.
type Cell struct {
	Coord

	layout   Layout
	polyOnce sync.Once
	poly     Polygon

	selected atomic.Bool
}

func newCell(row, col int, l Layout) *Cell {
	return &Cell{Coord: Coord{Row: row, Col: col}, layout: l}
}

// Polygon returns the cached outline, computing it the first time.
func (c *Cell) Polygon() Polygon {
	c.polyOnce.Do(func() {
		c.poly = ComputePolygon(c.Row, c.Col, c.layout)
	})
	return c.poly
}

// ContainsPoint hit-tests (x, y) against the cell outline.
func (c *Cell) ContainsPoint(x, y int) bool { return c.Polygon().Contains(x, y) }

func (c *Cell) Selected() bool { return c.selected.Load() }

// SetSelected stores the flag and reports whether it changed.
func (c *Cell) SetSelected(v bool) bool { return c.selected.Swap(v) != v }

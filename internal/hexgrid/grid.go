package hexgrid

import (
	"fmt"
	"image"
)

// Grid is a fixed rows x columns collection of cells. It owns its cells and
// its dimensions never change after New.
type Grid struct {
	rows, cols int
	layout     Layout
	cells      [][]*Cell
}

// New builds every cell in [0,rows) x [0,cols).
func New(rows, cols int, l Layout) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("hexgrid: negative dimensions %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols, layout: l, cells: make([][]*Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]*Cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = newCell(r, c, l)
		}
	}
	return g
}

func (g *Grid) Rows() int      { return g.rows }
func (g *Grid) Cols() int      { return g.cols }
func (g *Grid) Layout() Layout { return g.layout }

// InBounds reports whether (row, col) names a cell of this grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). Indexing outside the grid is a caller
// bug and panics.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("hexgrid: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.cells[row][col]
}

// Lookup is the bounds-checked form of At.
func (g *Grid) Lookup(row, col int) (*Cell, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return g.cells[row][col], true
}

// Each visits cells in row-major order until fn returns false.
func (g *Grid) Each(fn func(*Cell) bool) {
	for _, row := range g.cells {
		for _, c := range row {
			if !fn(c) {
				return
			}
		}
	}
}

// CellAt returns the first cell, in row-major order, whose outline
// contains (x, y), or nil.
func (g *Grid) CellAt(x, y int) *Cell {
	var hit *Cell
	g.Each(func(c *Cell) bool {
		if c.ContainsPoint(x, y) {
			hit = c
			return false
		}
		return true
	})
	return hit
}

// Outlines returns every cell polygon in row-major order.
func (g *Grid) Outlines() []Polygon {
	out := make([]Polygon, 0, g.rows*g.cols)
	g.Each(func(c *Cell) bool {
		out = append(out, c.Polygon())
		return true
	})
	return out
}

// Bounds is the union of every cell's bounding box.
func (g *Grid) Bounds() image.Rectangle {
	var r image.Rectangle
	g.Each(func(c *Cell) bool {
		r = r.Union(c.Polygon().Bounds())
		return true
	})
	return r
}

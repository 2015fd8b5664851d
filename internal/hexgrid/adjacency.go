package hexgrid

import (
	"cmp"
	"slices"
)

// Offsets to the six neighbors of a flat-top hex in offset coordinates.
// Odd columns sit half a hex lower than even ones, so the diagonal
// neighbors in the adjacent columns depend on the column parity.
var (
	evenColNeighbors = [6]Coord{
		{Row: -1, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: -1, Col: -1}, {Row: -1, Col: 1},
	}
	oddColNeighbors = [6]Coord{
		{Row: -1, Col: 0}, {Row: 1, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 1},
	}
)

// NeighborCoords returns the six candidate coordinates around c, including
// ones that may fall outside any grid.
func NeighborCoords(c Coord) [6]Coord {
	dirs := evenColNeighbors
	if c.Col%2 != 0 {
		dirs = oddColNeighbors
	}
	var out [6]Coord
	for i, d := range dirs {
		out[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
	}
	return out
}

// Neighbors returns the in-bounds cells adjacent to c.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, 6)
	for _, n := range NeighborCoords(c.Coord) {
		if cell, ok := g.Lookup(n.Row, n.Col); ok {
			out = append(out, cell)
		}
	}
	return out
}

// NeighborsWithinDepth returns every cell reachable from center in 1 to
// depth steps. center itself is part of the result once depth >= 2, since a
// two-step walk leads back to it. depth <= 0 yields an empty set.
func (g *Grid) NeighborsWithinDepth(center *Cell, depth int) Set {
	found := Set{}
	if depth <= 0 {
		return found
	}
	expanded := map[Coord]bool{center.Coord: true}
	frontier := []*Cell{center}
	for step := 0; step < depth && len(frontier) > 0; step++ {
		var next []*Cell
		for _, c := range frontier {
			for _, n := range g.Neighbors(c) {
				found[n.Coord] = n
				if !expanded[n.Coord] {
					expanded[n.Coord] = true
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return found
}

// Set is a collection of cells keyed by coordinate.
type Set map[Coord]*Cell

func (s Set) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s Set) Len() int { return len(s) }

// Cells returns the members sorted by row, then column.
func (s Set) Cells() []*Cell {
	out := make([]*Cell, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Cell) int {
		if r := cmp.Compare(a.Row, b.Row); r != 0 {
			return r
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out
}

// cube coordinates of an odd-q offset cell
func toCube(c Coord) (x, y, z int) {
	x = c.Col
	z = c.Row - (c.Col-(c.Col&1))/2
	y = -x - z
	return
}

// Distance returns the number of hex steps between a and b.
func Distance(a, b Coord) int {
	ax, ay, az := toCube(a)
	bx, by, bz := toCube(b)
	return max(abs(ax-bx), abs(ay-by), abs(az-bz))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

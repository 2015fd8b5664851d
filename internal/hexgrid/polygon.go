package hexgrid

import (
	"image"
	"slices"
)

// Polygon is an ordered, implicitly closed sequence of vertices.
type Polygon []image.Point

// Contains reports whether (x, y) lies inside the polygon (even-odd rule).
// An empty polygon contains nothing.
func (p Polygon) Contains(x, y int) bool {
	if len(p) < 3 {
		return false
	}
	px, py := float64(x), float64(y)
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		xi, yi := float64(p[i].X), float64(p[i].Y)
		xj, yj := float64(p[j].X), float64(p[j].Y)
		if (yi > py) != (yj > py) && px < (xj-xi)*(py-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Bounds returns the smallest rectangle holding every vertex.
func (p Polygon) Bounds() image.Rectangle {
	if len(p) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}

// Center is the midpoint of the bounding box.
func (p Polygon) Center() image.Point {
	b := p.Bounds()
	return image.Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
}

func (p Polygon) Equal(o Polygon) bool { return slices.Equal(p, o) }

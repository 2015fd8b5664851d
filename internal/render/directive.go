// Package render composes the hex grid and its drawing directives into a
// raster image.
package render

import (
	"fmt"
	"image/color"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
)

// Kind tags the directive variant.
type Kind uint8

const (
	KindFill Kind = iota + 1
	KindStroke
)

func (k Kind) String() string {
	switch k {
	case KindFill:
		return "fill"
	case KindStroke:
		return "stroke"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Order places a directive beneath or above the grid outline.
type Order uint8

const (
	UnderGrid Order = iota
	OverGrid
)

func (o Order) String() string {
	if o == OverGrid {
		return "over"
	}
	return "under"
}

// Directive is one shape to draw. Kind selects which fields apply: Width is
// only meaningful for strokes.
type Directive struct {
	Kind         Kind
	Order        Order
	Priority     int  // lower draws first within an Order
	DestroyAfter bool // purged after the next publish
	Polygon      hexgrid.Polygon
	Color        color.NRGBA
	Width        float32
}

// Fill builds a filled-polygon directive.
func Fill(order Order, priority int, destroyAfter bool, poly hexgrid.Polygon, c color.NRGBA) Directive {
	return Directive{Kind: KindFill, Order: order, Priority: priority, DestroyAfter: destroyAfter, Polygon: poly, Color: c}
}

// Stroke builds an outlined-polygon directive.
func Stroke(order Order, priority int, destroyAfter bool, poly hexgrid.Polygon, c color.NRGBA, width float32) Directive {
	return Directive{Kind: KindStroke, Order: order, Priority: priority, DestroyAfter: destroyAfter, Polygon: poly, Color: c, Width: width}
}

// Equal compares every field, polygon vertices included.
func (d Directive) Equal(o Directive) bool {
	return d.Kind == o.Kind &&
		d.Order == o.Order &&
		d.Priority == o.Priority &&
		d.DestroyAfter == o.DestroyAfter &&
		d.Color == o.Color &&
		d.Width == o.Width &&
		d.Polygon.Equal(o.Polygon)
}

package render

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
)

// joinSegments is the number of edges used to approximate a round join.
const joinSegments = 12

// Outliner supplies the base grid outlines.
type Outliner interface {
	Outlines() []hexgrid.Polygon
}

// Compositor draws directives around a grid onto a fixed-size canvas.
type Compositor struct {
	Width, Height int
	Background    color.NRGBA
	GridColor     color.NRGBA
	GridWidth     float32
}

// NewCompositor returns a compositor with a white background and a black,
// 5px grid outline.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		Width:      width,
		Height:     height,
		Background: color.NRGBA{255, 255, 255, 255},
		GridColor:  color.NRGBA{0, 0, 0, 255},
		GridWidth:  5,
	}
}

// Render paints, in order: background, under-grid directives by ascending
// priority, every grid outline, over-grid directives by ascending priority.
// Equal priorities keep the order of ds. The returned image is not touched
// again by the compositor.
func (c *Compositor) Render(g Outliner, ds []Directive) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(c.Width, 0), max(c.Height, 0)))
	if img.Bounds().Empty() {
		return img
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	under, over := partition(ds)
	var m masker

	for _, d := range under {
		m.drawDirective(img, d)
	}

	for _, p := range g.Outlines() {
		m.drawDirective(img, Stroke(UnderGrid, 0, false, p, c.GridColor, c.GridWidth))
	}

	for _, d := range over {
		m.drawDirective(img, d)
	}
	return img
}

func partition(ds []Directive) (under, over []Directive) {
	for _, d := range ds {
		if d.Order == OverGrid {
			over = append(over, d)
		} else {
			under = append(under, d)
		}
	}
	byPriority := func(a, b Directive) int { return cmp.Compare(a.Priority, b.Priority) }
	slices.SortStableFunc(under, byPriority)
	slices.SortStableFunc(over, byPriority)
	return under, over
}

// maskNoise is the coverage below which (or above 255 minus which) a mask
// pixel is snapped to empty (or full).
const maskNoise = 2

// masker rasterizes one shape at a time into a coverage mask sized to the
// shape's padded bounding box and composites it onto the canvas. Pixels
// outside the box are never written.
type masker struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

func (m *masker) drawDirective(img *image.RGBA, d Directive) {
	var build func(z *vector.Rasterizer, off image.Point)
	var width float32
	switch d.Kind {
	case KindFill:
		build = func(z *vector.Rasterizer, off image.Point) { addPolygon(z, d.Polygon, off) }
	case KindStroke:
		width = d.Width
		build = func(z *vector.Rasterizer, off image.Point) { addStroke(z, d.Polygon, off, d.Width) }
	default:
		return
	}
	m.paint(img, pad(d.Polygon.Bounds(), width), d.Color, build)
}

// paint rasterizes build over the whole of r, so every vertex lands inside
// the rasterizer, and draws col through the resulting mask onto the part of
// r that lies on the canvas. build receives the offset to subtract from
// canvas coordinates.
func (m *masker) paint(img *image.RGBA, r image.Rectangle, col color.NRGBA, build func(z *vector.Rasterizer, off image.Point)) {
	clip := r.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()
	if m.z == nil {
		m.z = vector.NewRasterizer(w, h)
	} else {
		m.z.Reset(w, h)
	}
	m.z.DrawOp = draw.Src

	if m.mask == nil || cap(m.mask.Pix) < w*h {
		m.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		m.mask.Pix = m.mask.Pix[:w*h]
		m.mask.Stride = w
		m.mask.Rect = image.Rect(0, 0, w, h)
	}

	build(m.z, r.Min)
	m.z.Draw(m.mask, m.mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range m.mask.Pix {
		switch {
		case a <= maskNoise:
			m.mask.Pix[i] = 0
		case a >= 255-maskNoise:
			m.mask.Pix[i] = 255
		}
	}
	draw.DrawMask(img, clip, image.NewUniform(col), image.Point{}, m.mask, clip.Min.Sub(r.Min), draw.Over)
}

// pad grows r to cover a stroke of the given width plus one pixel of
// antialiasing. Polygon bounds are inclusive of their max vertex.
func pad(r image.Rectangle, width float32) image.Rectangle {
	if r == (image.Rectangle{}) {
		return r
	}
	n := int(math.Ceil(float64(width)/2)) + 1
	return image.Rect(r.Min.X-n, r.Min.Y-n, r.Max.X+n+1, r.Max.Y+n+1)
}

func addPolygon(z *vector.Rasterizer, p hexgrid.Polygon, off image.Point) {
	if len(p) < 3 {
		return
	}
	z.MoveTo(float32(p[0].X-off.X), float32(p[0].Y-off.Y))
	for _, v := range p[1:] {
		z.LineTo(float32(v.X-off.X), float32(v.Y-off.Y))
	}
	z.ClosePath()
}

// addStroke outlines p as one quad per edge plus a round join per vertex.
// All sub-paths share the same winding so overlapping coverage saturates
// rather than cancelling.
func addStroke(z *vector.Rasterizer, p hexgrid.Polygon, off image.Point, width float32) {
	if len(p) < 2 || width <= 0 {
		return
	}
	hw := float64(width) / 2
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		ax, ay := float64(a.X-off.X), float64(a.Y-off.Y)
		bx, by := float64(b.X-off.X), float64(b.Y-off.Y)
		dx, dy := bx-ax, by-ay
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(float32(ax+nx), float32(ay+ny))
		z.LineTo(float32(bx+nx), float32(by+ny))
		z.LineTo(float32(bx-nx), float32(by-ny))
		z.LineTo(float32(ax-nx), float32(ay-ny))
		z.ClosePath()
	}
	for _, v := range p {
		addJoin(z, float64(v.X-off.X), float64(v.Y-off.Y), hw)
	}
}

func addJoin(z *vector.Rasterizer, cx, cy, r float64) {
	for i := 0; i < joinSegments; i++ {
		a := -2 * math.Pi * float64(i) / joinSegments
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// Package game drives selection and highlighting from pointer events.
package game

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/hexmap"
	"github.com/BaronVasDeferens/HexDrag/internal/input"
	"github.com/BaronVasDeferens/HexDrag/internal/render"
)

// State of the selection machine.
type State uint8

const (
	NoSelection State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "no-selection"
}

// Draw priorities within the under-grid layer: the selected cell is painted
// over its highlighted surroundings.
const (
	highlightPriority = 0
	selectedPriority  = 1
	hoverPriority     = 0
)

// Palette holds the colors used for selection feedback.
type Palette struct {
	Selected   color.NRGBA
	Highlight  color.NRGBA
	Hover      color.NRGBA
	HoverWidth float32
}

func DefaultPalette() Palette {
	return Palette{
		Selected:   color.NRGBA{220, 40, 40, 255},
		Highlight:  color.NRGBA{250, 200, 60, 255},
		Hover:      color.NRGBA{30, 90, 220, 255},
		HoverWidth: 3,
	}
}

type Options struct {
	Radius  int // highlight depth around the selected cell
	Palette Palette
	Logger  *slog.Logger
}

// Controller applies events to a Map one at a time. It is not safe for
// concurrent use; Run is meant to be its only caller.
type Controller struct {
	m       *hexmap.Map
	radius  int
	palette Palette
	log     *slog.Logger

	state       State
	selected    *hexgrid.Cell
	highlighted hexgrid.Set
}

func NewController(m *hexmap.Map, opts Options) *Controller {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Controller{m: m, radius: opts.Radius, palette: opts.Palette, log: l}
}

func (c *Controller) State() State { return c.state }

// SelectedCell is the current selection, or nil.
func (c *Controller) SelectedCell() *hexgrid.Cell { return c.selected }

// Highlighted is the set computed at selection time; empty when nothing is
// selected.
func (c *Controller) Highlighted() hexgrid.Set { return c.highlighted }

// Run handles events until the channel closes or ctx is cancelled.
func (c *Controller) Run(ctx context.Context, events <-chan input.Event) error {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("controller stopping", "reason", ctx.Err())
			return nil
		case ev, ok := <-events:
			if !ok {
				c.log.Debug("controller stopping", "reason", "event stream closed")
				return nil
			}
			c.Handle(ev)
		}
	}
}

// Handle applies one event and reports whether a new frame was published.
func (c *Controller) Handle(ev input.Event) bool {
	switch c.state {
	case NoSelection:
		if ev.Type == input.PrimaryDown {
			return c.selectAt(ev)
		}
	case Selected:
		switch ev.Type {
		case input.PrimaryDown:
			return c.deselect()
		case input.Move:
			return c.hover(ev)
		}
	}
	return false
}

func (c *Controller) selectAt(ev input.Event) bool {
	cell := c.m.CellAt(ev.Point.X, ev.Point.Y)
	if cell == nil {
		return false
	}
	cell.SetSelected(true)
	c.highlighted = c.m.Grid().NeighborsWithinDepth(cell, c.radius)

	ds := make([]render.Directive, 0, c.highlighted.Len()+1)
	ds = append(ds, render.Fill(render.UnderGrid, selectedPriority, false, cell.Polygon(), c.palette.Selected))
	for _, n := range c.highlighted.Cells() {
		ds = append(ds, render.Fill(render.UnderGrid, highlightPriority, false, n.Polygon(), c.palette.Highlight))
	}
	c.m.Directives().AddAll(ds...)

	c.selected = cell
	c.state = Selected
	c.log.Info("cell selected", "cell", cell.Coord, "radius", c.radius, "highlighted", c.highlighted.Len())
	c.m.Publish()
	return true
}

func (c *Controller) deselect() bool {
	c.m.Directives().Clear()
	if c.selected != nil {
		c.selected.SetSelected(false)
		c.log.Info("cell deselected", "cell", c.selected.Coord)
	}
	c.selected = nil
	c.highlighted = nil
	c.state = NoSelection
	c.m.Publish()
	return true
}

// hover outlines the highlighted cell under the pointer, replacing any
// previous outline. Leaving the highlighted area clears every directive.
func (c *Controller) hover(ev input.Event) bool {
	var changed bool
	if target := c.highlightedAt(ev.Point.X, ev.Point.Y); target != nil {
		d := render.Stroke(render.OverGrid, hoverPriority, false, target.Polygon(), c.palette.Hover, c.palette.HoverWidth)
		changed = c.m.Directives().Replace(render.KindStroke, render.OverGrid, d)
	} else {
		changed = c.m.Directives().Clear() > 0
	}
	if changed {
		c.m.Publish()
	}
	return changed
}

func (c *Controller) highlightedAt(x, y int) *hexgrid.Cell {
	for _, cell := range c.highlighted.Cells() {
		if cell.ContainsPoint(x, y) {
			return cell
		}
	}
	return nil
}

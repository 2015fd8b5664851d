package game

import (
	"context"
	"image"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/hexmap"
	"github.com/BaronVasDeferens/HexDrag/internal/input"
	"github.com/BaronVasDeferens/HexDrag/internal/render"
)

func newTestController(radius int) (*Controller, *hexmap.Map) {
	g := hexgrid.New(12, 14, hexgrid.NewLayout(12))
	m := hexmap.New(g, render.NewCompositor(300, 300))
	return NewController(m, Options{Radius: radius, Palette: DefaultPalette()}), m
}

func ev(t input.Type, x, y int) input.Event {
	return input.Event{Type: t, Point: image.Pt(x, y)}
}

func seq(m *hexmap.Map) uint64 {
	if f := m.Latest(); f != nil {
		return f.Seq
	}
	return 0
}

func TestSelection(t *testing.T) {
	Convey("Given a 12x14 map with hex size 12 and radius 3", t, func() {
		c, m := newTestController(3)
		target := m.Grid().At(5, 6)

		Convey("A click outside every cell changes nothing", func() {
			So(c.Handle(ev(input.PrimaryDown, 0, 0)), ShouldBeFalse)
			So(c.State(), ShouldEqual, NoSelection)
			So(m.Directives().Len(), ShouldEqual, 0)
			So(m.Latest(), ShouldBeNil)
		})

		Convey("Clicking the center of cell (5,6)", func() {
			So(c.Handle(ev(input.PrimaryDown, 126, 116)), ShouldBeTrue)

			Convey("selects it and highlights everything within three steps", func() {
				So(c.State(), ShouldEqual, Selected)
				So(c.SelectedCell(), ShouldEqual, target)
				So(target.Selected(), ShouldBeTrue)

				want := m.Grid().NeighborsWithinDepth(target, 3)
				So(c.Highlighted().Len(), ShouldEqual, want.Len())
				for k := range want {
					So(c.Highlighted().Has(k), ShouldBeTrue)
				}
				So(m.Directives().Len(), ShouldEqual, 1+want.Len())
			})

			Convey("publishes a frame showing the selection", func() {
				f := m.Latest()
				So(f, ShouldNotBeNil)
				So(f.Seq, ShouldEqual, uint64(1))
				sel := DefaultPalette().Selected
				So(f.Image.RGBAAt(126, 116).R, ShouldEqual, sel.R)
				So(f.Image.RGBAAt(126, 116).G, ShouldEqual, sel.G)
				hl := DefaultPalette().Highlight
				So(f.Image.RGBAAt(144, 126).R, ShouldEqual, hl.R)
				So(f.Image.RGBAAt(144, 126).G, ShouldEqual, hl.G)
			})

			Convey("a second click anywhere clears the selection", func() {
				So(c.Handle(ev(input.PrimaryDown, 0, 0)), ShouldBeTrue)
				So(c.State(), ShouldEqual, NoSelection)
				So(target.Selected(), ShouldBeFalse)
				So(m.Directives().Len(), ShouldEqual, 0)
				So(c.Highlighted().Len(), ShouldEqual, 0)
				So(seq(m), ShouldEqual, uint64(2))
				So(m.Selected(), ShouldBeEmpty)
			})
		})
	})
}

func TestIgnoredEvents(t *testing.T) {
	Convey("Events other than clicks and hovers are ignored", t, func() {
		c, m := newTestController(2)
		others := []input.Type{input.None, input.PrimaryUp, input.SecondaryDown, input.SecondaryUp, input.Drag, input.Move}
		for _, typ := range others {
			So(c.Handle(ev(typ, 126, 116)), ShouldBeFalse)
		}
		So(c.State(), ShouldEqual, NoSelection)
		So(m.Latest(), ShouldBeNil)

		c.Handle(ev(input.PrimaryDown, 126, 116))
		before := m.Directives().Len()
		for _, typ := range others[:len(others)-1] {
			So(c.Handle(ev(typ, 126, 116)), ShouldBeFalse)
		}
		So(c.State(), ShouldEqual, Selected)
		So(m.Directives().Len(), ShouldEqual, before)
		So(seq(m), ShouldEqual, uint64(1))
	})
}

func TestHover(t *testing.T) {
	Convey("Given a selected cell", t, func() {
		c, m := newTestController(3)
		c.Handle(ev(input.PrimaryDown, 126, 116))
		base := m.Directives().Len()

		strokes := func() []render.Directive {
			var out []render.Directive
			for _, d := range m.Directives().Snapshot() {
				if d.Kind == render.KindStroke {
					out = append(out, d)
				}
			}
			return out
		}

		Convey("hovering a highlighted cell outlines it", func() {
			So(c.Handle(ev(input.Move, 144, 126)), ShouldBeTrue)
			s := strokes()
			So(s, ShouldHaveLength, 1)
			So(s[0].Order, ShouldEqual, render.OverGrid)
			So(s[0].Polygon.Equal(m.Grid().At(5, 7).Polygon()), ShouldBeTrue)
			So(m.Directives().Len(), ShouldEqual, base+1)

			Convey("moving within the same cell publishes nothing new", func() {
				before := seq(m)
				So(c.Handle(ev(input.Move, 145, 127)), ShouldBeFalse)
				So(seq(m), ShouldEqual, before)
			})

			Convey("moving to another highlighted cell replaces the outline", func() {
				So(c.Handle(ev(input.Move, 162, 116)), ShouldBeTrue)
				s := strokes()
				So(s, ShouldHaveLength, 1)
				So(s[0].Polygon.Equal(m.Grid().At(5, 8).Polygon()), ShouldBeTrue)
				So(m.Directives().Len(), ShouldEqual, base+1)
			})

			Convey("leaving the highlighted area clears every directive", func() {
				So(c.Handle(ev(input.Move, 18, 16)), ShouldBeTrue)
				So(m.Directives().Len(), ShouldEqual, 0)
				So(c.State(), ShouldEqual, Selected)

				Convey("and a further move outside publishes nothing", func() {
					before := seq(m)
					So(c.Handle(ev(input.Move, 19, 16)), ShouldBeFalse)
					So(seq(m), ShouldEqual, before)
				})
			})
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run handles events in order until the stream closes", t, func() {
		c, m := newTestController(1)
		events := make(chan input.Event)
		errc := make(chan error, 1)
		go func() { errc <- c.Run(context.Background(), events) }()

		events <- ev(input.PrimaryDown, 126, 116)
		events <- ev(input.PrimaryDown, 126, 116)
		events <- ev(input.PrimaryDown, 126, 116)
		close(events)

		select {
		case err := <-errc:
			So(err, ShouldBeNil)
		case <-time.After(2 * time.Second):
			So("Run did not return", ShouldBeEmpty)
		}
		So(seq(m), ShouldEqual, uint64(3))
		So(c.State(), ShouldEqual, Selected)
		So(m.Directives().Len(), ShouldEqual, 7)
	})

	Convey("Run returns when its context is cancelled", t, func() {
		c, _ := newTestController(1)
		ctx, cancel := context.WithCancel(context.Background())
		errc := make(chan error, 1)
		go func() { errc <- c.Run(ctx, make(chan input.Event)) }()
		cancel()

		select {
		case err := <-errc:
			So(err, ShouldBeNil)
		case <-time.After(2 * time.Second):
			So("Run did not return", ShouldBeEmpty)
		}
	})
}

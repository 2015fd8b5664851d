// Package display hosts the map in an ebiten window: it shows the latest
// published frame and forwards mouse input to the event bus.
package display

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/hexmap"
	"github.com/BaronVasDeferens/HexDrag/internal/input"
)

const hudH = 20

// Source is what the window reads from the map.
type Source interface {
	Latest() *hexmap.Frame
	Selected() []*hexgrid.Cell
}

type Options struct {
	Title         string
	Width, Height int
	Offset        image.Point     // where the frame's top-left lands on screen
	Done          <-chan struct{} // closes the window when it fires
	Logger        *slog.Logger
}

// Window implements ebiten.Game.
type Window struct {
	src  Source
	bus  *input.Bus
	opts Options
	log  *slog.Logger

	poller   input.Poller
	frame    *ebiten.Image
	frameSeq uint64
	status   string
}

func New(src Source, bus *input.Bus, opts Options) *Window {
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Window{src: src, bus: bus, opts: opts, log: l}
}

// Run opens the window and blocks until it is closed or Done fires.
// It must be called from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.log.Info("window closed")
		return ebiten.Termination
	}
	select {
	case <-w.opts.Done:
		return ebiten.Termination
	default:
	}

	mx, my := ebiten.CursorPosition()
	snap := input.Snapshot{
		X:                 mx - w.opts.Offset.X,
		Y:                 my - w.opts.Offset.Y,
		PrimaryHeld:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SecondaryHeld:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		PrimaryPressed:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PrimaryReleased:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		SecondaryPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		SecondaryReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
	}
	for _, p := range w.poller.Poll(snap) {
		w.bus.Publish(p)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.copySelection()
	}
	return nil
}

// copySelection puts "row,col" of each selected cell on the clipboard.
func (w *Window) copySelection() {
	sel := w.src.Selected()
	if len(sel) == 0 {
		w.status = "nothing selected"
		return
	}
	c := sel[0]
	s := fmt.Sprintf("%d,%d", c.Row, c.Col)
	if err := clipboard.WriteAll(s); err != nil {
		w.log.Warn("clipboard write failed", "err", err)
		w.status = "clipboard unavailable"
		return
	}
	w.status = "copied " + s
}

func (w *Window) Draw(screen *ebiten.Image) {
	if f := w.src.Latest(); f != nil && f.Seq != w.frameSeq {
		if w.frame != nil {
			w.frame.Deallocate()
		}
		w.frame = ebiten.NewImageFromImage(f.Image)
		w.frameSeq = f.Seq
	}
	if w.frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(w.opts.Offset.X), float64(w.opts.Offset.Y))
		screen.DrawImage(w.frame, op)
	}
	text.Draw(screen, w.hud(), basicfont.Face7x13, 8, w.opts.Height-hudH/2+4, color.NRGBA{60, 60, 60, 255})
}

func (w *Window) hud() string {
	line := "click a hex to select it"
	if sel := w.src.Selected(); len(sel) > 0 {
		line = fmt.Sprintf("selected %v  (C copies)", sel[0].Coord)
	}
	if w.status != "" {
		line += "  |  " + w.status
	}
	return fmt.Sprintf("%s  |  frame %d", line, w.frameSeq)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.opts.Width, w.opts.Height
}

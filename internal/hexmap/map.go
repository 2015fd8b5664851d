// Package hexmap owns the grid, its pending draw directives and the most
// recently published image.
package hexmap

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/render"
)

// Map ties the grid to the directive set and the publish slot.
type Map struct {
	grid       *hexgrid.Grid
	directives *render.Set
	compositor *render.Compositor
	log        *slog.Logger

	publishMu sync.Mutex
	seq       uint64
	slot      *slot
}

type Option func(*Map)

// WithLogger sets the logger used for publish diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Map) {
		if l != nil {
			m.log = l
		}
	}
}

func New(grid *hexgrid.Grid, compositor *render.Compositor, opts ...Option) *Map {
	m := &Map{
		grid:       grid,
		directives: render.NewSet(),
		compositor: compositor,
		log:        slog.Default(),
		slot:       newSlot(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Map) Grid() *hexgrid.Grid            { return m.grid }
func (m *Map) Directives() *render.Set        { return m.directives }
func (m *Map) Compositor() *render.Compositor { return m.compositor }

// CellAt returns the cell under pixel (x, y), or nil when the point is off
// the canvas or between cells.
func (m *Map) CellAt(x, y int) *hexgrid.Cell {
	if x < 0 || y < 0 || x >= m.compositor.Width || y >= m.compositor.Height {
		return nil
	}
	return m.grid.CellAt(x, y)
}

// Selected lists the cells whose selection flag is set, row-major.
func (m *Map) Selected() []*hexgrid.Cell {
	var out []*hexgrid.Cell
	m.grid.Each(func(c *hexgrid.Cell) bool {
		if c.Selected() {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Publish renders the current state, drops one-shot directives and makes
// the result the latest frame. Concurrent calls are serialised; Publish
// never waits on readers.
func (m *Map) Publish() *Frame {
	m.publishMu.Lock()
	defer m.publishMu.Unlock()

	start := time.Now()
	ds := m.directives.Snapshot()
	img := m.compositor.Render(m.grid, ds)
	// Only one-shots that made it into this frame are purged; any added
	// while rendering wait for the next publish.
	purged := m.directives.RemoveAll(oneShots(ds)...)

	m.seq++
	f := &Frame{Seq: m.seq, Image: img, Rendered: time.Now()}
	m.slot.store(f)

	m.log.Debug("frame published",
		"seq", f.Seq,
		"directives", len(ds),
		"purged", purged,
		"size", humanize.Bytes(uint64(len(img.Pix))),
		"took", time.Since(start),
	)
	return f
}

// Latest returns the newest frame, or nil before the first Publish.
func (m *Map) Latest() *Frame { return m.slot.load() }

// Updates is signalled after each Publish. Signals coalesce: one pending
// notification may stand for several frames.
func (m *Map) Updates() <-chan struct{} { return m.slot.notify }

func oneShots(ds []render.Directive) []render.Directive {
	var out []render.Directive
	for _, d := range ds {
		if d.DestroyAfter {
			out = append(out, d)
		}
	}
	return out
}

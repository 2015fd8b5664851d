// Command hexsnap renders the map to a PNG without opening a window,
// optionally with a cell selected the same way a click would.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/BaronVasDeferens/HexDrag/internal/config"
	"github.com/BaronVasDeferens/HexDrag/internal/game"
	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/hexmap"
	"github.com/BaronVasDeferens/HexDrag/internal/input"
	"github.com/BaronVasDeferens/HexDrag/internal/render"
)

func main() {
	var configPath, out, sel string
	flag.StringVar(&configPath, "config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath()+")")
	flag.StringVar(&out, "o", "hexmap.png", "output PNG path")
	flag.StringVar(&sel, "select", "", "cell to select before rendering, as row,col")
	flag.Parse()

	if err := run(configPath, out, sel); err != nil {
		fmt.Fprintf(os.Stderr, "hexsnap: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, out, sel string) error {
	cfg, _, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	lvl, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	grid := hexgrid.New(cfg.Grid.Rows, cfg.Grid.Columns, hexgrid.NewLayout(cfg.Grid.HexSize))
	comp := render.NewCompositor(cfg.Window.Width, cfg.Window.Height)
	comp.Background = cfg.Render.Background.NRGBA()
	comp.GridColor = cfg.Render.GridColor.NRGBA()
	comp.GridWidth = cfg.Render.GridWidth
	m := hexmap.New(grid, comp, hexmap.WithLogger(logger))

	if sel != "" {
		var row, col int
		if _, err := fmt.Sscanf(sel, "%d,%d", &row, &col); err != nil {
			return fmt.Errorf("bad -select %q: %w", sel, err)
		}
		cell, ok := grid.Lookup(row, col)
		if !ok {
			return fmt.Errorf("cell %d,%d is outside the %dx%d grid", row, col, grid.Rows(), grid.Cols())
		}
		ctrl := game.NewController(m, game.Options{
			Radius: cfg.Highlight.Radius,
			Palette: game.Palette{
				Selected:   cfg.Highlight.Selected.NRGBA(),
				Highlight:  cfg.Highlight.Neighbor.NRGBA(),
				Hover:      cfg.Highlight.Hover.NRGBA(),
				HoverWidth: cfg.Highlight.HoverWidth,
			},
			Logger: logger,
		})
		at := cell.Polygon().Center()
		if !ctrl.Handle(input.Event{Type: input.PrimaryDown, Point: at}) {
			return fmt.Errorf("cell %d,%d is not on the %dx%d canvas", row, col, comp.Width, comp.Height)
		}
	}

	f := m.Latest()
	if f == nil {
		f = m.Publish()
	}

	size, err := writeSnapshot(out, f)
	if err != nil {
		return err
	}
	logger.Info("snapshot written", "path", out, "size", humanize.Bytes(uint64(size)))
	return nil
}

// writeSnapshot encodes f to path and returns the file size. A failed
// close is reported, since the data may not have reached the disk.
func writeSnapshot(path string, f *hexmap.Frame) (size int64, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	if err := f.WritePNG(file); err != nil {
		return 0, fmt.Errorf("failed to encode PNG: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat output file: %w", err)
	}
	return info.Size(), nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/BaronVasDeferens/HexDrag/internal/config"
	"github.com/BaronVasDeferens/HexDrag/internal/display"
	"github.com/BaronVasDeferens/HexDrag/internal/game"
	"github.com/BaronVasDeferens/HexDrag/internal/hexgrid"
	"github.com/BaronVasDeferens/HexDrag/internal/hexmap"
	"github.com/BaronVasDeferens/HexDrag/internal/input"
	"github.com/BaronVasDeferens/HexDrag/internal/render"
)

func main() {
	var configPath string
	var debug bool
	flag.StringVar(&configPath, "config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath()+")")
	flag.BoolVar(&debug, "debug", false, "log every published frame")
	flag.Parse()

	cfg, used, err := config.Resolve(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hexdrag: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log, debug)
	slog.SetDefault(logger)
	if used == "" {
		logger.Info("no config file found, using defaults")
	} else {
		logger.Info("configuration loaded", "path", used)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("hexdrag stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("hexdrag stopped")
}

func newLogger(lc config.LogConfig, debug bool) *slog.Logger {
	lvl, _ := lc.SlogLevel()
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grid := hexgrid.New(cfg.Grid.Rows, cfg.Grid.Columns, hexgrid.NewLayout(cfg.Grid.HexSize))
	if b := grid.Bounds(); b.Max.X > cfg.Window.Width || b.Max.Y > cfg.Window.Height {
		logger.Warn("grid extends past the window",
			"grid", b.Max, "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))
	}

	comp := render.NewCompositor(cfg.Window.Width, cfg.Window.Height)
	comp.Background = cfg.Render.Background.NRGBA()
	comp.GridColor = cfg.Render.GridColor.NRGBA()
	comp.GridWidth = cfg.Render.GridWidth

	m := hexmap.New(grid, comp, hexmap.WithLogger(logger))
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

	bus := input.NewBus()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctrl.Run(gctx, input.Stream(gctx.Done(), bus.C()))
	})

	m.Publish()
	logger.Info("map ready",
		"rows", grid.Rows(), "columns", grid.Cols(), "hex_size", cfg.Grid.HexSize, "radius", cfg.Highlight.Radius)

	win := display.New(m, bus, display.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Done:   gctx.Done(),
		Logger: logger,
	})
	runErr := win.Run()

	// Stop accepting input; the controller finishes its current event and
	// returns once the stream drains.
	bus.Close()
	stop()
	if err := g.Wait(); err != nil {
		return err
	}
	return runErr
}

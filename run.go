package main

import (
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ovh/ttygraph/graph"
	"github.com/ovh/ttygraph/input"
	"github.com/ovh/ttygraph/render"
	"github.com/ovh/ttygraph/term"
)

// axisMargin is the screen width consumed by the vertical axis and its
// left padding; everything to the right of it is plot columns.
const axisMargin = 4

type cycle struct {
	obs []input.Observation
	err error
}

// run owns the read, transform, render loop. The terminal is acquired
// once and released by defer on every exit path, signal-driven exits
// included.
func run(cfg config) error {
	if err := initLogging(cfg); err != nil {
		return err
	}

	screen, err := term.Open(cfg.palette)
	if err != nil {
		return err
	}
	defer screen.Close()

	_, cols := screen.Size()
	registry := graph.NewRegistry(cols - axisMargin)
	registry.Bars = cfg.bars
	setupSeries(registry, cfg)

	raster := &render.Rasterizer{Grid: screen, ErrHigh: cfg.errHigh, ErrLow: cfg.errLow}
	screen.Clear()
	raster.DrawWaiting()
	screen.Flush()

	// the reader goroutine only blocks on stdin; everything else runs
	// in this goroutine
	cycles := make(chan cycle)
	go func() {
		reader := input.NewReader(os.Stdin, cfg.mode)
		for {
			obs, err := reader.Next()
			cycles <- cycle{obs: obs, err: err}
			if err != nil {
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	// single-slot mailbox: the signal only flags the resize, all the
	// work happens synchronously at the top of the loop
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	last := time.Now()
	for {
		select {
		case <-quit:
			log.Debug("interrupted")
			return nil

		case <-winch:
			screen.Sync()
			_, cols := screen.Size()
			registry.Resize(cols - axisMargin)
			log.WithField("cols", cols).Debug("terminal resized")

		case c := <-cycles:
			if c.err == io.EOF {
				log.Debug("end of input")
				return nil
			}
			if c.err != nil {
				return c.err
			}
			now := time.Now()
			interval := math.Round(now.Sub(last).Seconds())
			if interval < 1 {
				interval = 1
			}
			last = now

			_, cols := screen.Size()
			registry.Resize(cols - axisMargin)
			applyCycle(registry, c.obs, cfg, interval)
			scale := graph.Resolve(registry.Buffers(), cfg.bounds)
			drawFrame(screen, raster, registry, cfg, scale, interval, now)
			log.WithFields(log.Fields{
				"series": registry.Len(),
				"min":    scale.Min,
				"max":    scale.Max,
			}).Debug("cycle rendered")
		}
	}
}

// setupSeries pre-creates the fixed series of the single and two-value
// modes and applies the configured glyphs. Key/value series appear
// lazily and keep their name's first character.
func setupSeries(registry *graph.Registry, cfg config) {
	switch cfg.mode {
	case input.ModeSingle:
		b := registry.Ensure("1")
		if len(cfg.glyphs) > 0 {
			b.Glyph = cfg.glyphs[0]
		}
	case input.ModeTwo:
		b1 := registry.Ensure("1")
		b2 := registry.Ensure("2")
		if len(cfg.glyphs) > 0 {
			b1.Glyph = cfg.glyphs[0]
		}
		// the second series defaults to a reverse-video block so two
		// unlabeled plots stay distinguishable
		b2.Glyph = render.BlockGlyph
		if len(cfg.glyphs) > 1 {
			b2.Glyph = cfg.glyphs[1]
		}
	}
}

// applyCycle pushes one cycle of observations through the registry:
// routing, lockstep sentinels for silent series, the optional rate
// transform, and the statistics update.
func applyCycle(registry *graph.Registry, obs []input.Observation, cfg config, interval float64) {
	for _, o := range obs {
		registry.Observe(o.Name, o.Value)
	}
	if cfg.mode == input.ModeKeyValue {
		registry.MarkAbsent()
	}
	for _, b := range registry.Buffers() {
		if cfg.rate {
			b.ApplyRate(interval)
		}
		b.Update()
	}
}

func drawFrame(screen *term.Screen, raster *render.Rasterizer, registry *graph.Registry, cfg config, scale graph.Scale, interval float64, now time.Time) {
	screen.Clear()
	defer screen.Flush()

	rows, cols := screen.Size()
	buffers := registry.Buffers()
	layout, err := render.NewLayout(rows, cols, len(buffers))
	if err != nil {
		raster.DrawTooSmall(err)
		return
	}

	attrOf := func(i int) render.Attr {
		if len(cfg.palette) == 0 {
			return render.Attr{Color: -1}
		}
		return render.Attr{Color: i}
	}

	raster.DrawTitle(layout, cfg.title)
	raster.DrawAxes(layout, scale, cfg.unit)
	for i, b := range buffers {
		raster.DrawSeries(b, layout, scale, cfg.bounds, attrOf(i))
	}
	rateInterval := 0.0
	if cfg.rate {
		rateInterval = interval
	}
	raster.DrawDetails(buffers, layout, cfg.unit, rateInterval, attrOf)
	raster.DrawTimestamp(layout, now)
}

// initLogging configures logrus. The plot owns the terminal, so logs
// are discarded unless a file is configured.
func initLogging(cfg config) error {
	log.SetOutput(io.Discard)
	if cfg.logFile == "" {
		return nil
	}
	f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "cannot open log file %s", cfg.logFile)
	}
	log.SetOutput(f)
	log.SetLevel(log.InfoLevel)
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

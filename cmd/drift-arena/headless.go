package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/drift-arena/config"
	"github.com/lixenwraith/drift-arena/log"
	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/trace"
	"github.com/lixenwraith/drift-arena/vmath"
)

// runHeadless steps a fixed viewport for cfg.Run.Ticks ticks and returns the summary line
func runHeadless(ctx context.Context, cfg config.Config, logger *log.Logger) (string, error) {
	vp := sim.FixedViewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	s, err := sim.New(cfg.Sim(), vp)
	if err != nil {
		return "", err
	}

	var stats sim.Stats
	s.OnStep(stats.Observe)
	s.OnStep(logEvents(logger))

	rec, closeTrace, err := openTrace(cfg, vmath.Vec2F{X: vp.Width, Y: vp.Height})
	if err != nil {
		return "", err
	}
	if rec != nil {
		s.OnStep(rec.Observe)
	}

	dt := cfg.TickDelta()
	for i := 0; i < cfg.Run.Ticks; i++ {
		if i%cfg.Run.TickRate == 0 && ctx.Err() != nil {
			break
		}
		s.Step(dt)
	}

	if err := closeTrace(); err != nil {
		return "", err
	}
	logger.Info("headless run complete",
		slog.Uint64("ticks", stats.Ticks),
		slog.Int("reflections_x", stats.ReflectionsX),
		slog.Int("reflections_y", stats.ReflectionsY),
		slog.Int("contacts", stats.Contacts))
	return formatSummary(stats), nil
}

// openTrace creates the trace file named by cfg.Run.TracePath
// With no path it returns a nil recorder and a no-op closer
func openTrace(cfg config.Config, viewport vmath.Vec2F) (*trace.Recorder, func() error, error) {
	if cfg.Run.TracePath == "" {
		return nil, func() error { return nil }, nil
	}

	f, err := os.Create(cfg.Run.TracePath)
	if err != nil {
		return nil, nil, fmt.Errorf("create trace: %w", err)
	}
	w, err := trace.NewWriter(f, trace.Header{
		Radius:   cfg.Arena.Radius,
		Faces:    cfg.Arena.Faces,
		TickRate: cfg.Run.TickRate,
		Viewport: viewport,
	})
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	rec := trace.NewRecorder(w)
	closer := func() error {
		return errors.Join(rec.Err(), w.Close(), f.Close())
	}
	return rec, closer, nil
}

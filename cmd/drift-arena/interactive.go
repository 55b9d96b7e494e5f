package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/drift-arena/audio"
	"github.com/lixenwraith/drift-arena/config"
	"github.com/lixenwraith/drift-arena/constants"
	"github.com/lixenwraith/drift-arena/core"
	"github.com/lixenwraith/drift-arena/log"
	"github.com/lixenwraith/drift-arena/render"
	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/vmath"
)

// runInteractive drives the simulation on an initialized screen until the user quits or ctx ends
// The screen is finalized before returning; sounds may be nil
func runInteractive(ctx context.Context, cfg config.Config, screen tcell.Screen, sounds *audio.SoundManager, logger *log.Logger) (sim.Stats, error) {
	var stats sim.Stats

	vp := render.ScreenViewport{Screen: screen, CellWidth: cfg.Viewport.CellWidth, CellHeight: cfg.Viewport.CellHeight}
	s, err := sim.New(cfg.Sim(), vp)
	if err != nil {
		screen.Fini()
		return stats, err
	}
	s.OnStep(stats.Observe)
	s.OnStep(logEvents(logger))
	if sounds != nil {
		s.OnStep(sounds.Observe)
	}

	w, h := vp.Size()
	rec, closeTrace, err := openTrace(cfg, vmath.Vec2F{X: w, Y: h})
	if err != nil {
		screen.Fini()
		return stats, err
	}
	if rec != nil {
		s.OnStep(rec.Observe)
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	styles := render.NewStyles(render.ParseColorMode(cfg.Run.ColorMode), screen)
	status := render.RegisterDefaults(orchestrator, styles)

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	// Input poller: PollEvent returns nil once the screen is finalized
	g.Go(core.Guard(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	}))

	g.Go(core.Guard(func() error {
		defer close(done)
		defer screen.Fini()

		step := time.Second / time.Duration(cfg.Run.TickRate)
		dt := cfg.TickDelta()
		ticker := time.NewTicker(step)
		defer ticker.Stop()

		paused := false
		last := time.Now()
		var acc time.Duration

		draw := func() {
			orchestrator.RenderFrame(render.NewRenderContext(s, stats, paused, cfg.Viewport.CellWidth, cfg.Viewport.CellHeight))
		}
		draw()

		for {
			select {
			case <-gctx.Done():
				return nil

			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch {
					case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
						return nil
					case ev.Key() == tcell.KeyRune:
						switch ev.Rune() {
						case 'q':
							return nil
						case ' ':
							paused = !paused
							logger.Debug("pause toggled", slog.Bool("paused", paused))
						case 'r':
							if err := s.Reset(); err != nil {
								return err
							}
							logger.Info("arena reset", slog.Uint64("tick", s.Tick()))
						case 's':
							status.Toggle()
						}
					}
				case *tcell.EventResize:
					orchestrator.Resize()
					cols, rows := screen.Size()
					logger.Debug("terminal resized", slog.Int("cols", cols), slog.Int("rows", rows))
				}
				draw()

			case now := <-ticker.C:
				elapsed := now.Sub(last)
				last = now
				if paused {
					continue
				}
				acc += min(elapsed, constants.MaxFrameDelta)
				for acc >= step {
					s.Step(dt)
					acc -= step
				}
				draw()
			}
		}
	}))

	err = g.Wait()
	if cerr := closeTrace(); err == nil {
		err = cerr
	}
	logger.Info("interactive run complete", slog.Uint64("ticks", stats.Ticks))
	return stats, err
}

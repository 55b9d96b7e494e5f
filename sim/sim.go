package sim

import (
	"fmt"

	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/physics"
	"github.com/lixenwraith/drift-arena/vmath"
)

// Viewport reports the visible world extent, queried once per tick
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a constant-size viewport for headless runs and tests
type FixedViewport struct {
	Width, Height float64
}

func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// Config groups everything needed to assemble a simulation
type Config struct {
	Arena       arena.Config
	Physics     physics.Config
	Ball        physics.BallConfig
	ContainBall bool // reflect the ball off the viewport edges as well as the ring
}

// StepResult is published to listeners after every step
type StepResult struct {
	Tick     uint64
	DT       float64
	Viewport vmath.Vec2F // width, height used for this step
	Drift    arena.DriftResult
	Ball     physics.BallState
	Contacts int
}

// Listener receives step results synchronously, in registration order
type Listener func(StepResult)

// Simulation owns the arena and the physics world. The arena only ever sees the viewport and
// elapsed time; the ball is owned by the physics world and read here for publishing only
type Simulation struct {
	cfg       Config
	arena     *arena.Arena
	world     *physics.World
	viewport  Viewport
	listeners []Listener
	tick      uint64
}

// New assembles the world, the arena (registering every segment with the world) and the ball
func New(cfg Config, vp Viewport) (*Simulation, error) {
	if vp == nil {
		return nil, fmt.Errorf("sim: nil viewport")
	}
	world := physics.NewWorld(cfg.Physics)

	a, err := arena.New(cfg.Arena, world)
	if err != nil {
		return nil, fmt.Errorf("sim: build arena: %w", err)
	}
	if err := world.AddBall(cfg.Ball); err != nil {
		return nil, fmt.Errorf("sim: add ball: %w", err)
	}

	return &Simulation{
		cfg:      cfg,
		arena:    a,
		world:    world,
		viewport: vp,
	}, nil
}

// OnStep registers a listener
func (s *Simulation) OnStep(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Step runs one tick: viewport query, arena drift, physics step, contact drain, publish
func (s *Simulation) Step(dt float64) StepResult {
	w, h := s.viewport.Size()

	drift := s.arena.Tick(arena.TickInput{DeltaTime: dt, ViewportWidth: w, ViewportHeight: h})

	s.world.Step(dt)
	if s.cfg.ContainBall {
		s.world.ContainBall(w, h)
	}

	ball, _ := s.world.Ball()
	s.tick++

	res := StepResult{
		Tick:     s.tick,
		DT:       dt,
		Viewport: vmath.Vec2F{X: w, Y: h},
		Drift:    drift,
		Ball:     ball,
		Contacts: s.world.DrainContacts(),
	}
	for _, l := range s.listeners {
		l(res)
	}
	return res
}

// Reset restores the arena and the ball to their initial states; the tick counter keeps running
func (s *Simulation) Reset() error {
	s.arena.Reset()
	return s.world.ResetBall()
}

// Tick returns the number of steps taken
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Arena returns a snapshot of the arena transforms
func (s *Simulation) Arena() arena.Snapshot {
	return s.arena.Snapshot()
}

// Ball returns the current ball state
func (s *Simulation) Ball() physics.BallState {
	b, _ := s.world.Ball()
	return b
}

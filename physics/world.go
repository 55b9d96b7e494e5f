package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/drift-arena/arena"
	"github.com/lixenwraith/drift-arena/vmath"
)

// Collision types for the contact handler
const (
	CollisionBoundary cp.CollisionType = iota + 1
	CollisionBall
)

// MaxSubstep bounds a single space step; longer frames are split
const MaxSubstep = 1.0 / 120.0

var (
	ErrDuplicateSegment = errors.New("physics: segment already registered")
	ErrBallExists       = errors.New("physics: ball already added")
	ErrNoBall           = errors.New("physics: no ball in world")
	ErrInvalidBall      = errors.New("physics: invalid ball parameters")
)

// Config tunes the rigid-body space
type Config struct {
	Gravity    vmath.Vec2F // world units per second squared
	Iterations int
}

// World is the rigid-body collaborator: boundary segments are fixed bodies that only move when
// the arena translates them, the ball is the single dynamic body
// Implements arena.Registrar
type World struct {
	space    *cp.Space
	segments map[int]*cp.Body
	ball     *cp.Body
	ballCfg  BallConfig

	contacts int
}

var _ arena.Registrar = (*World)(nil)

// NewWorld creates an empty space
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}
	space.SetGravity(toCP(cfg.Gravity))

	w := &World{
		space:    space,
		segments: make(map[int]*cp.Body),
	}

	handler := space.NewCollisionHandler(CollisionBall, CollisionBoundary)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		w.contacts++
		return true
	}
	return w
}

// RegisterSegment adds a fixed box body matching the chord
func (w *World) RegisterSegment(index int, seg arena.BoundarySegment) error {
	if _, ok := w.segments[index]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateSegment, index)
	}

	body := cp.NewStaticBody()
	body.SetPosition(toCP(seg.Position))
	body.SetAngle(seg.Angle)
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewBox(body, 2*seg.HalfLength, seg.Thickness, 0))
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(CollisionBoundary)

	w.segments[index] = body
	return nil
}

// TranslateSegment moves a fixed segment body directly, bypassing the solver
// SetPosition on a static body updates its shapes' transforms, so later steps collide against
// the moved chord. Unknown indices are ignored
func (w *World) TranslateSegment(index int, d vmath.Vec2F) {
	body, ok := w.segments[index]
	if !ok {
		return
	}
	body.SetPosition(body.Position().Add(toCP(d)))
}

// Step advances the space by dt seconds in substeps of at most MaxSubstep
// Non-positive or non-finite dt is a no-op
func (w *World) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	steps := int(math.Ceil(dt / MaxSubstep))
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		w.space.Step(h)
	}
}

// DrainContacts returns the number of ball/boundary contacts begun since the last call
func (w *World) DrainContacts() int {
	n := w.contacts
	w.contacts = 0
	return n
}

func toCP(v vmath.Vec2F) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) vmath.Vec2F {
	return vmath.Vec2F{X: v.X, Y: v.Y}
}

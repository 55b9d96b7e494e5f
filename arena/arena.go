package arena

import (
	"fmt"

	"github.com/lixenwraith/drift-arena/vmath"
)

// Registrar is the collision collaborator that mirrors boundary segments as fixed bodies
// Segments are registered once, in index order, and afterwards only translated
type Registrar interface {
	RegisterSegment(index int, seg BoundarySegment) error
	TranslateSegment(index int, d vmath.Vec2F)
}

// Config describes the arena at startup
type Config struct {
	Radius    float64
	Faces     int
	Thickness float64
	Velocity  vmath.Vec2F // initial drift velocity, world units per second
	Position  vmath.Vec2F // initial center, usually the origin
}

// ArenaCenter is the drift state of the arena plus the visual core marker position
type ArenaCenter struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F
}

// Arena owns the ring of boundary segments and its drifting center
// Not safe for concurrent use; one goroutine owns it for the whole run
type Arena struct {
	Radius   float64
	Center   ArenaCenter
	Segments []BoundarySegment

	registrar Registrar
	initial   ArenaCenter
}

// New builds the ring around cfg.Position and registers every segment with reg
// reg may be nil when no collision mirror is needed
func New(cfg Config, reg Registrar) (*Arena, error) {
	segments, err := Build(cfg.Radius, cfg.Faces, cfg.Thickness)
	if err != nil {
		return nil, err
	}
	if !vmath.V2FIsFinite(cfg.Position) || !vmath.V2FIsFinite(cfg.Velocity) {
		return nil, fmt.Errorf("arena: non-finite initial state: position %v velocity %v", cfg.Position, cfg.Velocity)
	}

	for i := range segments {
		segments[i] = segments[i].Translated(cfg.Position)
	}

	a := &Arena{
		Radius:    cfg.Radius,
		Center:    ArenaCenter{Position: cfg.Position, Velocity: cfg.Velocity},
		Segments:  segments,
		registrar: reg,
	}
	a.initial = a.Center

	if reg != nil {
		for i, seg := range segments {
			if err := reg.RegisterSegment(i, seg); err != nil {
				return nil, fmt.Errorf("arena: register segment %d: %w", i, err)
			}
		}
	}
	return a, nil
}

// Tick runs one drift step and moves the center and every segment by the same displacement
func (a *Arena) Tick(in TickInput) DriftResult {
	res := Drift(DriftState{Position: a.Center.Position, Velocity: a.Center.Velocity}, in, a.Radius)
	a.Center.Velocity = res.State.Velocity
	a.translate(res.Displacement)
	return res
}

// Reset returns the center to its initial state and carries the ring with it
// Returns the displacement applied
func (a *Arena) Reset() vmath.Vec2F {
	d := vmath.V2FSub(a.initial.Position, a.Center.Position)
	a.translate(d)
	a.Center = a.initial
	return d
}

func (a *Arena) translate(d vmath.Vec2F) {
	a.Center.Position = vmath.V2FAdd(a.Center.Position, d)
	if d == (vmath.Vec2F{}) {
		return
	}
	for i := range a.Segments {
		a.Segments[i] = a.Segments[i].Translated(d)
		if a.registrar != nil {
			a.registrar.TranslateSegment(i, d)
		}
	}
}

// Snapshot is a read-only copy of the arena transforms for renderers and recorders
type Snapshot struct {
	Radius   float64
	Center   ArenaCenter
	Segments []BoundarySegment
}

// Snapshot copies the current transforms
func (a *Arena) Snapshot() Snapshot {
	segs := make([]BoundarySegment, len(a.Segments))
	copy(segs, a.Segments)
	return Snapshot{Radius: a.Radius, Center: a.Center, Segments: segs}
}

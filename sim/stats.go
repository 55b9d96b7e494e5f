package sim

import (
	"github.com/lixenwraith/drift-arena/vmath"
)

// Stats accumulates run totals from step results
type Stats struct {
	Ticks        uint64
	Elapsed      float64
	ReflectionsX int
	ReflectionsY int
	Contacts     int
	LastCenter   vmath.Vec2F
	LastVelocity vmath.Vec2F
	LastBall     vmath.Vec2F
}

// Observe folds one step into the totals; usable directly as a Listener
func (s *Stats) Observe(r StepResult) {
	s.Ticks = r.Tick
	s.Elapsed += r.DT
	if r.Drift.ReflectedX {
		s.ReflectionsX++
	}
	if r.Drift.ReflectedY {
		s.ReflectionsY++
	}
	s.Contacts += r.Contacts
	s.LastCenter = r.Drift.State.Position
	s.LastVelocity = r.Drift.State.Velocity
	s.LastBall = r.Ball.Position
}

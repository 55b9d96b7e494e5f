package arena

import (
	"github.com/lixenwraith/drift-arena/vmath"
)

// BoundarySegment is one straight chord of the polygonal arena wall
// Shape (HalfLength, Thickness) is fixed at build time; Position changes only through
// the arena's uniform translation
type BoundarySegment struct {
	Position   vmath.Vec2F
	Angle      float64 // radians, direction of the chord
	HalfLength float64
	Thickness  float64
}

// Endpoints returns the chord endpoints, start first in counter-clockwise ring order
func (s BoundarySegment) Endpoints() (a, b vmath.Vec2F) {
	half := vmath.V2FRotate(vmath.Vec2F{X: s.HalfLength}, s.Angle)
	return vmath.V2FSub(s.Position, half), vmath.V2FAdd(s.Position, half)
}

// Translated returns a copy moved by d
func (s BoundarySegment) Translated(d vmath.Vec2F) BoundarySegment {
	s.Position = vmath.V2FAdd(s.Position, d)
	return s
}

package arena

import (
	"math"

	"github.com/lixenwraith/drift-arena/vmath"
)

// TickInput carries the external per-tick inputs, sampled once before the drift step
type TickInput struct {
	DeltaTime      float64 // seconds since the previous tick
	ViewportWidth  float64
	ViewportHeight float64
}

// DriftState is the controller-owned kinematic state of the arena center
type DriftState struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F
}

// DriftResult is the outcome of one drift step
type DriftResult struct {
	State        DriftState
	Displacement vmath.Vec2F // applied to the center and to every segment
	ReflectedX   bool
	ReflectedY   bool
}

// Reflected reports whether any axis reflected this step
func (r DriftResult) Reflected() bool {
	return r.ReflectedX || r.ReflectedY
}

// sanitizeDelta maps NaN/Inf to zero; negative and zero deltas pass through
func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	return dt
}

// exceedsExtent reports whether a disc of radius centered at p crosses ±extent/2
func exceedsExtent(p, radius, extent float64) bool {
	half := extent / 2
	return p+radius >= half || p-radius <= -half
}

// Drift advances the arena center by one tick
// Reflection is decided on the look-ahead position: an axis whose projected position plus
// radius would reach the viewport half-extent has its velocity negated, and the displacement
// is recomputed from the post-reflection velocity. Both axes are checked independently
func Drift(s DriftState, in TickInput, radius float64) DriftResult {
	dt := sanitizeDelta(in.DeltaTime)

	next := vmath.V2FAdd(s.Position, vmath.V2FScale(s.Velocity, dt))

	res := DriftResult{State: s}
	if exceedsExtent(next.X, radius, in.ViewportWidth) {
		res.State.Velocity.X = -res.State.Velocity.X
		res.ReflectedX = true
	}
	if exceedsExtent(next.Y, radius, in.ViewportHeight) {
		res.State.Velocity.Y = -res.State.Velocity.Y
		res.ReflectedY = true
	}

	res.Displacement = vmath.V2FScale(res.State.Velocity, dt)
	res.State.Position = vmath.V2FAdd(s.Position, res.Displacement)
	return res
}

package physics

import (
	"github.com/jakecoffman/cp"
)

// reflectAxis handles a single-axis boundary collision for a disc, returns true if reflection occurred
// Clamps the position back inside [min+radius, max-radius] and sends the velocity inward
func reflectAxis(pos, vel *float64, radius, min, max float64) bool {
	lo, hi := min+radius, max-radius
	if lo > hi {
		// Boundary narrower than the disc: pin to the middle
		*pos = (min + max) / 2
		*vel = 0
		return true
	}
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel
		}
		return true
	}
	return false
}

// ContainBall keeps the ball inside a width×height box centered on the origin
// Elastic: the ball keeps its speed, only the offending component flips
func (w *World) ContainBall(width, height float64) bool {
	if w.ball == nil {
		return false
	}
	p := w.ball.Position()
	v := w.ball.Velocity()
	r := w.ballCfg.Radius

	rx := reflectAxis(&p.X, &v.X, r, -width/2, width/2)
	ry := reflectAxis(&p.Y, &v.Y, r, -height/2, height/2)
	if !rx && !ry {
		return false
	}
	w.ball.SetPosition(p)
	w.ball.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
	return true
}

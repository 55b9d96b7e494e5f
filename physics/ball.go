package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/drift-arena/vmath"
)

// BallConfig describes the engine-owned dynamic ball
type BallConfig struct {
	Radius      float64
	Mass        float64
	Restitution float64
	Start       vmath.Vec2F
}

// BallState is a read-only view of the ball
type BallState struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F
	Radius   float64
}

// AddBall creates the single dynamic ball
func (w *World) AddBall(cfg BallConfig) error {
	if w.ball != nil {
		return ErrBallExists
	}
	if !(cfg.Radius > 0) || !(cfg.Mass > 0) || cfg.Restitution < 0 || math.IsNaN(cfg.Restitution) {
		return fmt.Errorf("%w: radius %v mass %v restitution %v", ErrInvalidBall, cfg.Radius, cfg.Mass, cfg.Restitution)
	}

	body := cp.NewBody(cfg.Mass, cp.MomentForCircle(cfg.Mass, 0, cfg.Radius, cp.Vector{}))
	body.SetPosition(toCP(cfg.Start))
	w.space.AddBody(body)

	shape := w.space.AddShape(cp.NewCircle(body, cfg.Radius, cp.Vector{}))
	shape.SetElasticity(cfg.Restitution)
	shape.SetFriction(0)
	shape.SetCollisionType(CollisionBall)

	w.ball = body
	w.ballCfg = cfg
	return nil
}

// Ball returns the current ball state; ok is false before AddBall
func (w *World) Ball() (BallState, bool) {
	if w.ball == nil {
		return BallState{}, false
	}
	return BallState{
		Position: fromCP(w.ball.Position()),
		Velocity: fromCP(w.ball.Velocity()),
		Radius:   w.ballCfg.Radius,
	}, true
}

// ResetBall puts the ball back at its start position at rest
func (w *World) ResetBall() error {
	if w.ball == nil {
		return ErrNoBall
	}
	w.ball.SetPosition(toCP(w.ballCfg.Start))
	w.ball.SetVelocityVector(cp.Vector{})
	w.ball.SetAngularVelocity(0)
	return nil
}

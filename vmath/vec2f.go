package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world units
// World space is y-up with the origin at the viewport center
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FDist returns the Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FFromAngle returns the unit vector pointing at angle radians (counter-clockwise from +X)
func V2FFromAngle(angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{cos, sin}
}

// V2FPolar returns the point at distance r and angle radians from the origin
func V2FPolar(r, angle float64) Vec2F {
	return V2FScale(V2FFromAngle(angle), r)
}

// V2FRotate rotates v counter-clockwise by angle radians
func V2FRotate(v Vec2F, angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2FIsFinite reports whether neither component is NaN or ±Inf
func V2FIsFinite(v Vec2F) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// V2FNear reports whether a and b differ by at most eps on both axes
func V2FNear(a, b Vec2F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

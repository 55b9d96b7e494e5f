package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestV2FArithmetic(t *testing.T) {
	a := Vec2F{3, 4}
	b := Vec2F{-1, 2}

	if got := V2FAdd(a, b); got != (Vec2F{2, 6}) {
		t.Errorf("V2FAdd = %v, want {2 6}", got)
	}
	if got := V2FSub(a, b); got != (Vec2F{4, 2}) {
		t.Errorf("V2FSub = %v, want {4 2}", got)
	}
	if got := V2FScale(a, -0.5); got != (Vec2F{-1.5, -2}) {
		t.Errorf("V2FScale = %v, want {-1.5 -2}", got)
	}
	if got := V2FMag(a); math.Abs(got-5) > eps {
		t.Errorf("V2FMag = %v, want 5", got)
	}
	if got := V2FMagSq(a); got != 25 {
		t.Errorf("V2FMagSq = %v, want 25", got)
	}
	if got := V2FDist(a, b); math.Abs(got-math.Sqrt(20)) > eps {
		t.Errorf("V2FDist = %v, want sqrt(20)", got)
	}
}

func TestV2FRotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2F
		angle float64
		want  Vec2F
	}{
		{"quarter turn", Vec2F{1, 0}, math.Pi / 2, Vec2F{0, 1}},
		{"half turn", Vec2F{1, 2}, math.Pi, Vec2F{-1, -2}},
		{"full turn", Vec2F{5, -3}, 2 * math.Pi, Vec2F{5, -3}},
		{"negative", Vec2F{0, 1}, -math.Pi / 2, Vec2F{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V2FRotate(tt.in, tt.angle); !V2FNear(got, tt.want, eps) {
				t.Errorf("V2FRotate(%v, %v) = %v, want %v", tt.in, tt.angle, got, tt.want)
			}
		})
	}
}

func TestV2FPolar(t *testing.T) {
	p := V2FPolar(2, math.Pi/3)
	if !V2FNear(p, Vec2F{1, math.Sqrt(3)}, eps) {
		t.Errorf("V2FPolar = %v", p)
	}
	if m := V2FMag(V2FFromAngle(1.234)); math.Abs(m-1) > eps {
		t.Errorf("V2FFromAngle magnitude = %v, want 1", m)
	}
}

func TestV2FIsFinite(t *testing.T) {
	if !V2FIsFinite(Vec2F{1, -1}) {
		t.Error("finite vector reported non-finite")
	}
	for _, v := range []Vec2F{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 0}} {
		if V2FIsFinite(v) {
			t.Errorf("V2FIsFinite(%v) = true", v)
		}
	}
}

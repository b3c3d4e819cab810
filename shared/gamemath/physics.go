package gamemath

import math2 "github.com/yohamta/donburi/features/math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyGravity accelerates vy downward (positive y) for dt seconds and caps the
// result at maxFall.
func ApplyGravity(vy, gravity, maxFall, dt float64) float64 {
	vy += gravity * dt
	if vy > maxFall {
		return maxFall
	}
	return vy
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

var negativeXDir = math2.NewVec2(-1, 1)

// MirrorX returns v with x negated when facingRight is false.
func MirrorX(v math2.Vec2, facingRight bool) math2.Vec2 {
	if facingRight {
		return v
	}
	return v.Mul(negativeXDir)
}

package gamemath

import "math"

// KnockbackFor orients a configured knockback vector away from the attacker.
// An attacker standing to the defender's right pushes left (x negated);
// otherwise the vector is used as-is.
func KnockbackFor(attackerX, defenderX, kbX, kbY float64) (float64, float64) {
	if attackerX > defenderX {
		return -kbX, kbY
	}
	return kbX, kbY
}

// StandoffTarget is the x an actor facing the opponent should hold so that it
// stays minDist away on its own side.
func StandoffTarget(opponentX, minDist float64, facingRight bool) float64 {
	if facingRight {
		return opponentX - minDist
	}
	return opponentX + minDist
}

// Approach returns the horizontal velocity that carries x toward target at
// speed. snap is true once x is within eps of target, or when a full step of dt
// would cross it; the caller then places the actor on target and stops.
func Approach(x, target, speed, dt, eps float64) (vx float64, snap bool) {
	d := target - x
	if math.Abs(d) <= eps || math.Abs(d) <= speed*dt {
		return 0, true
	}
	return Sign(d) * speed, false
}

// FacingFor keeps the current facing unless the opponent sits more than
// deadzone away on the other side.
func FacingFor(selfX, opponentX, deadzone float64, facingRight bool) bool {
	d := opponentX - selfX
	if d > deadzone {
		return true
	}
	if d < -deadzone {
		return false
	}
	return facingRight
}

package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInside keeps a size-wide span starting at pos within [0, limit].
func ClampInside(pos, size, limit float64) float64 {
	return Clamp(pos, 0, limit-size)
}

// Bounce advances pos by vel*dt inside [0, limit-size]. On contact with
// either wall the position is clamped and the velocity points away from
// that wall. bounced reports whether a wall was reached this step.
func Bounce(pos, vel, size, limit, dt float64) (newPos, newVel float64, bounced bool) {
	newPos = pos + vel*dt
	newVel = vel
	maxPos := limit - size
	switch {
	case newPos <= 0:
		newPos = 0
		newVel = math.Abs(vel)
		bounced = true
	case newPos >= maxPos:
		newPos = maxPos
		newVel = -math.Abs(vel)
		bounced = true
	}
	return newPos, newVel, bounced
}

// DiagonalDirection returns a unit vector at angle radians. ok is false when
// either component's magnitude is below minComponent, so callers can resample
// angles that would give near-axis-aligned motion.
func DiagonalDirection(angle, minComponent float64) (dx, dy float64, ok bool) {
	dx, dy = math.Cos(angle), math.Sin(angle)
	if math.Abs(dx) < minComponent || math.Abs(dy) < minComponent {
		return dx, dy, false
	}
	return dx, dy, true
}

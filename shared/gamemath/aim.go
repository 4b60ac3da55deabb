package gamemath

import "math"

// LaunchTime solves 0.5*g*t^2 + vy0*t - dy = 0 for the larger root, the time a
// body launched upward at vy0 takes to reach dy below its start on the way
// down. ok is false when the height is unreachable.
func LaunchTime(dy, vy0, gravity float64) (t float64, ok bool) {
	a := 0.5 * gravity
	b := vy0
	c := -dy
	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, false
	}
	t = (-b + math.Sqrt(disc)) / (2 * a)
	return t, t > 0
}

// LaunchVelocityX returns the horizontal speed that covers dx in the launch
// time, or fallback when no positive time exists.
func LaunchVelocityX(dx, dy, vy0, gravity, fallback float64) float64 {
	if t, ok := LaunchTime(dy, vy0, gravity); ok {
		return dx / t
	}
	return fallback
}

// CalculateHomingVelocity returns velocity components to home toward a target.
// ok is false when the source is already at the target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64, ok bool) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist == 0 {
		return 0, 0, false
	}
	return (dirX / dist) * speed, (dirY / dist) * speed, true
}

// ReflectVelocity points (vx, vy) at the target while keeping its magnitude.
// A body at rest is given minSpeed. With no usable direction the velocity is
// simply reversed.
func ReflectVelocity(x, y, vx, vy, targetX, targetY, minSpeed float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if speed == 0 {
		speed = minSpeed
	}
	if nvx, nvy, ok := CalculateHomingVelocity(x, y, targetX, targetY, speed); ok {
		return nvx, nvy
	}
	return -vx, -vy
}

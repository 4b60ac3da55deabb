package gamemath

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

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// SpeedModifiers are the statuses that scale horizontal movement.
type SpeedModifiers struct {
	SpeedBuff     bool
	Slowed        bool
	SpeedPlatform bool
	Raging        bool
}

// MoveSpeed scales base in the fixed order base -> buff/debuff -> platform -> rage.
func MoveSpeed(base float64, m SpeedModifiers, buffMult, slowDiv, platformMult, rageMult float64) float64 {
	speed := base
	if m.SpeedBuff {
		speed *= buffMult
	}
	if m.Slowed {
		speed /= slowDiv
	}
	if m.SpeedPlatform {
		speed *= platformMult
	}
	if m.Raging {
		speed *= rageMult
	}
	return speed
}

// Integrate applies one tick of gravity then moves the point by its velocity.
func Integrate(x, y, vx, vy, gravity float64) (nx, ny, nvy float64) {
	nvy = vy + gravity
	return x + vx, y + nvy, nvy
}

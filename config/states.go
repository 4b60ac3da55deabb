package config

// ActionState is the exclusive movement/action state of a combatant.
// Stunned is not stored here; it is derived from the stun timer and
// takes priority over whatever action state is recorded.
type ActionState int

const (
	Idle ActionState = iota
	Rolling
	Dashing
	Charging
	Stunned
)

func (s ActionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rolling:
		return "rolling"
	case Dashing:
		return "dashing"
	case Charging:
		return "charging"
	case Stunned:
		return "stunned"
	}
	return "unknown"
}

// DamageKind distinguishes environmental damage from attacks.
type DamageKind int

const (
	DamageNormal DamageKind = iota
	DamageHazard
)

// PlatformKind marks the solid floor apart from pass-through ledges.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformLedge
)

// Platform levels
const (
	LevelHazard = 1
	LevelJump   = 2
	LevelSlow   = 3
	LevelSpeed  = 4
)

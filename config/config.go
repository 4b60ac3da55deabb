package config

// ArenaConfig holds the stage dimensions and the nominal simulation rate.
type ArenaConfig struct {
	Width    float64
	Height   float64
	GroundY  float64 // Top of the ground platform; ballistic projectiles burst below this line
	TickRate int     // Ticks per second
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64
	BaseSpeed        float64
	JumpSpeed        float64 // Negative is up
	LandingTolerance float64 // Extra depth below a platform top that still counts as landing
	MoveDeadzone     float64 // Intent magnitude below which horizontal input is ignored

	// Multipliers, applied base -> buff/debuff -> platform -> rage
	JumpBuffMult      float64
	SpeedBuffMult     float64
	SlowDivisor       float64
	PlatformSpeedMult float64
	RageSpeedMult     float64

	// Drop-through
	DropFrames int
	DropNudge  float64

	// Charging drift, as a fraction of base speed
	ChargeDriftMult float64
}

// PlayerConfig contains combatant-wide values shared by every kit
type PlayerConfig struct {
	Width, Height float64

	StartingLives       int
	HitInvulnFrames     int
	RespawnInvulnFrames int

	// Indexed by player id - 1
	SpawnPoints   [2]Point
	RespawnPoints [2]Point
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	BaseDamage       float64
	AttackCooldown   int // Standardized across kits
	AttackAnimFrames int
	SwapCooldown     int
	GuardBlockChance float64
	NoCostAttackCap  int // Attack cooldown ceiling while the no-cost override is on
}

// HazardConfig drives the global ground hazard cycle.
type HazardConfig struct {
	Period          int
	ActiveFrames    int
	DamageInterval  int
	Damage          float64
	FramesPerSecond int // Match clock granularity
}

// PopupConfig controls floating combat text.
type PopupConfig struct {
	Life          int
	RisePerFrame  float64
	DebounceTicks int // Identical text is dropped inside this window
}

// Config holds general match configuration
type Config struct {
	Arena ArenaConfig
}

// Point is a fixed stage coordinate.
type Point struct {
	X, Y float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Combat CombatConfig
var Hazard HazardConfig
var Popup PopupConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Arena: ArenaConfig{
			Width:    1000,
			Height:   700,
			GroundY:  650,
			TickRate: 60,
		},
	}

	Physics = PhysicsConfig{
		Gravity:          0.8,
		BaseSpeed:        5,
		JumpSpeed:        -16,
		LandingTolerance: 10,
		MoveDeadzone:     0.05,

		JumpBuffMult:      1.5,
		SpeedBuffMult:     1.5,
		SlowDivisor:       2,
		PlatformSpeedMult: 2,
		RageSpeedMult:     2,

		DropFrames: 20,
		DropNudge:  2,

		ChargeDriftMult: 0.2,
	}

	Player = PlayerConfig{
		Width:  30,
		Height: 50,

		StartingLives:       3,
		HitInvulnFrames:     10,
		RespawnInvulnFrames: 60,

		SpawnPoints:   [2]Point{{X: 100, Y: 200}, {X: 900, Y: 200}},
		RespawnPoints: [2]Point{{X: 50, Y: 200}, {X: 920, Y: 200}},
	}

	Combat = CombatConfig{
		BaseDamage:       1,
		AttackCooldown:   12,
		AttackAnimFrames: 15,
		SwapCooldown:     600,
		GuardBlockChance: 0.5,
		NoCostAttackCap:  5,
	}

	Hazard = HazardConfig{
		Period:          300,
		ActiveFrames:    180,
		DamageInterval:  60,
		Damage:          1,
		FramesPerSecond: 60,
	}

	Popup = PopupConfig{
		Life:          40,
		RisePerFrame:  0.5,
		DebounceTicks: 60,
	}
}

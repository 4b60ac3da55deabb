package messages

import "github.com/automoto/brawl-arena/config"

// DamageEvent is emitted when a combatant loses hp
type DamageEvent struct {
	TargetID int
	Amount   float64
	Kind     config.DamageKind
	HP       float64 // Remaining hp after the hit
}

// BlockEvent is emitted when a guard window absorbs a hit
type BlockEvent struct {
	TargetID int
	Amount   float64
}

// DeathEvent is emitted when a combatant's hp reaches zero
type DeathEvent struct {
	VictimID  int
	LivesLeft int
}

// RespawnEvent is emitted after a death when lives remain
type RespawnEvent struct {
	PlayerID int
	X, Y     float64
}

// MatchOverEvent is emitted once when a combatant runs out of lives.
// WinnerID is 0 when both combatants fell on the same tick.
type MatchOverEvent struct {
	WinnerID int
	Frame    int
}

// SpawnEvent is emitted when an ability creates a projectile
type SpawnEvent struct {
	OwnerID int
	Kind    config.ProjectileKind
	X, Y    float64
}

// ExplosionEvent is emitted when an area projectile bursts
type ExplosionEvent struct {
	OwnerID int
	Kind    config.ProjectileKind
	X, Y    float64
	Hit     bool
}

// ReflectEvent is emitted when a reflect window redirects a projectile
type ReflectEvent struct {
	ReflectorID int
	Kind        config.ProjectileKind
	X, Y        float64
}

// TeleportEvent is emitted when a combatant is moved by an ability
type TeleportEvent struct {
	PlayerID int
	Cause    string // swap, hook, banish, clone, rewind
	X, Y     float64
}

// PopupEvent mirrors a floating text that passed the debounce window
type PopupEvent struct {
	X, Y  float64
	Text  string
	Color string
}

// ParticleEvent asks the renderer for a cosmetic burst
type ParticleEvent struct {
	X, Y   float64
	Color  string
	Effect string // hit, nova, burst, spark, dash, hex, death, rune, charge
	Count  int
}

// CueEvent asks the audio collaborator for a feedback sound
type CueEvent struct {
	PlayerID int
	Cue      string // jump, hit, melee, shoot_magic, shoot_phys, cast, ult, empty
	Pitch    float64
}

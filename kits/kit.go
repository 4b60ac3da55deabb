// Package kits implements the ten character ability sets. A kit only decides
// what its attack, skill and ultimate do; lockout and cooldown gating, the
// shared attack cooldown and invisibility reveal live in the match systems.
package kits

import (
	"fmt"
	"math/rand"

	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

// Arena is the match view a kit acts through. Entries returned by Player and
// Opponent belong to the current tick and must not be retained.
type Arena interface {
	World() donburi.World
	Flags() config.Flags
	Rand() *rand.Rand
	Frame() int

	// Player returns the combatant with id, or nil.
	Player(id int) *donburi.Entry
	// Opponent returns the living combatant facing id, or nil.
	Opponent(id int) *donburi.Entry

	Damage(target *donburi.Entry, amount float64, kind config.DamageKind)
	Spawn(kind config.ProjectileKind, ownerID int, x, y, vx, vy, damage float64) *donburi.Entry
	Teleport(target *donburi.Entry, x, y float64, cause string)

	Popup(x, y float64, text, color string)
	Particles(x, y float64, color, effect string)
	Cue(playerID int, cue string, pitch float64)
}

// Kit is one character's attack, skill and ultimate. Each action reports
// whether it went off; a false return leaves resource and cooldowns untouched.
type Kit interface {
	Character() config.CharacterID
	Attack(a Arena, self *donburi.Entry, damage float64) bool
	Skill(a Arena, self *donburi.Entry) bool
	Ultimate(a Arena, self *donburi.Entry) bool
	// Reset clears per-life scratch state on respawn.
	Reset()
}

// Ticker runs every tick before the action state advances.
type Ticker interface {
	Tick(a Arena, self *donburi.Entry)
}

// Regenerator refills the resource pool over time.
type Regenerator interface {
	Regen(a Arena, self *donburi.Entry)
}

// Refiller tops up kit-held charges under the no-cost override.
type Refiller interface {
	Refill()
}

// ChargedAttacker turns the held attack button into a release-fired attack.
// release reports that the button was let go after charging, with the damage
// the shot should carry.
type ChargedAttacker interface {
	ChargeAttack(a Arena, self *donburi.Entry, held bool) (damage float64, release bool)
}

// ChargeReleaser fires when a charging lock runs out.
type ChargeReleaser interface {
	ReleaseCharge(a Arena, self *donburi.Entry)
}

// Cleanser kits may cast their skill while stunned and keep invisibility when
// doing so.
type Cleanser interface {
	CleansesStun() bool
}

// DamageListener is told about every hit that lands on its owner.
type DamageListener interface {
	OnDamaged(a Arena, self *donburi.Entry)
}

// AmmoCounter exposes a kit-held charge pool for the HUD.
type AmmoCounter interface {
	Ammo() int
}

// New builds the kit for a character.
func New(id config.CharacterID) (Kit, error) {
	switch id {
	case config.Mage:
		return &Mage{}, nil
	case config.Warrior:
		return &Warrior{}, nil
	case config.Tank:
		return &Tank{}, nil
	case config.Marksman:
		return &Marksman{}, nil
	case config.Ghost:
		return &Ghost{}, nil
	case config.Gambler:
		return &Gambler{}, nil
	case config.Demolitionist:
		return &Demolitionist{}, nil
	case config.Illusionist:
		return &Illusionist{}, nil
	case config.Paladin:
		return &Paladin{}, nil
	case config.Chronomancer:
		return NewChronomancer(), nil
	}
	return nil, fmt.Errorf("unknown character %q", id)
}

package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	mageShotSpeed     = 8.0
	mageFullCharge    = 120 // Frames held before a release carries double damage
	mageChargedDamage = 2.0
	mageBeamCharge    = 60
)

// Mage charges basic shots by holding attack and channels a full-width beam.
type Mage struct {
	chargingAttack bool
	chargeTimer    int
	fullCharge     bool // Set by a fully charged release, consumed by the next shot
}

func (k *Mage) Character() config.CharacterID { return config.Mage }

func (k *Mage) ChargeAttack(a Arena, self *donburi.Entry, held bool) (float64, bool) {
	if held {
		if !k.chargingAttack {
			k.fullCharge = false
		}
		k.chargingAttack = true
		k.chargeTimer++
		if k.chargeTimer%10 == 0 {
			obj := components.Object.Get(self)
			a.Particles(obj.MidX(), obj.MidY(), "#5ac8fa", "rune")
		}
		return 0, false
	}
	if !k.chargingAttack {
		return 0, false
	}
	damage := 1.0
	k.fullCharge = k.chargeTimer > mageFullCharge
	if k.fullCharge {
		damage = mageChargedDamage
	}
	k.chargingAttack = false
	k.chargeTimer = 0
	return damage, true
}

// ChargeTimer reports how long the attack button has been held.
func (k *Mage) ChargeTimer() int { return k.chargeTimer }

func (k *Mage) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	if !spend(a, self, stats(self).AttackCost, "", "") {
		return false
	}
	x, y := muzzle(self)
	id := playerID(self)
	a.Cue(id, "shoot_magic", 1)
	if k.fullCharge {
		k.fullCharge = false
		obj := components.Object.Get(self)
		a.Popup(obj.X, obj.Y, "MAX CHARGE!", "#5ac8fa")
		a.Particles(x, y, "#0000ff", "nova")
	}
	a.Spawn(config.Fireball, id, x, y, facing(self)*mageShotSpeed, 0, damage)
	return true
}

func (k *Mage) Skill(a Arena, self *donburi.Entry) bool {
	components.Resource.Get(self).Fill()
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y, "Mana Full", "#5ac8fa")
	return true
}

func (k *Mage) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "", "") {
		return false
	}
	state := components.State.Get(self)
	state.CurrentState = config.Charging
	state.StateTimer = mageBeamCharge
	return true
}

// ReleaseCharge fires the beam centred on the caster's current height.
func (k *Mage) ReleaseCharge(a Arena, self *donburi.Entry) {
	obj := components.Object.Get(self)
	a.Spawn(config.MageBeam, playerID(self), 0, obj.MidY(), 0, 0, 1)
	a.Particles(obj.X, obj.MidY(), "#5ac8fa", "beam_trail")
}

func (k *Mage) Reset() {
	k.chargingAttack = false
	k.chargeTimer = 0
	k.fullCharge = false
}

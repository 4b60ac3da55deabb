package kits

import (
	"fmt"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

const (
	demoFallbackVX     = 10.0
	demoDetonateCD     = 60
	demoBombCount      = 3
	demoBombDamage     = 2.0
	demoBombDelay      = 15
	demoBombDropY      = -50.0
	demoBombEdge       = 50.0
	demoAmmoRegenEvery = 300
)

// Demolitionist spends ammo on aimed grenades, a single C4 and a carpet bombing.
type Demolitionist struct {
	c4    donburi.Entity
	armed bool
}

func (k *Demolitionist) Character() config.CharacterID { return config.Demolitionist }

// Attack lobs a grenade on the arc that meets the opponent's current centre.
func (k *Demolitionist) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	if !spend(a, self, stats(self).AttackCost, "No Ammo!", "#ff9500") {
		return false
	}
	x, y := muzzle(self)
	dir := facing(self)
	vy0 := config.Physics.JumpSpeed
	vx := dir * demoFallbackVX
	if enemy := a.Opponent(playerID(self)); enemy != nil {
		eo := components.Object.Get(enemy)
		vx = gamemath.LaunchVelocityX(eo.MidX()-x, eo.MidY()-y, vy0, config.Physics.Gravity, vx)
	}
	a.Cue(playerID(self), "shoot_phys", 0.6)
	a.Spawn(config.Grenade, playerID(self), x, y, vx, vy0, damage)

	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y-30, fmt.Sprintf("%d Ammo", int(components.Resource.Get(self).Current)), "#ff9500")
	return true
}

// Skill plants a C4 under the caster, or sets off the one already planted.
func (k *Demolitionist) Skill(a Arena, self *donburi.Entry) bool {
	cd := components.Cooldowns.Get(self)
	if c4, ok := k.ActiveC4(a); ok {
		components.Projectile.Get(c4).Life = 0
		k.armed = false
		cd.Skill = demoDetonateCD
		return true
	}
	if !spend(a, self, stats(self).SkillCost, "No Ammo!", "#ff9500") {
		return false
	}
	obj := components.Object.Get(self)
	c4 := a.Spawn(config.C4Trap, playerID(self), obj.MidX()-10, obj.Feet()-5, 0, 0, 1)
	k.c4 = c4.Entity()
	k.armed = true
	cd.Skill = stats(self).SkillCooldown
	a.Popup(obj.X, obj.Y-30, "C4 Set", "#ff9500")
	return true
}

// Ultimate calls three bombs ahead of the caster, each landing a little later.
func (k *Demolitionist) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "Need 2 Ammo!", "#ff9500") {
		return false
	}
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	bombW, _ := config.SizeOf(config.CarpetBomb)
	for i := 1; i <= demoBombCount; i++ {
		targetX := obj.X + facing(self)*float64(i*2)*obj.W
		targetX = gamemath.Clamp(targetX, demoBombEdge, config.C.Arena.Width-demoBombEdge)
		bomb := a.Spawn(config.CarpetBomb, playerID(self), targetX-bombW/2, demoBombDropY, 0, 0, demoBombDamage)
		components.Projectile.Get(bomb).TickTimer = i * demoBombDelay
	}
	a.Popup(obj.X, obj.Y-40, "INCOMING!", "#ff3b30")
	return true
}

// Tick forgets a C4 that has already gone off.
func (k *Demolitionist) Tick(a Arena, self *donburi.Entry) {
	if !k.armed {
		return
	}
	if _, ok := k.ActiveC4(a); !ok {
		k.armed = false
	}
}

func (k *Demolitionist) Regen(a Arena, self *donburi.Entry) {
	res := components.Resource.Get(self)
	if res.Current >= res.Max {
		return
	}
	res.RegenTimer++
	if res.RegenTimer >= demoAmmoRegenEvery {
		res.Add(1)
		res.RegenTimer = 0
		obj := components.Object.Get(self)
		a.Popup(obj.X, obj.Y-30, "+1 Ammo", "#ff9500")
	}
}

// ActiveC4 returns the planted trap while it is still armed.
func (k *Demolitionist) ActiveC4(a Arena) (*donburi.Entry, bool) {
	if !k.armed || !a.World().Valid(k.c4) {
		return nil, false
	}
	e := a.World().Entry(k.c4)
	if !components.Projectile.Get(e).Active {
		return nil, false
	}
	return e, true
}

// Reset drops the reference; a trap already planted still goes off on its own.
func (k *Demolitionist) Reset() {
	k.armed = false
}

package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	marksmanBulletSpeed = 15.0
	marksmanSpreadSpeed = 12.0
	marksmanRollFrames  = 10
	marksmanRollSpeed   = 15.0
	marksmanRollInvuln  = 30
	marksmanRegenEvery  = 12
)

// Marksman trades energy for fast shots and an invulnerable roll.
type Marksman struct{}

func (k *Marksman) Character() config.CharacterID { return config.Marksman }

func (k *Marksman) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	if !spend(a, self, stats(self).AttackCost, "", "") {
		return false
	}
	x, y := muzzle(self)
	a.Cue(playerID(self), "shoot_phys", 1)
	a.Spawn(config.Bullet, playerID(self), x, y, facing(self)*marksmanBulletSpeed, 0, damage)
	a.Particles(x, y, "#ffaa00", "smoke")
	return true
}

func (k *Marksman) Skill(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).SkillCost, "", "") {
		return false
	}
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	state := components.State.Get(self)
	state.CurrentState = config.Rolling
	state.StateTimer = marksmanRollFrames
	components.Physics.Get(self).SpeedX = facing(self) * marksmanRollSpeed
	components.Status.Get(self).Invuln = marksmanRollInvuln
	return true
}

// Ultimate fires five bullets fanned vertically.
func (k *Marksman) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "", "") {
		return false
	}
	x, y := muzzle(self)
	a.Particles(x, y, "#ff9500", "spark")
	for i := -2; i <= 2; i++ {
		a.Spawn(config.Bullet, playerID(self), x, y, facing(self)*marksmanSpreadSpeed, float64(i)*2, 1)
	}
	return true
}

func (k *Marksman) Regen(a Arena, self *donburi.Entry) {
	res := components.Resource.Get(self)
	if res.Current < res.Max && a.Frame()%marksmanRegenEvery == 0 {
		res.Add(1)
	}
}

func (k *Marksman) Reset() {}

package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	warriorReach      = 60.0
	warriorRageOnHit  = 10.0
	warriorRageOnHurt = 5.0
	warriorDashFrames = 24
	warriorDashSpeed  = 8.0
	warriorDashInvuln = 10
	warriorRageFrames = 300
)

// Warrior builds rage by hitting and being hit.
type Warrior struct{}

func (k *Warrior) Character() config.CharacterID { return config.Warrior }

func (k *Warrior) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	a.Cue(playerID(self), "melee", 1)
	meleeHit(a, self, warriorReach, damage)
	if !a.Flags().NoCost {
		components.Resource.Get(self).Add(warriorRageOnHit)
	}
	x, y := muzzle(self)
	a.Particles(x+facing(self)*20, y, "#ff3b30", "slash")
	return true
}

func (k *Warrior) Skill(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).SkillCost, "", "") {
		return false
	}
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	state := components.State.Get(self)
	state.CurrentState = config.Dashing
	state.StateTimer = warriorDashFrames
	components.Physics.Get(self).SpeedX = facing(self) * warriorDashSpeed
	components.Status.Get(self).Invuln = warriorDashInvuln
	obj := components.Object.Get(self)
	a.Particles(obj.X, obj.Y-30, "#ff0000", "rage_face")
	return true
}

func (k *Warrior) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "", "") {
		return false
	}
	components.Status.Get(self).Raging = warriorRageFrames
	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y, "RAGE!", "#ff3b30")
	return true
}

func (k *Warrior) OnDamaged(a Arena, self *donburi.Entry) {
	if a.Flags().NoCost {
		return
	}
	components.Resource.Get(self).Add(warriorRageOnHurt)
}

func (k *Warrior) Reset() {}

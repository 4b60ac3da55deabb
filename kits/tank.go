package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	tankReach       = 50.0
	tankKnockbackX  = 15.0
	tankKnockbackY  = -5.0
	tankArmedStun   = 30
	tankGuardFrames = 180
)

// Tank knocks opponents back and can raise a guard that blocks half of all hits.
type Tank struct{}

func (k *Tank) Character() config.CharacterID { return config.Tank }

func (k *Tank) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	a.Cue(playerID(self), "melee", 0.8)
	enemy, hit := meleeHit(a, self, tankReach, damage)
	if !hit {
		return true
	}
	ph := components.Physics.Get(enemy)
	ph.SpeedX = facing(self) * tankKnockbackX
	ph.SpeedY = tankKnockbackY

	st := components.Status.Get(self)
	if st.NextHitStun {
		stun(enemy, tankArmedStun)
		st.NextHitStun = false
		eo := components.Object.Get(enemy)
		a.Popup(eo.X, eo.Y, "Stun!", "#34c759")
	}
	return true
}

func (k *Tank) Skill(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	components.Status.Get(self).NextHitStun = true
	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y, "Stun Ready", "#34c759")
	return true
}

func (k *Tank) Ultimate(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	components.Status.Get(self).Guard = tankGuardFrames
	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y, "Guard Up", "#34c759")
	return true
}

func (k *Tank) Reset() {}

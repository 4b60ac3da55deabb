package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	ghostReach       = 75.0
	ghostInvisFrames = 600
	ghostHookSpeed   = 30.0
)

// Ghost fades from sight, shrugs off stuns and hooks opponents into reach.
type Ghost struct{}

func (k *Ghost) Character() config.CharacterID { return config.Ghost }

func (k *Ghost) CleansesStun() bool { return true }

func (k *Ghost) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	a.Cue(playerID(self), "shoot_magic", 0.7)
	meleeHit(a, self, ghostReach, damage)
	return true
}

func (k *Ghost) Skill(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	st := components.Status.Get(self)
	st.Invisible = true
	st.InvisibleTimer = ghostInvisFrames
	obj := components.Object.Get(self)
	if st.Stun > 0 {
		st.Stun = 0
		a.Popup(obj.X, obj.Y, "CLEANSED!", "#fff")
	}
	a.Popup(obj.X, obj.Y, "Invisible (10s)", "#af52de")
	return true
}

func (k *Ghost) Ultimate(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	a.Spawn(config.Hook, playerID(self), obj.X, obj.MidY(), facing(self)*ghostHookSpeed, 0, 0)
	return true
}

func (k *Ghost) Reset() {}

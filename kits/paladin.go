package kits

import (
	"math"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

const (
	paladinReach        = 40.0
	paladinReflectFor   = 60
	paladinPillarOffset = 150.0
	paladinPillarEdge   = 50.0
	faithRegenEvery     = 6
)

// Paladin swings a hammer all around, reflects projectiles and calls down a
// pillar of light.
type Paladin struct{}

func (k *Paladin) Character() config.CharacterID { return config.Paladin }

// Attack hits on either side, unlike the other melee kits.
func (k *Paladin) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	a.Cue(playerID(self), "melee", 1)
	obj := components.Object.Get(self)
	if enemy := a.Opponent(playerID(self)); enemy != nil {
		eo := components.Object.Get(enemy)
		if math.Abs(eo.MidX()-obj.MidX()) < paladinReach && math.Abs(eo.MidY()-obj.MidY()) < meleeReachY {
			a.Damage(enemy, damage, config.DamageNormal)
		}
	}
	a.Particles(obj.MidX(), obj.MidY(), "#ffd60a", "burst")
	return true
}

func (k *Paladin) Skill(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).SkillCost, "Need Faith", "#ffd60a") {
		return false
	}
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	components.Status.Get(self).Reflecting = paladinReflectFor
	obj := components.Object.Get(self)
	a.Popup(obj.X, obj.Y-40, "SHIELD!", "#ffd60a")
	return true
}

func (k *Paladin) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "Need 70 Faith!", "#ffd60a") {
		return false
	}
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	targetX := gamemath.Clamp(obj.X+facing(self)*paladinPillarOffset, paladinPillarEdge, config.C.Arena.Width-paladinPillarEdge)
	a.Spawn(config.LightPillar, playerID(self), targetX, 0, 0, 0, 1)
	a.Popup(obj.X, obj.Y-40, "JUDGMENT!", "#ffd60a")
	return true
}

func (k *Paladin) Regen(a Arena, self *donburi.Entry) {
	regenEvery(components.Resource.Get(self), faithRegenEvery)
}

func (k *Paladin) Reset() {}

// regenEvery adds one point to the pool every n ticks while it is below max.
func regenEvery(res *components.ResourceData, n int) {
	if res.Current >= res.Max {
		return
	}
	res.RegenTimer++
	if res.RegenTimer >= n {
		res.Add(1)
		res.RegenTimer = 0
	}
}

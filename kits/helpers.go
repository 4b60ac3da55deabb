package kits

import (
	"math"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

// meleeReachY is the vertical half-window of every melee check.
const meleeReachY = 60.0

func playerID(e *donburi.Entry) int {
	return components.Player.Get(e).ID
}

func facing(e *donburi.Entry) float64 {
	return components.Player.Get(e).Facing
}

func stats(e *donburi.Entry) config.CharacterConfig {
	c, _ := config.LookupCharacter(components.Player.Get(e).Character)
	return c
}

// muzzle is where forward projectiles leave the body.
func muzzle(e *donburi.Entry) (x, y float64) {
	obj := components.Object.Get(e)
	x = obj.X
	if facing(e) > 0 {
		x = obj.X + obj.W
	}
	return x, obj.MidY()
}

// spend takes cost from the resource pool. Under the no-cost override it
// always succeeds without touching the pool; otherwise an unaffordable cost
// is refused with an empty cue and an optional popup.
func spend(a Arena, self *donburi.Entry, cost float64, shortText, color string) bool {
	if a.Flags().NoCost || cost <= 0 {
		return true
	}
	res := components.Resource.Get(self)
	if res.Current < cost {
		if shortText != "" {
			obj := components.Object.Get(self)
			a.Popup(obj.X, obj.Y-20, shortText, color)
		}
		a.Cue(playerID(self), "empty", 1)
		return false
	}
	res.Add(-cost)
	return true
}

// meleeHit damages the opponent if it stands in front of self within reach.
func meleeHit(a Arena, self *donburi.Entry, reach, damage float64) (*donburi.Entry, bool) {
	enemy := a.Opponent(playerID(self))
	if enemy == nil {
		return nil, false
	}
	obj := components.Object.Get(self)
	eo := components.Object.Get(enemy)
	dist := eo.MidX() - obj.MidX()
	dir := facing(self)
	inFront := (dir > 0 && dist > 0 && dist < reach) || (dir < 0 && dist < 0 && -dist < reach)
	if !inFront || math.Abs(eo.MidY()-obj.MidY()) >= meleeReachY {
		return nil, false
	}
	a.Damage(enemy, damage, config.DamageNormal)
	return enemy, true
}

// stun overwrites the stun timer.
func stun(e *donburi.Entry, frames int) {
	components.Status.Get(e).Stun = frames
}

func clampStageX(x, w float64) float64 {
	return math.Max(0, math.Min(config.C.Arena.Width-w, x))
}

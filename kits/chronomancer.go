package kits

import (
	"fmt"

	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	historyLen        = 180
	needleAmmo        = 3
	needleReloadEvery = 60
	needleSpeed       = 15.0
	stasisOffsetX     = 40.0
	stasisOffsetY     = 40.0
	stasisDrift       = 2.0
)

// Sample is one recorded tick of position and health.
type Sample struct {
	X, Y, HP float64
}

// history is a fixed ring of the most recent samples.
type history struct {
	buf   [historyLen]Sample
	start int
	count int
}

func (h *history) push(s Sample) {
	if h.count < historyLen {
		h.buf[(h.start+h.count)%historyLen] = s
		h.count++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % historyLen
}

func (h *history) oldest() (Sample, bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	return h.buf[h.start], true
}

// Chronomancer rewinds itself along its recent path and slows projectiles.
type Chronomancer struct {
	history history
	ammo    int
	reload  int
}

func NewChronomancer() *Chronomancer {
	return &Chronomancer{ammo: needleAmmo}
}

func (k *Chronomancer) Character() config.CharacterID { return config.Chronomancer }

func (k *Chronomancer) Ammo() int { return k.ammo }

// History returns the number of buffered samples and the oldest one.
func (k *Chronomancer) History() (int, Sample) {
	s, _ := k.history.oldest()
	return k.history.count, s
}

// Tick records this tick's sample and reloads needles.
func (k *Chronomancer) Tick(a Arena, self *donburi.Entry) {
	obj := components.Object.Get(self)
	k.history.push(Sample{X: obj.X, Y: obj.Y, HP: components.Health.Get(self).Current})

	if k.ammo < needleAmmo {
		k.reload++
		if k.reload >= needleReloadEvery {
			k.ammo++
			k.reload = 0
		}
	}
}

func (k *Chronomancer) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	if !a.Flags().NoCost {
		if k.ammo < 1 {
			obj := components.Object.Get(self)
			a.Popup(obj.X, obj.Y-20, "Recharging...", "#5e5ce6")
			a.Cue(playerID(self), "empty", 1)
			return false
		}
		k.ammo--
	}
	x, y := muzzle(self)
	a.Cue(playerID(self), "shoot_magic", 1.3)
	a.Spawn(config.TimeNeedle, playerID(self), x, y, facing(self)*needleSpeed, 0, damage)
	return true
}

// Skill returns to the oldest buffered sample. Health is only ever restored.
func (k *Chronomancer) Skill(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).SkillCost, "Need Energy", "#5e5ce6") {
		return false
	}
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	obj := components.Object.Get(self)

	old, ok := k.history.oldest()
	if !ok {
		a.Popup(obj.X, obj.Y-40, "No History", "#ccc")
		return true
	}
	a.Particles(obj.X, obj.Y, "#5e5ce6", "dash")
	a.Teleport(self, old.X, old.Y, "rewind")

	hp := components.Health.Get(self)
	if old.HP > hp.Current {
		healed := hp.Heal(old.HP - hp.Current)
		a.Popup(obj.X, obj.Y-40, fmt.Sprintf("Rewind +%gHP", healed), "#00ff00")
	} else {
		a.Popup(obj.X, obj.Y-40, "Rewind!", "#5e5ce6")
	}
	a.Particles(obj.X, obj.Y, "#5e5ce6", "burst")
	return true
}

func (k *Chronomancer) Ultimate(a Arena, self *donburi.Entry) bool {
	if !spend(a, self, stats(self).UltimateCost, "Need 100 Energy!", "#5e5ce6") {
		return false
	}
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	dir := facing(self)
	a.Spawn(config.StasisField, playerID(self), obj.X+dir*stasisOffsetX, obj.MidY()-stasisOffsetY, dir*stasisDrift, 0, 0)
	a.Popup(obj.X, obj.Y-40, "SLOW DOWN!", "#5e5ce6")
	return true
}

func (k *Chronomancer) Regen(a Arena, self *donburi.Entry) {
	regenEvery(components.Resource.Get(self), faithRegenEvery)
}

func (k *Chronomancer) Refill() { k.ammo = needleAmmo }

func (k *Chronomancer) Reset() {
	k.history = history{}
	k.ammo = needleAmmo
	k.reload = 0
}

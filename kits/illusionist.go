package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	illusionBeamSpeed = 35.0
	illusionDashDist  = 100.0
	illusionHop       = 5.0
	illusionCloneCD   = 30
	illusionBanishSpd = 20.0
)

type clone struct {
	active bool
	x, y   float64
	dir    float64
}

// Illusionist leaves a clone to return to and banishes opponents across the stage.
type Illusionist struct {
	clone clone
}

func (k *Illusionist) Character() config.CharacterID { return config.Illusionist }

// Clone reports the stored return point.
func (k *Illusionist) Clone() (x, y float64, active bool) {
	return k.clone.x, k.clone.y, k.clone.active
}

// Attack ignores the damage multiplier; illusion beams always carry the kit damage.
func (k *Illusionist) Attack(a Arena, self *donburi.Entry, _ float64) bool {
	x, y := muzzle(self)
	a.Cue(playerID(self), "shoot_magic", 2)
	a.Spawn(config.IllusionBeam, playerID(self), x, y, facing(self)*illusionBeamSpeed, 0, stats(self).AttackDamage)
	return true
}

// Skill toggles between leaving a clone behind and snapping back to it.
func (k *Illusionist) Skill(a Arena, self *donburi.Entry) bool {
	obj := components.Object.Get(self)
	player := components.Player.Get(self)
	cd := components.Cooldowns.Get(self)

	if k.clone.active {
		a.Particles(obj.X, obj.Y, "#ff2d55", "dash")
		a.Teleport(self, k.clone.x, k.clone.y, "clone")
		player.Facing = k.clone.dir
		ph := components.Physics.Get(self)
		ph.SpeedX, ph.SpeedY = 0, 0
		a.Popup(obj.X, obj.Y-40, "Return!", "#00ffff")
		k.clone.active = false
		cd.Skill = stats(self).SkillCooldown
		return true
	}

	k.clone = clone{active: true, x: obj.X, y: obj.Y, dir: player.Facing}
	targetX := clampStageX(obj.X+player.Facing*illusionDashDist, obj.W)
	a.Teleport(self, targetX, obj.Y-illusionHop, "clone")
	a.Popup(k.clone.x, k.clone.y-40, "Clone!", "#ff2d55")
	cd.Skill = illusionCloneCD
	return true
}

func (k *Illusionist) Ultimate(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	a.Spawn(config.SwapBullet, playerID(self), obj.X, obj.MidY(), facing(self)*illusionBanishSpd, 0, 0)
	a.Popup(obj.X, obj.Y-40, "BANISH!", "#af52de")
	return true
}

func (k *Illusionist) Reset() {
	k.clone = clone{dir: 1}
}

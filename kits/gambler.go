package kits

import (
	"github.com/automoto/brawl-arena/components"
	"github.com/automoto/brawl-arena/config"
	"github.com/yohamta/donburi"
)

const (
	gamblerCardSpeed   = 12.0
	gamblerBuffFrames  = 180
	gamblerBustStun    = 60
	gamblerDiceCount   = 3
	gamblerDiceDamage  = 1.0
	gamblerDiceBaseVX  = 6.0
	gamblerDiceBaseVY  = -10.0
	gamblerDiceSpreadV = 2.0
)

// Suit offsets from the top of the body, one per card suit.
var suitOffsets = [4]float64{0, 15, 35, 50}

// Gambler outcomes for the skill roll.
const (
	RollJackpot = iota
	RollLucky
	RollBust
)

// Gambler throws cards at random heights and gambles on its skill.
type Gambler struct {
	LastRoll int
}

func (k *Gambler) Character() config.CharacterID { return config.Gambler }

func (k *Gambler) Attack(a Arena, self *donburi.Entry, damage float64) bool {
	x, _ := muzzle(self)
	obj := components.Object.Get(self)
	suit := a.Rand().Intn(len(suitOffsets))
	a.Cue(playerID(self), "shoot_phys", 1.5)
	card := a.Spawn(config.Card, playerID(self), x, obj.Y+suitOffsets[suit], facing(self)*gamblerCardSpeed, 0, damage)
	components.Projectile.Get(card).Subtype = suit
	return true
}

// Skill rolls one of three equally likely outcomes.
func (k *Gambler) Skill(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Skill = stats(self).SkillCooldown
	obj := components.Object.Get(self)
	roll := a.Rand().Float64()
	switch {
	case roll < 1.0/3:
		k.LastRoll = RollJackpot
		st := components.Status.Get(self)
		st.SpeedBuff = true
		st.BuffDuration = gamblerBuffFrames
		a.Popup(obj.X, obj.Y-40, "JACKPOT! Speed Up", "#34c759")
	case roll < 2.0/3:
		k.LastRoll = RollLucky
		components.Cooldowns.Get(self).Ultimate = 0
		a.Popup(obj.X, obj.Y-40, "LUCKY! Ult Reset", "#007aff")
	default:
		k.LastRoll = RollBust
		stun(self, gamblerBustStun)
		a.Popup(obj.X, obj.Y-40, "BUST! Stunned", "#ff3b30")
	}
	return true
}

// Ultimate lobs three dice on progressively longer arcs.
func (k *Gambler) Ultimate(a Arena, self *donburi.Entry) bool {
	components.Cooldowns.Get(self).Ultimate = stats(self).UltimateCooldown
	obj := components.Object.Get(self)
	for i := 0; i < gamblerDiceCount; i++ {
		step := float64(i) * gamblerDiceSpreadV
		vx := facing(self) * (gamblerDiceBaseVX + step)
		vy := gamblerDiceBaseVY - step
		a.Spawn(config.DiceBoulder, playerID(self), obj.X, obj.Y, vx, vy, gamblerDiceDamage)
	}
	return true
}

func (k *Gambler) Reset() {}

package core

import (
	"math"
	"math/rand"

	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/automoto/brawl-arena/systems"
)

// BotState is the high level plan a bot follows between decisions.
type BotState int

const (
	BotIdle BotState = iota
	BotChase
	BotAttack
	BotRetreat
)

const (
	botLevelWindow = 60.0 // Vertical gap inside which shots are worth taking
	botChargeCycle = 40   // Hold/release rhythm for charge-to-fire kits
	botChargeHold  = 30
)

// ranged kits fire from distance; the rest close in for melee.
var rangedKits = map[cfg.CharacterID]bool{
	cfg.Mage:          true,
	cfg.Marksman:      true,
	cfg.Gambler:       true,
	cfg.Demolitionist: true,
	cfg.Illusionist:   true,
	cfg.Chronomancer:  true,
}

// Bot is a simple computer opponent. It re-plans every reaction delay and
// produces intents from the plan in between.
type Bot struct {
	Difficulty cfg.BotDifficulty
	State      BotState

	decisionTimer int
	wantSkill     bool
	wantUltimate  bool
	rng           *rand.Rand
}

func NewBot(d cfg.BotDifficulty, seed int64) *Bot {
	return &Bot{
		Difficulty: d,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (b *Bot) Intent(m *systems.Match, id int) messages.Intent {
	self := m.Player(id)
	if self == nil || components.Lives.Get(self).Dead() {
		return messages.Intent{}
	}
	enemy := m.Opponent(id)
	if enemy == nil {
		b.State = BotIdle
		return messages.Intent{}
	}

	tuning := cfg.Bot.Difficulties[b.Difficulty]
	player := components.Player.Get(self)
	obj := components.Object.Get(self)
	eo := components.Object.Get(enemy)
	dx := eo.MidX() - obj.MidX()
	dy := eo.MidY() - obj.MidY()

	if b.decisionTimer > 0 {
		b.decisionTimer--
	} else {
		hp := components.Health.Get(self)
		b.decide(hp.Current/hp.Max, math.Abs(dx), player.Character, tuning)
		b.decisionTimer = tuning.ReactionDelay
	}

	var in messages.Intent
	toward := 1.0
	if dx < 0 {
		toward = -1
	}

	switch b.State {
	case BotRetreat:
		in.MoveX = -toward
	case BotChase:
		in.MoveX = toward
	case BotAttack:
		// Turn to face the target before firing
		if player.Facing != toward {
			in.MoveX = toward
		}
		if math.Abs(dy) < botLevelWindow {
			in.Attack = attackHeld(m.Frame(), player.Character)
		}
	}

	ph := components.Physics.Get(self)
	if ph.OnGround && -dy > cfg.Bot.JumpHeight && b.State != BotRetreat {
		in.Jump = true
	}
	if ph.OnGround && dy > cfg.Bot.JumpHeight && b.State == BotChase {
		in.Drop = true
	}

	cd := components.Cooldowns.Get(self)
	if b.wantSkill && cd.Skill <= 0 {
		in.Skill = true
		b.wantSkill = false
	}
	if b.wantUltimate && cd.Ultimate <= 0 {
		in.Ultimate = true
		b.wantUltimate = false
	}
	return in
}

// decide picks the plan for the next reaction window.
func (b *Bot) decide(hpFrac, dist float64, character cfg.CharacterID, tuning cfg.BotDifficultyConfig) {
	reach := tuning.AttackRange
	if rangedKits[character] {
		reach = tuning.ChaseRange
	}
	switch {
	case hpFrac <= tuning.RetreatThreshold:
		b.State = BotRetreat
	case dist <= reach:
		b.State = BotAttack
	default:
		b.State = BotChase
	}
	if b.State != BotRetreat && b.rng.Float64() < tuning.SkillChance {
		b.wantSkill = true
	}
	if b.State == BotAttack && b.rng.Float64() < tuning.UltimateChance {
		b.wantUltimate = true
	}
}

// attackHeld shapes the attack button; the mage only fires on release.
func attackHeld(frame int, character cfg.CharacterID) bool {
	if character == cfg.Mage {
		return frame%botChargeCycle < botChargeHold
	}
	return true
}

package systems

import (
	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/automoto/brawl-arena/shared/messages"
)

// HUD snapshots what the HUD collaborator draws for the current tick.
func (m *Match) HUD() *messages.HUDState {
	s := &messages.HUDState{
		MatchID:      m.ID,
		Frame:        m.frame,
		Clock:        messages.FormatClock(m.clock),
		HazardActive: m.hazard.Active,
		Projectiles:  len(m.Projectiles()),
		Over:         m.over,
		WinnerID:     m.winner,
	}
	for i := range m.players {
		s.Players[i] = m.playerHUD(i + 1)
	}
	return s
}

func (m *Match) playerHUD(id int) messages.PlayerHUD {
	e := m.Player(id)
	if e == nil {
		return messages.PlayerHUD{ID: id}
	}
	player := components.Player.Get(e)
	stats, _ := cfg.LookupCharacter(player.Character)
	obj := components.Object.Get(e)
	hp := components.Health.Get(e)
	res := components.Resource.Get(e)
	cd := components.Cooldowns.Get(e)

	state := components.State.Get(e).CurrentState
	if components.Status.Get(e).Stun > 0 {
		state = cfg.Stunned
	}

	h := messages.PlayerHUD{
		ID:          id,
		Character:   string(player.Character),
		Name:        stats.Name,
		HP:          hp.Current,
		MaxHP:       hp.Max,
		Lives:       components.Lives.Get(e).Lives,
		Resource:    res.Current,
		MaxResource: res.Max,
		State:       state.String(),
		X:           obj.X,
		Y:           obj.Y,

		CdAttack:      cd.Attack,
		CdSkill:       cd.Skill,
		CdUltimate:    cd.Ultimate,
		CdSwap:        cd.Swap,
		CdAttackMax:   cfg.Combat.AttackCooldown,
		CdSkillMax:    stats.SkillCooldown,
		CdUltimateMax: stats.UltimateCooldown,
		CdSwapMax:     cfg.Combat.SwapCooldown,
	}
	if a, ok := m.kits[id-1].(kits.AmmoCounter); ok {
		h.Ammo = a.Ammo()
	}
	return h
}

// UpdateMatchState ends the match the first tick a combatant has no lives
// left. The survivor wins; a double knockout has no winner.
func UpdateMatchState(m *Match) {
	if m.over {
		return
	}
	alive := 0
	winner := 0
	for id := 1; id <= len(m.players); id++ {
		e := m.Player(id)
		if e != nil && !components.Lives.Get(e).Dead() {
			alive++
			winner = id
		}
	}
	if alive == len(m.players) {
		return
	}
	if alive == 0 {
		winner = 0
	}
	m.over = true
	m.winner = winner
	m.emit(messages.MatchOverEvent{WinnerID: winner, Frame: m.frame})
}

package systems

import (
	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/yohamta/donburi"
)

// dispatchAbilities fires whatever the intent asks for, gated by cooldowns.
// The resource check happens inside each kit.
func (m *Match) dispatchAbilities(e *donburi.Entry, kit kits.Kit) {
	intent := components.Player.Get(e).Intent
	cd := components.Cooldowns.Get(e)

	if ca, ok := kit.(kits.ChargedAttacker); ok {
		if damage, release := ca.ChargeAttack(m, e, intent.Attack); release {
			m.tryAttack(e, kit, damage)
		}
	} else if intent.Attack && cd.Attack <= 0 {
		m.tryAttack(e, kit, 0)
	}

	if intent.Skill && cd.Skill <= 0 {
		m.trySkill(e, kit)
	}
	if intent.Ultimate && cd.Ultimate <= 0 {
		m.tryUltimate(e, kit)
	}
	if intent.Swap && cd.Swap <= 0 {
		m.trySwap(e)
	}
}

// tryAttack fires the basic attack. A zero override uses the base damage.
func (m *Match) tryAttack(e *donburi.Entry, kit kits.Kit, override float64) {
	cd := components.Cooldowns.Get(e)
	if cd.Attack > 0 {
		return
	}
	st := components.Status.Get(e)
	m.reveal(e, true)

	damage := cfg.Combat.BaseDamage
	if override > 0 {
		damage = override
	}
	if st.DoubleDamage > 0 {
		damage *= 2
	}
	if st.Raging > 0 {
		damage *= 2
	}

	if kit.Attack(m, e, damage) {
		cd.Attack = cfg.Combat.AttackCooldown
		st.AttackAnim = cfg.Combat.AttackAnimFrames
	}
}

func (m *Match) trySkill(e *donburi.Entry, kit kits.Kit) {
	if c, ok := kit.(kits.Cleanser); !ok || !c.CleansesStun() {
		m.reveal(e, false)
	}
	kit.Skill(m, e)
}

func (m *Match) tryUltimate(e *donburi.Entry, kit kits.Kit) {
	m.reveal(e, true)
	if kit.Ultimate(m, e) {
		m.Cue(components.Player.Get(e).ID, "ult", 1)
	}
}

// trySwap exchanges positions with a live opponent.
func (m *Match) trySwap(e *donburi.Entry) {
	player := components.Player.Get(e)
	enemy := m.Opponent(player.ID)
	if enemy == nil {
		return
	}
	obj := components.Object.Get(e)
	eo := components.Object.Get(enemy)
	sx, sy := obj.X, obj.Y
	m.Teleport(e, eo.X, eo.Y, "swap")
	m.Teleport(enemy, sx, sy, "swap")
	components.Cooldowns.Get(e).Swap = cfg.Combat.SwapCooldown
	m.Popup(obj.X, obj.Y-40, "SWAP!", "#ffcc00")
	m.Popup(eo.X, eo.Y-40, "SWAPPED!", "#ffcc00")
}

// reveal ends invisibility when the combatant acts.
func (m *Match) reveal(e *donburi.Entry, announce bool) {
	st := components.Status.Get(e)
	if !st.Invisible {
		return
	}
	st.Invisible = false
	st.InvisibleTimer = 0
	if announce {
		obj := components.Object.Get(e)
		m.Popup(obj.X, obj.Y-20, "Revealed!", "#af52de")
	}
}

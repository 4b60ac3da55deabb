package systems

import (
	"math"

	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/yohamta/donburi"
)

const (
	dashReach      = 60.0 // Half-size of the box a dash shoves opponents out of
	dashShoveGap   = 5.0
	dashStunFrames = 2
	rollMinInvuln  = 2
)

// UpdatePlayers runs the per-combatant state machine in id order.
func UpdatePlayers(m *Match) {
	for id := 1; id <= len(m.players); id++ {
		e := m.Player(id)
		if e == nil {
			continue
		}
		m.updateSinglePlayer(e, m.kits[id-1])
	}
}

func (m *Match) updateSinglePlayer(e *donburi.Entry, kit kits.Kit) {
	if components.Lives.Get(e).Dead() {
		return
	}

	player := components.Player.Get(e)
	ph := components.Physics.Get(e)
	st := components.Status.Get(e)
	state := components.State.Get(e)
	cd := components.Cooldowns.Get(e)

	if m.flags.NoCost {
		refillForDebug(e, kit)
	}

	cd.Tick()
	st.TickTimers()
	if ph.DropTimer > 0 {
		ph.DropTimer--
	}

	if t, ok := kit.(kits.Ticker); ok {
		t.Tick(m, e)
	}

	m.updateActionState(e)

	if st.Stun > 0 {
		if c, ok := kit.(kits.Cleanser); ok && c.CleansesStun() && player.Intent.Skill && cd.Skill <= 0 {
			kit.Skill(m, e)
		}
		ph.SpeedX = 0
		m.applyPhysics(e)
		return
	}

	if state.CurrentState == cfg.Charging {
		m.updateCharging(e, kit)
		return
	}

	updateStatusTimers(st)

	if r, ok := kit.(kits.Regenerator); ok && !m.flags.NoCost {
		r.Regen(m, e)
	}

	unlocked := !isLocked(e)
	if unlocked {
		m.handleMovementInput(e)
	}

	m.applyPhysics(e)
	m.applyPlatformEffects(e)

	// An ability earlier this tick may have stunned or locked the combatant
	if unlocked && !isLocked(e) {
		m.dispatchAbilities(e, kit)
	}
}

// isLocked reports whether the combatant is stunned or busy in an action.
func isLocked(e *donburi.Entry) bool {
	return components.Status.Get(e).Stun > 0 ||
		components.State.Get(e).CurrentState != cfg.Idle
}

// refillForDebug tops everything up under the no-cost override.
func refillForDebug(e *donburi.Entry, kit kits.Kit) {
	components.Resource.Get(e).Fill()
	if r, ok := kit.(kits.Refiller); ok {
		r.Refill()
	}
	cd := components.Cooldowns.Get(e)
	cd.Skill, cd.Ultimate, cd.Swap = 0, 0, 0
	cd.Attack = min(cd.Attack, cfg.Combat.NoCostAttackCap)
}

// updateActionState advances rolls and dashes.
func (m *Match) updateActionState(e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState != cfg.Rolling && state.CurrentState != cfg.Dashing {
		return
	}
	state.StateTimer--

	switch state.CurrentState {
	case cfg.Rolling:
		st := components.Status.Get(e)
		st.Invuln = max(st.Invuln, rollMinInvuln)
	case cfg.Dashing:
		m.shoveOpponent(e)
	}

	if state.StateTimer <= 0 {
		state.CurrentState = cfg.Idle
		state.StateTimer = 0
		components.Physics.Get(e).SpeedX = 0
	}
}

// shoveOpponent pushes an opponent caught by a dash out in front of the dasher.
func (m *Match) shoveOpponent(e *donburi.Entry) {
	player := components.Player.Get(e)
	enemy := m.Opponent(player.ID)
	if enemy == nil {
		return
	}
	obj := components.Object.Get(e)
	eo := components.Object.Get(enemy)
	if math.Abs(obj.MidX()-eo.MidX()) >= dashReach || math.Abs(obj.MidY()-eo.MidY()) >= dashReach {
		return
	}
	eo.X = obj.X + player.Facing*(obj.W+dashShoveGap)
	eo.Update()
	components.Status.Get(enemy).Stun = dashStunFrames
}

// updateCharging holds the combatant nearly still until the charge releases.
func (m *Match) updateCharging(e *donburi.Entry, kit kits.Kit) {
	state := components.State.Get(e)
	ph := components.Physics.Get(e)
	intent := components.Player.Get(e).Intent

	ph.SpeedX = 0
	state.StateTimer--
	if state.StateTimer <= 0 {
		state.CurrentState = cfg.Idle
		state.StateTimer = 0
		if r, ok := kit.(kits.ChargeReleaser); ok {
			r.ReleaseCharge(m, e)
		}
	}

	drift := cfg.Physics.BaseSpeed * cfg.Physics.ChargeDriftMult
	if intent.MoveX > cfg.Physics.MoveDeadzone {
		ph.SpeedX = drift
	} else if intent.MoveX < -cfg.Physics.MoveDeadzone {
		ph.SpeedX = -drift
	}
	m.applyPhysics(e)
}

func updateStatusTimers(st *components.StatusData) {
	if st.Raging > 0 {
		st.Raging--
	}
	if st.Invisible {
		st.InvisibleTimer--
		if st.InvisibleTimer <= 0 {
			st.Invisible = false
			st.InvisibleTimer = 0
		}
	}
	if st.Guard > 0 {
		st.Guard--
	}
}

func (m *Match) handleMovementInput(e *donburi.Entry) {
	player := components.Player.Get(e)
	ph := components.Physics.Get(e)
	intent := player.Intent

	ph.SpeedX = 0
	if math.Abs(intent.MoveX) > cfg.Physics.MoveDeadzone {
		ph.SpeedX = intent.MoveX * m.moveSpeed(e)
		if intent.MoveX > 0 {
			player.Facing = cfg.DirectionRight
		} else {
			player.Facing = cfg.DirectionLeft
		}
	}

	if intent.Jump && ph.OnGround {
		ph.SpeedY = cfg.Physics.JumpSpeed
		if components.Status.Get(e).JumpBuff {
			ph.SpeedY *= cfg.Physics.JumpBuffMult
		}
		ph.OnGround = false
		m.Cue(player.ID, "jump", 1)
		return
	}

	if intent.Drop && ph.OnGround {
		p := m.standingOn(e)
		if p == nil || components.Platform.Get(p).Kind == cfg.PlatformGround {
			return
		}
		ph.DropTimer = cfg.Physics.DropFrames
		ph.OnGround = false
		ph.Platform = -1
		obj := components.Object.Get(e)
		obj.Y += cfg.Physics.DropNudge
		obj.Update()
	}
}

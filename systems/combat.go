package systems

import (
	"strconv"

	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/kits"
	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/yohamta/donburi"
)

// Damage applies a hit to a combatant. Hits on dead or invulnerable targets
// are dropped, as is hazard damage on an invisible target. An active guard
// may block the hit outright.
func (m *Match) Damage(target *donburi.Entry, amount float64, kind cfg.DamageKind) {
	if target == nil || !target.HasComponent(components.Health) {
		return
	}
	if components.Lives.Get(target).Dead() {
		return
	}
	st := components.Status.Get(target)
	if st.Invuln > 0 {
		return
	}
	if kind == cfg.DamageHazard && st.Invisible {
		return
	}

	player := components.Player.Get(target)
	obj := components.Object.Get(target)

	if st.Guard > 0 && m.rng.Float64() < cfg.Combat.GuardBlockChance {
		m.Popup(obj.X, obj.Y-20, "Blocked!", "#8e8e93")
		m.emit(messages.BlockEvent{TargetID: player.ID, Amount: amount})
		return
	}

	if l, ok := m.kits[player.ID-1].(kits.DamageListener); ok {
		l.OnDamaged(m, target)
	}

	hp := components.Health.Get(target)
	hp.Current = max(0, hp.Current-amount)
	m.Cue(player.ID, "hit", 1)
	m.Popup(obj.X, obj.Y-10, "-"+strconv.FormatFloat(amount, 'f', -1, 64), "#ff3b30")
	m.Particles(obj.MidX(), obj.MidY(), "#ff3b30", "hit")
	m.emit(messages.DamageEvent{TargetID: player.ID, Amount: amount, Kind: kind, HP: hp.Current})

	if hp.Current <= 0 {
		m.die(target)
		return
	}
	st.Invuln = cfg.Player.HitInvulnFrames
}

// die spends a life and either respawns the combatant or takes it off the
// stage for good.
func (m *Match) die(e *donburi.Entry) {
	player := components.Player.Get(e)
	lives := components.Lives.Get(e)
	obj := components.Object.Get(e)

	lives.Lives = max(0, lives.Lives-1)
	m.Popup(obj.X, obj.Y-30, "DEAD", "#ff0000")
	m.Particles(obj.MidX(), obj.MidY(), "#ff0000", "death")
	m.emit(messages.DeathEvent{VictimID: player.ID, LivesLeft: lives.Lives})

	if lives.Lives > 0 {
		m.respawn(e)
		return
	}

	ph := components.Physics.Get(e)
	ph.SpeedX, ph.SpeedY = 0, 0
	ph.OnGround = false
	ph.Platform = -1
	if obj.Space != nil {
		m.space.Remove(obj.Object)
	}
}

// respawn puts the combatant back at its fixed point with a clean slate.
func (m *Match) respawn(e *donburi.Entry) {
	player := components.Player.Get(e)
	point := cfg.Player.RespawnPoints[player.ID-1]

	obj := components.Object.Get(e)
	obj.X, obj.Y = point.X, point.Y
	obj.Update()

	ph := components.Physics.Get(e)
	*ph = components.PhysicsData{Platform: -1}

	hp := components.Health.Get(e)
	hp.Current = hp.Max
	components.Resource.Get(e).Fill()

	st := components.Status.Get(e)
	*st = components.StatusData{Invuln: cfg.Player.RespawnInvulnFrames}

	state := components.State.Get(e)
	*state = components.StateData{CurrentState: cfg.Idle}

	m.kits[player.ID-1].Reset()
	m.emit(messages.RespawnEvent{PlayerID: player.ID, X: point.X, Y: point.Y})
}

package systems

import (
	"math"

	"github.com/automoto/brawl-arena/components"
	cfg "github.com/automoto/brawl-arena/config"
	"github.com/automoto/brawl-arena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// moveNeedle weaves a time needle forward with a pulsing stride.
func (m *Match) moveNeedle(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	pc := cfg.Projectiles
	stride := pc.NeedleBase + math.Sin(float64(p.Age)*pc.NeedleFreq)*pc.NeedleAmp
	obj.X += gamemath.Sign(p.VX) * stride
	obj.Y += p.VY
}

// expire counts a timed projectile down and reports whether it is still live.
func expire(p *components.ProjectileData) bool {
	p.Life--
	if p.Life <= 0 {
		p.Active = false
	}
	return p.Active
}

// updateStasisField drifts the field between the stage walls and halves the
// displacement of every other projectile whose centre is inside it.
func (m *Match) updateStasisField(e *donburi.Entry, live []*donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	expire(p)

	obj.X += p.VX
	if obj.X < 0 || obj.X > cfg.C.Arena.Width-obj.W {
		p.VX = -p.VX
	}
	obj.Update()

	cx, cy := obj.MidX(), obj.MidY()
	r := obj.W / 2
	drag := cfg.Projectiles.StasisDrag
	for _, other := range live {
		if other.Entity() == e.Entity() {
			continue
		}
		op := components.Projectile.Get(other)
		if !op.Active || !slowable(op.Kind) {
			continue
		}
		oo := components.Object.Get(other)
		if gamemath.Distance(cx, cy, oo.MidX(), oo.MidY()) >= r {
			continue
		}
		oo.X -= op.VX * drag
		oo.Y -= op.VY * drag
		oo.Update()
	}
}

// slowable reports kinds a stasis field can drag.
func slowable(k cfg.ProjectileKind) bool {
	switch k {
	case cfg.LightPillar, cfg.MageBeam, cfg.TimeNeedle:
		return false
	}
	return true
}

// updateLightPillar purges an opponent standing in the column every field tick.
func (m *Match) updateLightPillar(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	expire(p)

	p.TickTimer++
	if p.TickTimer%cfg.Projectiles.FieldTick != 0 {
		return
	}
	enemy := m.Opponent(p.OwnerID)
	if enemy == nil {
		return
	}
	eo := components.Object.Get(enemy)
	if !rectOf(obj).OverlapsX(rectOf(eo)) {
		return
	}
	m.Damage(enemy, p.Damage, cfg.DamageNormal)
	components.Status.Get(enemy).Stun = cfg.Projectiles.PillarStun
	m.Popup(eo.X, eo.Y, "PURGED!", "#ffd60a")
}

// updateMageBeam roots an opponent level with the beam, once per beam.
func (m *Match) updateMageBeam(e *donburi.Entry) {
	p := components.Projectile.Get(e)
	obj := components.Object.Get(e)
	expire(p)

	if m.flags.Flashy && m.rng.Float64() < 0.5 {
		m.Particles(m.rng.Float64()*cfg.C.Arena.Width, obj.Y, "#5ac8fa", "rune")
	}

	p.TickTimer++
	if p.TickTimer%cfg.Projectiles.FieldTick != 0 || p.HasRooted {
		return
	}
	enemy := m.Opponent(p.OwnerID)
	if enemy == nil {
		return
	}
	eo := components.Object.Get(enemy)
	if math.Abs(eo.MidY()-obj.Y) >= obj.H {
		return
	}
	m.Damage(enemy, p.Damage, cfg.DamageNormal)
	components.Status.Get(enemy).Stun = cfg.Projectiles.BeamRootStun
	m.Popup(eo.X, eo.Y, "ROOTED!", "#5ac8fa")
	p.HasRooted = true
}
